package models

import (
	"vozurbana/backend/internal/config"

	"gorm.io/gorm"
)

// Usuario represents an account in the system, either a citizen or a
// municipal staff member ("funcionario").
type Usuario struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Nome      string `json:"nome" gorm:"not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	SenhaHash string `json:"-" gorm:"not null"`
	Papel     string `json:"papel" gorm:"not null;default:cidadao"`
}

// BeforeCreate is a GORM hook that fills in the default role when the caller
// left it empty. Self-registration always starts as a citizen.
func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.Papel == "" {
		u.Papel = config.PapelCidadao
	}
	return nil
}

// IsFuncionario reports whether the account has the staff role.
func (u *Usuario) IsFuncionario() bool {
	return u.Papel == config.PapelFuncionario
}
