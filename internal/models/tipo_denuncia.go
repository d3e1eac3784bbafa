package models

// TipoDenuncia is a complaint category, owned by exactly one department.
type TipoDenuncia struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Nome           string `json:"nome" gorm:"not null"`
	DepartamentoID uint   `json:"departamento_id" gorm:"not null"`
}

// TipoDenunciaInput is the JSON shape for create and update requests.
type TipoDenunciaInput struct {
	Nome           string `json:"nome" binding:"required"`
	DepartamentoID uint   `json:"departamento_id" binding:"required"`
}
