package models

import (
	"time"
)

// Denuncia is a citizen-submitted report of a municipal problem.
//
// UsuarioID is nil for anonymous reports. Prioridade is never persisted as
// authoritative state: it is recomputed from the text on every read.
type Denuncia struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Titulo           string    `json:"titulo" gorm:"not null"`
	Descricao        string    `json:"descricao" gorm:"not null"`
	EnderecoDenuncia string    `json:"endereco_denuncia" gorm:"not null"`
	Status           string    `json:"status" gorm:"not null;default:Pendente"`
	Anonimo          bool      `json:"anonimo"`
	UsuarioID        *uint     `json:"usuario_id,omitempty"`
	TipoDenunciaID   uint      `json:"tipo_denuncia_id" gorm:"not null"`
	Fotos            FotoList  `json:"fotos,omitempty"`
	Prioridade       int       `json:"prioridade" gorm:"-"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// DenunciaInput is the JSON shape accepted when submitting a report. The
// anonymity flag here is only honored for authenticated submitters; without a
// token the report is anonymous no matter what the client sends.
type DenunciaInput struct {
	Titulo           string   `json:"titulo" binding:"required"`
	Descricao        string   `json:"descricao" binding:"required"`
	EnderecoDenuncia string   `json:"endereco_denuncia" binding:"required"`
	TipoDenunciaID   uint     `json:"tipo_denuncia_id" binding:"required"`
	Status           string   `json:"status"`
	Anonimo          bool     `json:"anonimo"`
	Fotos            []string `json:"fotos"`
}
