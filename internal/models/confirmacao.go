package models

import "time"

// Confirmacao is a single user's corroboration vote on a report.
//
// The composite unique index is what actually guarantees at most one vote per
// (user, report) pair; the service-level existence check is only a fast path.
type Confirmacao struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UsuarioID  uint      `json:"usuario_id" gorm:"not null;uniqueIndex:idx_confirmacao_usuario_denuncia"`
	DenunciaID uint      `json:"denuncia_id" gorm:"not null;uniqueIndex:idx_confirmacao_usuario_denuncia"`
	Data       time.Time `json:"data" gorm:"autoCreateTime"`
}

// ConfirmacaoResult is returned to the caller after a successful vote,
// carrying the fresh running total for the report.
type ConfirmacaoResult struct {
	ID                uint  `json:"id"`
	DenunciaID        uint  `json:"denuncia_id"`
	UsuarioID         uint  `json:"usuario_id"`
	TotalConfirmacoes int64 `json:"total_confirmacoes"`
}
