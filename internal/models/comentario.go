package models

import "time"

// Comentario is an immutable comment on a report. TipoUsuario is the
// commenter's role captured at write time; later role changes do not rewrite
// history.
type Comentario struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Texto       string    `json:"texto" gorm:"not null"`
	UsuarioID   uint      `json:"usuario_id" gorm:"not null"`
	DenunciaID  uint      `json:"denuncia_id" gorm:"not null"`
	TipoUsuario string    `json:"tipo_usuario" gorm:"not null"`
	Data        time.Time `json:"data" gorm:"autoCreateTime"`
}
