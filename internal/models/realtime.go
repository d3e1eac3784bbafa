package models

import "time"

// FeedEvent is broadcast to connected dashboard clients when a new report
// arrives. It carries no submitter identity, same redaction rule as the
// public listing.
type FeedEvent struct {
	DenunciaID uint      `json:"denuncia_id"`
	Titulo     string    `json:"titulo"`
	Status     string    `json:"status"`
	Prioridade int       `json:"prioridade"`
	CriadaEm   time.Time `json:"criada_em"`
}
