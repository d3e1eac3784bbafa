package denuncia

import (
	"errors"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/metrics"
	"vozurbana/backend/internal/models"
	"vozurbana/backend/internal/storage"
)

// Confirmar records one user's corroboration vote on a report and returns
// the fresh running total of votes for it.
//
// The existence check is only a fast path for a friendly error; the real
// duplicate-vote guard is the unique index on (usuario_id, denuncia_id), so
// two concurrent votes cannot both land.
func (s *Service) Confirmar(usuarioID, denunciaID uint) (*models.ConfirmacaoResult, error) {
	d, err := s.Storage.GetDenunciaByID(denunciaID)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar denúncia", err)
	}
	if d == nil {
		return nil, apperr.NotFound("denúncia não encontrada")
	}

	jaConfirmou, err := s.Storage.ExisteConfirmacao(usuarioID, denunciaID)
	if err != nil {
		return nil, apperr.Storage("erro ao verificar confirmação", err)
	}
	if jaConfirmou {
		return nil, apperr.Conflict("usuário já confirmou esta denúncia")
	}

	c := &models.Confirmacao{UsuarioID: usuarioID, DenunciaID: denunciaID}
	if err := s.Storage.CreateConfirmacao(c); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, apperr.Conflict("usuário já confirmou esta denúncia")
		}
		return nil, apperr.Storage("erro ao criar confirmação", err)
	}

	total, err := s.Storage.CountConfirmacoes(denunciaID)
	if err != nil {
		return nil, apperr.Storage("erro ao contar confirmações", err)
	}
	metrics.ConfirmacaoRegistrada()

	return &models.ConfirmacaoResult{
		ID:                c.ID,
		DenunciaID:        denunciaID,
		UsuarioID:         usuarioID,
		TotalConfirmacoes: total,
	}, nil
}
