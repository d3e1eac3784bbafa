package denuncia

import (
	"strings"
	"time"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/metrics"
	"vozurbana/backend/internal/models"
)

// Comentar appends a role-tagged comment to a report. The commenter's role
// is looked up once and stamped onto the comment; later role changes never
// rewrite past comments.
func (s *Service) Comentar(usuarioID, denunciaID uint, texto string) (*models.Comentario, error) {
	if strings.TrimSpace(texto) == "" {
		return nil, apperr.Validation("texto do comentário é obrigatório")
	}

	d, err := s.Storage.GetDenunciaByID(denunciaID)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar denúncia", err)
	}
	if d == nil {
		return nil, apperr.NotFound("denúncia não encontrada")
	}

	u, err := s.Storage.GetUsuarioByID(usuarioID)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar usuário", err)
	}
	if u == nil {
		return nil, apperr.NotFound("usuário não encontrado")
	}

	c := &models.Comentario{
		Texto:       texto,
		UsuarioID:   usuarioID,
		DenunciaID:  denunciaID,
		TipoUsuario: u.Papel,
		Data:        time.Now(),
	}
	if err := s.Storage.CreateComentario(c); err != nil {
		return nil, apperr.Storage("erro ao criar comentário", err)
	}
	metrics.ComentarioRegistrado()
	return c, nil
}

// ListComentarios returns a report's comments in insertion order.
func (s *Service) ListComentarios(denunciaID uint) ([]models.Comentario, error) {
	d, err := s.Storage.GetDenunciaByID(denunciaID)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar denúncia", err)
	}
	if d == nil {
		return nil, apperr.NotFound("denúncia não encontrada")
	}
	comentarios, err := s.Storage.GetComentariosPorDenuncia(denunciaID)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar comentários", err)
	}
	return comentarios, nil
}
