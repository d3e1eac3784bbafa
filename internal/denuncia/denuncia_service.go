// Package denuncia is the complaint domain engine: submission with
// identity/anonymity resolution, enriched listings, the confirmation and
// comment ledgers, and the statistics aggregate. All state lives in storage;
// every operation is request-scoped.
package denuncia

import (
	"log"
	"sort"
	"strings"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/config"
	"vozurbana/backend/internal/metrics"
	"vozurbana/backend/internal/models"
	"vozurbana/backend/internal/priority"
	"vozurbana/backend/internal/storage"
)

// Notifier receives reports that classified at the critical level.
type Notifier interface {
	NotificarCritica(d *models.Denuncia)
}

// Service handles the business logic for reports.
type Service struct {
	Storage  storage.Storage
	notifier Notifier
}

// NewService creates a new report service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// SetNotifier attaches an optional alerting sink for critical reports.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

// Submit creates a report, resolving ownership and anonymity:
//
//   - no authenticated user: anonymous, no owner, whatever the client sent;
//   - authenticated user asking for anonymity: the identity is discarded,
//     not merely hidden;
//   - authenticated user otherwise: owned, not anonymous.
//
// The computed priority is attached to the response but not persisted.
func (s *Service) Submit(input *models.DenunciaInput, usuarioID *uint) (*models.Denuncia, error) {
	if strings.TrimSpace(input.Titulo) == "" ||
		strings.TrimSpace(input.Descricao) == "" ||
		strings.TrimSpace(input.EnderecoDenuncia) == "" ||
		input.TipoDenunciaID == 0 {
		return nil, apperr.Validation(
			"campos obrigatórios ausentes: titulo, descricao, endereco_denuncia, tipo_denuncia_id")
	}

	var owner *uint
	anonimo := true
	if usuarioID != nil && *usuarioID > 0 {
		if input.Anonimo {
			owner = nil
		} else {
			owner = usuarioID
			anonimo = false
		}
	}

	status := input.Status
	if status == "" {
		status = config.StatusPendente
	}

	d := &models.Denuncia{
		Titulo:           input.Titulo,
		Descricao:        input.Descricao,
		EnderecoDenuncia: input.EnderecoDenuncia,
		TipoDenunciaID:   input.TipoDenunciaID,
		Status:           status,
		Anonimo:          anonimo,
		UsuarioID:        owner,
		Fotos:            models.FotoList(input.Fotos),
	}

	if err := s.Storage.CreateDenuncia(d); err != nil {
		return nil, apperr.Storage("erro ao criar denúncia", err)
	}

	d.Prioridade = priority.Classify(d.Titulo, d.Descricao)
	metrics.DenunciaSubmetida(d.Prioridade)

	// Side channels are best effort: a dashboard or Telegram hiccup must not
	// fail a submission that is already persisted.
	if err := s.Storage.PublishFeedEvent(models.FeedEvent{
		DenunciaID: d.ID,
		Titulo:     d.Titulo,
		Status:     d.Status,
		Prioridade: d.Prioridade,
		CriadaEm:   d.CreatedAt,
	}); err != nil {
		log.Printf("feed publish failed for denuncia %d: %v", d.ID, err)
	}
	if s.notifier != nil && d.Prioridade == config.PrioridadeCritica {
		s.notifier.NotificarCritica(d)
	}

	return d, nil
}

// ListEnriched fetches every report and attaches a freshly computed
// priority, independent of anything persisted.
func (s *Service) ListEnriched() ([]models.Denuncia, error) {
	denuncias, err := s.Storage.GetDenuncias()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindNotFound, "denúncias não encontradas", err)
	}
	for i := range denuncias {
		denuncias[i].Prioridade = priority.Classify(denuncias[i].Titulo, denuncias[i].Descricao)
	}
	return denuncias, nil
}

// ListByPriority returns the enriched list sorted by priority descending.
// The sort is stable: reports with equal priority keep storage order.
func (s *Service) ListByPriority() ([]models.Denuncia, error) {
	denuncias, err := s.ListEnriched()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(denuncias, func(i, j int) bool {
		return denuncias[i].Prioridade > denuncias[j].Prioridade
	})
	return denuncias, nil
}

// ListAnonymized strips the owner from every report regardless of each
// record's own anonymity flag. Any public listing gets this blanket
// redaction.
func (s *Service) ListAnonymized() ([]models.Denuncia, error) {
	denuncias, err := s.ListEnriched()
	if err != nil {
		return nil, err
	}
	for i := range denuncias {
		denuncias[i].UsuarioID = nil
	}
	return denuncias, nil
}
