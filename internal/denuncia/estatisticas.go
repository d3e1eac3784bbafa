package denuncia

import (
	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/models"
)

// Estatisticas computes the dashboard aggregate from live data: total report
// count, counts grouped by status label, and counts grouped by department
// name through the category join. Nothing is cached.
func (s *Service) Estatisticas() (*models.Estatisticas, error) {
	total, err := s.Storage.CountDenuncias()
	if err != nil {
		return nil, apperr.Storage("erro ao contar denúncias", err)
	}
	porStatus, err := s.Storage.CountDenunciasPorStatus()
	if err != nil {
		return nil, apperr.Storage("erro ao agrupar por status", err)
	}
	porDepartamento, err := s.Storage.CountDenunciasPorDepartamento()
	if err != nil {
		return nil, apperr.Storage("erro ao agrupar por departamento", err)
	}

	if porStatus == nil {
		porStatus = []models.StatusContagem{}
	}
	if porDepartamento == nil {
		porDepartamento = []models.DepartamentoContagem{}
	}
	return &models.Estatisticas{
		TotalDenuncias:           total,
		DenunciasPorStatus:       porStatus,
		DenunciasPorDepartamento: porDepartamento,
	}, nil
}
