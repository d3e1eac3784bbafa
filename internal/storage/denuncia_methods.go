package storage

import (
	"errors"

	"gorm.io/gorm"

	"vozurbana/backend/internal/models"
)

// CreateDenuncia inserts a new report and fills in its generated ID.
func (s *Service) CreateDenuncia(d *models.Denuncia) error {
	return translateError(s.DB.Create(d).Error)
}

// GetDenunciaByID returns (nil, nil) when the report does not exist.
func (s *Service) GetDenunciaByID(id uint) (*models.Denuncia, error) {
	var d models.Denuncia
	err := s.DB.First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetDenuncias lists every report in insertion order. An empty table is a
// valid answer, not an error.
func (s *Service) GetDenuncias() ([]models.Denuncia, error) {
	var denuncias []models.Denuncia
	if err := s.DB.Order("id").Find(&denuncias).Error; err != nil {
		return nil, err
	}
	return denuncias, nil
}

func (s *Service) CountDenuncias() (int64, error) {
	var total int64
	err := s.DB.Model(&models.Denuncia{}).Count(&total).Error
	return total, err
}

// CountDenunciasPorStatus groups by whatever status strings exist; there is
// no fixed enumeration.
func (s *Service) CountDenunciasPorStatus() ([]models.StatusContagem, error) {
	var rows []models.StatusContagem
	err := s.DB.Model(&models.Denuncia{}).
		Select("status, count(*) as contagem").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

// CountDenunciasPorDepartamento resolves each report to its owning
// department through the category join and counts per department name.
func (s *Service) CountDenunciasPorDepartamento() ([]models.DepartamentoContagem, error) {
	var rows []models.DepartamentoContagem
	err := s.DB.Model(&models.Denuncia{}).
		Select("departamentos.nome as nome_departamento, count(denuncias.id) as contagem").
		Joins("JOIN tipo_denuncia ON denuncias.tipo_denuncia_id = tipo_denuncia.id").
		Joins("JOIN departamentos ON tipo_denuncia.departamento_id = departamentos.id").
		Group("departamentos.nome").
		Scan(&rows).Error
	return rows, err
}

// CreateConfirmacao inserts a vote. A second vote by the same user on the
// same report trips the composite unique index and comes back as
// ErrDuplicate.
func (s *Service) CreateConfirmacao(c *models.Confirmacao) error {
	return translateError(s.DB.Create(c).Error)
}

func (s *Service) ExisteConfirmacao(usuarioID, denunciaID uint) (bool, error) {
	var n int64
	err := s.DB.Model(&models.Confirmacao{}).
		Where("usuario_id = ? AND denuncia_id = ?", usuarioID, denunciaID).
		Count(&n).Error
	return n > 0, err
}

// CountConfirmacoes is a fresh count query, never an in-memory counter.
func (s *Service) CountConfirmacoes(denunciaID uint) (int64, error) {
	var n int64
	err := s.DB.Model(&models.Confirmacao{}).
		Where("denuncia_id = ?", denunciaID).
		Count(&n).Error
	return n, err
}

func (s *Service) CreateComentario(c *models.Comentario) error {
	return translateError(s.DB.Create(c).Error)
}

func (s *Service) GetComentariosPorDenuncia(denunciaID uint) ([]models.Comentario, error) {
	var comentarios []models.Comentario
	err := s.DB.Where("denuncia_id = ?", denunciaID).Order("id").Find(&comentarios).Error
	if err != nil {
		return nil, err
	}
	return comentarios, nil
}
