package storage

import (
	"errors"

	"gorm.io/gorm"

	"vozurbana/backend/internal/models"
)

func (s *Service) GetDepartamentos() ([]models.Departamento, error) {
	var departamentos []models.Departamento
	if err := s.DB.Order("id").Find(&departamentos).Error; err != nil {
		return nil, err
	}
	return departamentos, nil
}

func (s *Service) GetDepartamentoByID(id uint) (*models.Departamento, error) {
	var d models.Departamento
	err := s.DB.First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) GetDepartamentoByNome(nome string) (*models.Departamento, error) {
	var d models.Departamento
	err := s.DB.Where("nome = ?", nome).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) CreateDepartamento(d *models.Departamento) error {
	return translateError(s.DB.Create(d).Error)
}

func (s *Service) UpdateDepartamento(d *models.Departamento) error {
	return translateError(s.DB.Save(d).Error)
}

func (s *Service) DeleteDepartamento(id uint) error {
	return s.DB.Delete(&models.Departamento{}, id).Error
}

func (s *Service) GetTiposDenuncia() ([]models.TipoDenuncia, error) {
	var tipos []models.TipoDenuncia
	if err := s.DB.Order("id").Find(&tipos).Error; err != nil {
		return nil, err
	}
	return tipos, nil
}

func (s *Service) GetTipoDenunciaByID(id uint) (*models.TipoDenuncia, error) {
	var t models.TipoDenuncia
	err := s.DB.First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTiposDenunciaPorDepartamento backs the referential-integrity check that
// blocks deleting a department while categories still reference it.
func (s *Service) GetTiposDenunciaPorDepartamento(departamentoID uint) ([]models.TipoDenuncia, error) {
	var tipos []models.TipoDenuncia
	err := s.DB.Where("departamento_id = ?", departamentoID).Find(&tipos).Error
	if err != nil {
		return nil, err
	}
	return tipos, nil
}

func (s *Service) CreateTipoDenuncia(t *models.TipoDenuncia) error {
	return translateError(s.DB.Create(t).Error)
}

func (s *Service) UpdateTipoDenuncia(t *models.TipoDenuncia) error {
	return translateError(s.DB.Save(t).Error)
}

func (s *Service) DeleteTipoDenuncia(id uint) error {
	return s.DB.Delete(&models.TipoDenuncia{}, id).Error
}
