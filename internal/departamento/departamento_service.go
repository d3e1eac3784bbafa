// Package departamento manages the staff-maintained reference data:
// departments and the complaint categories they own.
package departamento

import (
	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/models"
	"vozurbana/backend/internal/storage"
)

// Service guards department and category writes with the role and
// referential-integrity rules.
type Service struct {
	Storage storage.Storage
}

func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

func (s *Service) List() ([]models.Departamento, error) {
	departamentos, err := s.Storage.GetDepartamentos()
	if err != nil {
		return nil, apperr.Storage("erro ao buscar departamentos", err)
	}
	return departamentos, nil
}

func (s *Service) GetByID(id uint) (*models.Departamento, error) {
	d, err := s.Storage.GetDepartamentoByID(id)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar departamento", err)
	}
	if d == nil {
		return nil, apperr.NotFound("departamento não encontrado")
	}
	return d, nil
}

func (s *Service) GetByNome(nome string) (*models.Departamento, error) {
	if nome == "" {
		return nil, apperr.Validation("nome inválido")
	}
	d, err := s.Storage.GetDepartamentoByNome(nome)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar departamento", err)
	}
	if d == nil {
		return nil, apperr.NotFound("departamento não encontrado")
	}
	return d, nil
}

// Create checks that the manager exists and holds the staff role, and that
// no department already uses the name.
func (s *Service) Create(input *models.DepartamentoInput) (*models.Departamento, error) {
	if err := s.checkGerente(input.GerenteID); err != nil {
		return nil, err
	}

	existente, err := s.Storage.GetDepartamentoByNome(input.Nome)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar departamento", err)
	}
	if existente != nil {
		return nil, apperr.Conflict("departamento com este nome já existe")
	}

	d := &models.Departamento{
		Nome:                 input.Nome,
		Endereco:             input.Endereco,
		HorarioFuncionamento: input.HorarioFuncionamento,
		GerenteID:            input.GerenteID,
	}
	if err := s.Storage.CreateDepartamento(d); err != nil {
		if err == storage.ErrDuplicate {
			return nil, apperr.Conflict("departamento com este nome já existe")
		}
		return nil, apperr.Storage("erro ao criar departamento", err)
	}
	return d, nil
}

// Update applies the same guards as Create. Keeping the department's own
// name is allowed; taking another department's name is not.
func (s *Service) Update(id uint, input *models.DepartamentoInput) (*models.Departamento, error) {
	d, err := s.Storage.GetDepartamentoByID(id)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar departamento", err)
	}
	if d == nil {
		return nil, apperr.NotFound("departamento não encontrado")
	}

	if err := s.checkGerente(input.GerenteID); err != nil {
		return nil, err
	}

	existente, err := s.Storage.GetDepartamentoByNome(input.Nome)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar departamento", err)
	}
	if existente != nil && existente.ID != id {
		return nil, apperr.Conflict("departamento com este nome já existe")
	}

	d.Nome = input.Nome
	d.Endereco = input.Endereco
	d.HorarioFuncionamento = input.HorarioFuncionamento
	d.GerenteID = input.GerenteID
	if err := s.Storage.UpdateDepartamento(d); err != nil {
		return nil, apperr.Storage("erro ao atualizar departamento", err)
	}
	return d, nil
}

// Delete refuses while any category still references the department.
func (s *Service) Delete(id uint) error {
	d, err := s.Storage.GetDepartamentoByID(id)
	if err != nil {
		return apperr.Storage("erro ao buscar departamento", err)
	}
	if d == nil {
		return apperr.NotFound("departamento não encontrado")
	}

	vinculados, err := s.Storage.GetTiposDenunciaPorDepartamento(id)
	if err != nil {
		return apperr.Storage("erro ao buscar tipos de denúncia", err)
	}
	if len(vinculados) > 0 {
		return apperr.Conflict(
			"não é possível deletar: este departamento está sendo usado por tipos de denúncia")
	}

	if err := s.Storage.DeleteDepartamento(id); err != nil {
		return apperr.Storage("erro ao deletar departamento", err)
	}
	return nil
}

func (s *Service) checkGerente(gerenteID uint) error {
	gerente, err := s.Storage.GetUsuarioByID(gerenteID)
	if err != nil {
		return apperr.Storage("erro ao buscar gerente", err)
	}
	if gerente == nil {
		return apperr.NotFound("id de gerente não encontrado")
	}
	if !gerente.IsFuncionario() {
		return apperr.Validation("gerente selecionado não tem o papel 'funcionario'")
	}
	return nil
}
