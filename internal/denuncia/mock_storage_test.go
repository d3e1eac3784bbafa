package denuncia_test

import (
	"github.com/stretchr/testify/mock"

	"vozurbana/backend/internal/models"
)

// MockStorage is a hand-written testify mock for the storage.Storage
// interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CreateDenuncia(d *models.Denuncia) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockStorage) GetDenunciaByID(id uint) (*models.Denuncia, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Denuncia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetDenuncias() ([]models.Denuncia, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Denuncia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CountDenuncias() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CountDenunciasPorStatus() ([]models.StatusContagem, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.StatusContagem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CountDenunciasPorDepartamento() ([]models.DepartamentoContagem, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.DepartamentoContagem), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CreateConfirmacao(c *models.Confirmacao) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) ExisteConfirmacao(usuarioID, denunciaID uint) (bool, error) {
	args := m.Called(usuarioID, denunciaID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) CountConfirmacoes(denunciaID uint) (int64, error) {
	args := m.Called(denunciaID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) CreateComentario(c *models.Comentario) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockStorage) GetComentariosPorDenuncia(denunciaID uint) ([]models.Comentario, error) {
	args := m.Called(denunciaID)
	if v := args.Get(0); v != nil {
		return v.([]models.Comentario), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CreateUsuario(u *models.Usuario) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockStorage) GetUsuarioByID(id uint) (*models.Usuario, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Usuario), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetUsuarioByEmail(email string) (*models.Usuario, error) {
	args := m.Called(email)
	if v := args.Get(0); v != nil {
		return v.(*models.Usuario), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetDepartamentos() ([]models.Departamento, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.Departamento), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetDepartamentoByID(id uint) (*models.Departamento, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.Departamento), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetDepartamentoByNome(nome string) (*models.Departamento, error) {
	args := m.Called(nome)
	if v := args.Get(0); v != nil {
		return v.(*models.Departamento), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CreateDepartamento(d *models.Departamento) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockStorage) UpdateDepartamento(d *models.Departamento) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockStorage) DeleteDepartamento(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) GetTiposDenuncia() ([]models.TipoDenuncia, error) {
	args := m.Called()
	if v := args.Get(0); v != nil {
		return v.([]models.TipoDenuncia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetTipoDenunciaByID(id uint) (*models.TipoDenuncia, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.TipoDenuncia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) GetTiposDenunciaPorDepartamento(departamentoID uint) ([]models.TipoDenuncia, error) {
	args := m.Called(departamentoID)
	if v := args.Get(0); v != nil {
		return v.([]models.TipoDenuncia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStorage) CreateTipoDenuncia(t *models.TipoDenuncia) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockStorage) UpdateTipoDenuncia(t *models.TipoDenuncia) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockStorage) DeleteTipoDenuncia(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStorage) PublishFeedEvent(ev models.FeedEvent) error {
	args := m.Called(ev)
	return args.Error(0)
}
