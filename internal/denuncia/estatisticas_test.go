package denuncia_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/denuncia"
	"vozurbana/backend/internal/models"
)

// TestEstatisticas_AggregatesThreeViews verifies the total, the status
// grouping and the department grouping are assembled from storage as-is.
func TestEstatisticas_AggregatesThreeViews(t *testing.T) {
	storageMock := new(MockStorage)
	svc := denuncia.NewService(storageMock)

	storageMock.On("CountDenuncias").Return(int64(3), nil).Once()
	storageMock.On("CountDenunciasPorStatus").Return([]models.StatusContagem{
		{Status: "Pendente", Contagem: 2},
		{Status: "Resolvida", Contagem: 1},
	}, nil).Once()
	storageMock.On("CountDenunciasPorDepartamento").Return([]models.DepartamentoContagem{
		{NomeDepartamento: "Obras", Contagem: 3},
	}, nil).Once()

	stats, err := svc.Estatisticas()

	assert.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalDenuncias)
	assert.Equal(t, []models.StatusContagem{
		{Status: "Pendente", Contagem: 2},
		{Status: "Resolvida", Contagem: 1},
	}, stats.DenunciasPorStatus)
	assert.Equal(t, "Obras", stats.DenunciasPorDepartamento[0].NomeDepartamento)
}

// TestEstatisticas_EmptyGroupingsAreNotNil verifies callers always get
// arrays, never null, in the JSON projection.
func TestEstatisticas_EmptyGroupingsAreNotNil(t *testing.T) {
	storageMock := new(MockStorage)
	svc := denuncia.NewService(storageMock)

	storageMock.On("CountDenuncias").Return(int64(0), nil).Once()
	storageMock.On("CountDenunciasPorStatus").Return(nil, nil).Once()
	storageMock.On("CountDenunciasPorDepartamento").Return(nil, nil).Once()

	stats, err := svc.Estatisticas()

	assert.NoError(t, err)
	assert.NotNil(t, stats.DenunciasPorStatus)
	assert.NotNil(t, stats.DenunciasPorDepartamento)
}

// TestEstatisticas_StorageFailure verifies the classification of a failed
// aggregate query.
func TestEstatisticas_StorageFailure(t *testing.T) {
	storageMock := new(MockStorage)
	svc := denuncia.NewService(storageMock)

	storageMock.On("CountDenuncias").Return(int64(0), errors.New("timeout")).Once()

	_, err := svc.Estatisticas()

	assert.True(t, apperr.HasKind(err, apperr.KindStorage))
}
