package denuncia_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/denuncia"
	"vozurbana/backend/internal/models"
)

// TestComentar_WhitespaceOnlyIsRejected verifies blank text fails before any
// storage access.
func TestComentar_WhitespaceOnlyIsRejected(t *testing.T) {
	storageMock := new(MockStorage)
	svc := denuncia.NewService(storageMock)

	_, err := svc.Comentar(5, 10, "   ")

	assert.True(t, apperr.HasKind(err, apperr.KindValidation))
	storageMock.AssertNotCalled(t, "GetDenunciaByID", mock.Anything)
}

// TestComentar_RoleSnapshot verifies the commenter's current role is stamped
// onto the comment at write time.
func TestComentar_RoleSnapshot(t *testing.T) {
	storageMock := new(MockStorage)
	svc := denuncia.NewService(storageMock)

	storageMock.On("GetDenunciaByID", uint(10)).Return(&models.Denuncia{ID: 10}, nil).Once()
	storageMock.On("GetUsuarioByID", uint(5)).Return(&models.Usuario{
		ID: 5, Nome: "Ana", Papel: "funcionario",
	}, nil).Once()
	storageMock.On("CreateComentario", mock.MatchedBy(func(c *models.Comentario) bool {
		return c.TipoUsuario == "funcionario" && c.Texto == "ok"
	})).Return(nil).Once()

	comentario, err := svc.Comentar(5, 10, "ok")

	assert.NoError(t, err)
	assert.Equal(t, "funcionario", comentario.TipoUsuario)
	assert.WithinDuration(t, time.Now(), comentario.Data, 2*time.Second)
	storageMock.AssertExpectations(t)
}

// TestComentar_DenunciaNotFound covers the missing-report case.
func TestComentar_DenunciaNotFound(t *testing.T) {
	storageMock := new(MockStorage)
	svc := denuncia.NewService(storageMock)

	storageMock.On("GetDenunciaByID", uint(99)).Return(nil, nil).Once()

	_, err := svc.Comentar(5, 99, "ok")

	assert.True(t, apperr.HasKind(err, apperr.KindNotFound))
}

// TestComentar_UsuarioNotFound covers the missing-commenter case.
func TestComentar_UsuarioNotFound(t *testing.T) {
	storageMock := new(MockStorage)
	svc := denuncia.NewService(storageMock)

	storageMock.On("GetDenunciaByID", uint(10)).Return(&models.Denuncia{ID: 10}, nil).Once()
	storageMock.On("GetUsuarioByID", uint(99)).Return(nil, nil).Once()

	_, err := svc.Comentar(99, 10, "ok")

	assert.True(t, apperr.HasKind(err, apperr.KindNotFound))
	storageMock.AssertNotCalled(t, "CreateComentario", mock.Anything)
}
