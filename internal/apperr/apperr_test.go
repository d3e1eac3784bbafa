package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"vozurbana/backend/internal/apperr"
)

func TestHasKind(t *testing.T) {
	err := apperr.NotFound("denúncia não encontrada")

	assert.True(t, apperr.HasKind(err, apperr.KindNotFound))
	assert.False(t, apperr.HasKind(err, apperr.KindConflict))
	assert.False(t, apperr.HasKind(errors.New("raw"), apperr.KindNotFound))
	assert.False(t, apperr.HasKind(nil, apperr.KindNotFound))
}

// TestHasKind_Wrapped: classification survives another layer of wrapping.
func TestHasKind_Wrapped(t *testing.T) {
	err := fmt.Errorf("ao atender requisição: %w", apperr.Conflict("usuário já confirmou esta denúncia"))

	assert.True(t, apperr.HasKind(err, apperr.KindConflict))
}

func TestStorageKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Storage("erro ao buscar denúncias", cause)

	assert.True(t, apperr.HasKind(err, apperr.KindStorage))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "erro ao buscar denúncias: connection refused", err.Error())
}

func TestErrorMessageWithoutCause(t *testing.T) {
	err := apperr.Validation("título é obrigatório")
	assert.Equal(t, "título é obrigatório", err.Error())
}

// TestIs_MatchesByKind: two classified errors with the same kind match under
// errors.Is even when the messages differ.
func TestIs_MatchesByKind(t *testing.T) {
	assert.ErrorIs(t, apperr.NotFound("a"), apperr.NotFound("b"))
	assert.NotErrorIs(t, apperr.NotFound("a"), apperr.Conflict("a"))
}

func TestWrap(t *testing.T) {
	cause := errors.New("record not found")
	err := apperr.Wrap(apperr.KindNotFound, "denúncias não encontradas", cause)

	assert.True(t, apperr.HasKind(err, apperr.KindNotFound))
	assert.ErrorIs(t, err, cause)
}
