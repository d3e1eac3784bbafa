package usuario_test

import (
	"testing"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/models"
	"vozurbana/backend/internal/storage"
	"vozurbana/backend/internal/usuario"
)

// fakeStorage is a map-backed stand-in. It embeds the interface so only the
// methods this package actually calls need implementations.
type fakeStorage struct {
	storage.Storage
	byEmail map[string]*models.Usuario
	byID    map[uint]*models.Usuario
	nextID  uint
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		byEmail: make(map[string]*models.Usuario),
		byID:    make(map[uint]*models.Usuario),
		nextID:  1,
	}
}

func (f *fakeStorage) GetUsuarioByEmail(email string) (*models.Usuario, error) {
	return f.byEmail[email], nil
}

func (f *fakeStorage) GetUsuarioByID(id uint) (*models.Usuario, error) {
	return f.byID[id], nil
}

func (f *fakeStorage) CreateUsuario(u *models.Usuario) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return storage.ErrDuplicate
	}
	if u.Papel == "" {
		u.Papel = "cidadao"
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

const testSecret = "test-secret"

// TestRegister_HashesPasswordAndDefaultsRole verifies the stored credential
// is a verifiable bcrypt hash, never the plain password, and that
// self-registration starts as a citizen.
func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	svc := usuario.NewService(newFakeStorage(), testSecret)

	u, err := svc.Register("Ana", "ana@example.com", "segredo123")

	require.NoError(t, err)
	assert.Equal(t, "cidadao", u.Papel)
	assert.NotEqual(t, "segredo123", u.SenhaHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte("segredo123")))
}

// TestRegister_DuplicateEmail verifies the uniqueness conflict.
func TestRegister_DuplicateEmail(t *testing.T) {
	s := newFakeStorage()
	svc := usuario.NewService(s, testSecret)

	_, err := svc.Register("Ana", "ana@example.com", "segredo123")
	require.NoError(t, err)

	_, err = svc.Register("Outra Ana", "ana@example.com", "outrasenha")
	assert.True(t, apperr.HasKind(err, apperr.KindConflict))
}

// TestLogin_IssuesTokenWithIDAndRole verifies the signed token carries the
// account id and role claims.
func TestLogin_IssuesTokenWithIDAndRole(t *testing.T) {
	s := newFakeStorage()
	svc := usuario.NewService(s, testSecret)

	registered, err := svc.Register("Ana", "ana@example.com", "segredo123")
	require.NoError(t, err)

	tokenString, err := svc.Login("ana@example.com", "segredo123")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(registered.ID), claims["id"])
	assert.Equal(t, "cidadao", claims["papel"])
}

// TestLogin_WrongPassword verifies an invalid credential classification.
func TestLogin_WrongPassword(t *testing.T) {
	s := newFakeStorage()
	svc := usuario.NewService(s, testSecret)

	_, err := svc.Register("Ana", "ana@example.com", "segredo123")
	require.NoError(t, err)

	_, err = svc.Login("ana@example.com", "errada")
	assert.True(t, apperr.HasKind(err, apperr.KindValidation))
}

// TestLogin_UnknownEmail verifies the not-found classification.
func TestLogin_UnknownEmail(t *testing.T) {
	svc := usuario.NewService(newFakeStorage(), testSecret)

	_, err := svc.Login("ninguem@example.com", "qualquer")
	assert.True(t, apperr.HasKind(err, apperr.KindNotFound))
}

// TestProfile verifies lookup by id, including the missing case.
func TestProfile(t *testing.T) {
	s := newFakeStorage()
	svc := usuario.NewService(s, testSecret)

	registered, err := svc.Register("Ana", "ana@example.com", "segredo123")
	require.NoError(t, err)

	u, err := svc.Profile(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)

	_, err = svc.Profile(999)
	assert.True(t, apperr.HasKind(err, apperr.KindNotFound))
}
