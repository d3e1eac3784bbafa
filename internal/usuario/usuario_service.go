// Package usuario handles account registration and credential issuance.
package usuario

import (
	jwt "github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"vozurbana/backend/internal/apperr"
	"vozurbana/backend/internal/models"
	"vozurbana/backend/internal/storage"
)

// Service handles registration, login and profile lookups.
type Service struct {
	Storage   storage.Storage
	jwtSecret []byte
}

func NewService(s storage.Storage, jwtSecret string) *Service {
	return &Service{Storage: s, jwtSecret: []byte(jwtSecret)}
}

// Register creates a citizen account. Emails are unique; the password is
// stored only as a bcrypt hash.
func (s *Service) Register(nome, email, senha string) (*models.Usuario, error) {
	if nome == "" || email == "" || senha == "" {
		return nil, apperr.Validation("nome, email e senha são obrigatórios")
	}

	existente, err := s.Storage.GetUsuarioByEmail(email)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar usuário", err)
	}
	if existente != nil {
		return nil, apperr.Conflict("email já vinculado em um usuário")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage("erro ao gerar hash de senha", err)
	}

	u := &models.Usuario{Nome: nome, Email: email, SenhaHash: string(hash)}
	if err := s.Storage.CreateUsuario(u); err != nil {
		if err == storage.ErrDuplicate {
			return nil, apperr.Conflict("email já vinculado em um usuário")
		}
		return nil, apperr.Storage("erro ao criar usuário", err)
	}
	return u, nil
}

// Login verifies the credentials and issues an HS256 token carrying the
// account id and role.
func (s *Service) Login(email, senha string) (string, error) {
	u, err := s.Storage.GetUsuarioByEmail(email)
	if err != nil {
		return "", apperr.Storage("erro ao buscar usuário", err)
	}
	if u == nil {
		return "", apperr.NotFound("email não existe, por favor crie uma nova conta")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)) != nil {
		return "", apperr.Validation("senha inválida")
	}

	claims := jwt.MapClaims{
		"id":    u.ID,
		"papel": u.Papel,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperr.Storage("erro ao assinar token", err)
	}
	return signed, nil
}

// Profile returns the account behind an authenticated request.
func (s *Service) Profile(id uint) (*models.Usuario, error) {
	u, err := s.Storage.GetUsuarioByID(id)
	if err != nil {
		return nil, apperr.Storage("erro ao buscar usuário", err)
	}
	if u == nil {
		return nil, apperr.NotFound("usuário não encontrado")
	}
	return u, nil
}
