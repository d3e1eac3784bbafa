// Package storage is the only layer that talks to PostgreSQL and Redis.
// Services depend on the Storage interface, never on gorm directly.
package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"vozurbana/backend/internal/models"
)

// ErrDuplicate is returned when an insert violates a unique index. The
// confirmation ledger relies on it to close the duplicate-vote race at the
// database rather than in application code.
var ErrDuplicate = errors.New("duplicate record")

type Storage interface {
	CreateDenuncia(d *models.Denuncia) error
	GetDenunciaByID(id uint) (*models.Denuncia, error)
	GetDenuncias() ([]models.Denuncia, error)
	CountDenuncias() (int64, error)
	CountDenunciasPorStatus() ([]models.StatusContagem, error)
	CountDenunciasPorDepartamento() ([]models.DepartamentoContagem, error)

	CreateConfirmacao(c *models.Confirmacao) error
	ExisteConfirmacao(usuarioID, denunciaID uint) (bool, error)
	CountConfirmacoes(denunciaID uint) (int64, error)

	CreateComentario(c *models.Comentario) error
	GetComentariosPorDenuncia(denunciaID uint) ([]models.Comentario, error)

	CreateUsuario(u *models.Usuario) error
	GetUsuarioByID(id uint) (*models.Usuario, error)
	GetUsuarioByEmail(email string) (*models.Usuario, error)

	GetDepartamentos() ([]models.Departamento, error)
	GetDepartamentoByID(id uint) (*models.Departamento, error)
	GetDepartamentoByNome(nome string) (*models.Departamento, error)
	CreateDepartamento(d *models.Departamento) error
	UpdateDepartamento(d *models.Departamento) error
	DeleteDepartamento(id uint) error

	GetTiposDenuncia() ([]models.TipoDenuncia, error)
	GetTipoDenunciaByID(id uint) (*models.TipoDenuncia, error)
	GetTiposDenunciaPorDepartamento(departamentoID uint) ([]models.TipoDenuncia, error)
	CreateTipoDenuncia(t *models.TipoDenuncia) error
	UpdateTipoDenuncia(t *models.TipoDenuncia) error
	DeleteTipoDenuncia(id uint) error

	PublishFeedEvent(ev models.FeedEvent) error
}

// Service implements Storage over gorm and a Redis client. Redis may be nil
// when running without the realtime feed (CLI tools, tests).
type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// Migrate creates or updates all tables, including the composite unique
// index on confirmations.
func (s *Service) Migrate() error {
	return s.DB.AutoMigrate(
		&models.Usuario{},
		&models.Departamento{},
		&models.TipoDenuncia{},
		&models.Denuncia{},
		&models.Confirmacao{},
		&models.Comentario{},
	)
}

// translateError maps gorm's translated errors onto the package sentinels.
// Requires gorm.Config{TranslateError: true} on the session.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}
