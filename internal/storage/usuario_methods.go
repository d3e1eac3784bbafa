package storage

import (
	"errors"

	"gorm.io/gorm"

	"vozurbana/backend/internal/models"
)

// CreateUsuario inserts an account. A duplicate email trips the unique index
// and comes back as ErrDuplicate.
func (s *Service) CreateUsuario(u *models.Usuario) error {
	return translateError(s.DB.Create(u).Error)
}

// GetUsuarioByID returns (nil, nil) when the account does not exist.
func (s *Service) GetUsuarioByID(id uint) (*models.Usuario, error) {
	var u models.Usuario
	err := s.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUsuarioByEmail is used by credential issuance; it returns the full
// record including the password hash.
func (s *Service) GetUsuarioByEmail(email string) (*models.Usuario, error) {
	var u models.Usuario
	err := s.DB.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
