package db

import (
	"errors"
	"fmt"
	"recipe-api/model"
	"recipe-api/pkg/security"
	"recipe-api/validators"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CreateSuperuser provisions a staff+superuser account from an
// "email:password" spec. Used by the --create-superuser flag.
func CreateSuperuser(d *gorm.DB, h *security.Hasher, spec string) (*model.User, error) {
	email, password, ok := strings.Cut(spec, ":")
	if !ok {
		return nil, errors.New("expected email:password")
	}

	if err := validators.EmailValidator(email); err != nil {
		return nil, err
	}

	if err := validators.PasswordValidator(password); err != nil {
		return nil, err
	}

	hash, err := h.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password, %w", err)
	}

	id, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID, %w", err)
	}

	user := model.User{
		ID:           id,
		Email:        validators.NormalizeEmail(email),
		PasswordHash: hash,
		Active:       true,
		Staff:        true,
		Superuser:    true,
	}

	if err := d.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create superuser, %w", err)
	}

	return &user, nil
}
