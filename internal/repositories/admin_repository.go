package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

type AdminRepository interface {
	Insert(ctx context.Context, admin *db_models.Admin) error
	FindByUsername(ctx context.Context, username string) (*db_models.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Insert(ctx context.Context, admin *db_models.Admin) error {
	err := r.db.WithContext(ctx).Create(admin).Error
	if isUniqueViolation(err) {
		return utils.ErrUsernameAlreadyExists
	}
	return err
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*db_models.Admin, error) {
	var admin db_models.Admin
	err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}
