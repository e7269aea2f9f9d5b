package repositories

import (
	"context"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

type ClassRepository interface {
	Insert(ctx context.Context, class *db_models.FitnessClass) error
	ListAll(ctx context.Context) ([]db_models.FitnessClass, error)
	Remove(ctx context.Context, classID int) error
	FindFittingDuration(ctx context.Context, maxMinutes int) ([]db_models.FitnessClass, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Insert(ctx context.Context, class *db_models.FitnessClass) error {
	return r.db.WithContext(ctx).Create(class).Error
}

func (r *classRepository) ListAll(ctx context.Context) ([]db_models.FitnessClass, error) {
	var classes []db_models.FitnessClass
	err := r.db.WithContext(ctx).Order("class_id ASC").Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) Remove(ctx context.Context, classID int) error {
	res := r.db.WithContext(ctx).Delete(&db_models.FitnessClass{}, "class_id = ?", classID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrClassNotFound
	}
	return nil
}

func (r *classRepository) FindFittingDuration(ctx context.Context, maxMinutes int) ([]db_models.FitnessClass, error) {
	var classes []db_models.FitnessClass
	err := r.db.WithContext(ctx).
		Where("duration <= ?", maxMinutes).
		Order("class_id ASC").
		Find(&classes).Error
	if err != nil {
		return nil, err
	}
	return classes, nil
}
