package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

type TrainerRepository interface {
	Insert(ctx context.Context, trainer *db_models.Trainer) error
	FindByID(ctx context.Context, id int) (*db_models.Trainer, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Trainer, error)
	// FindAvailable returns trainers with at least one availability window on
	// day that fully contains [start, end].
	FindAvailable(ctx context.Context, day, start, end string) ([]db_models.Trainer, error)
}

type trainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Insert(ctx context.Context, trainer *db_models.Trainer) error {
	err := r.db.WithContext(ctx).Create(trainer).Error
	if isUniqueViolation(err) {
		return utils.ErrEmailAlreadyExists
	}
	return err
}

func (r *trainerRepository) FindByID(ctx context.Context, id int) (*db_models.Trainer, error) {
	var trainer db_models.Trainer
	err := r.db.WithContext(ctx).First(&trainer, "trainer_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) FindByEmail(ctx context.Context, email string) (*db_models.Trainer, error) {
	var trainer db_models.Trainer
	err := r.db.WithContext(ctx).First(&trainer, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) FindAvailable(ctx context.Context, day, start, end string) ([]db_models.Trainer, error) {
	var trainers []db_models.Trainer
	err := r.db.WithContext(ctx).
		Distinct("trainer.*").
		Joins("JOIN trainer_availability ta ON ta.trainer_id = trainer.trainer_id").
		Where("ta.day_of_week = ?", day).
		Where("ta.start_time <= ? AND ta.end_time >= ?", start, end).
		Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return trainers, nil
}
