package repositories

import (
	"context"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

type AvailabilityRepository interface {
	Insert(ctx context.Context, availability *db_models.TrainerAvailability) error
	ListByTrainer(ctx context.Context, trainerID int) ([]db_models.TrainerAvailability, error)
	Update(ctx context.Context, availabilityID int, day, start, end string) error
	// Remove deletes an availability only when it belongs to trainerID. A
	// missing row and a wrong owner both come back as ErrAvailabilityNotFound.
	Remove(ctx context.Context, availabilityID, trainerID int) error
}

type availabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

func (r *availabilityRepository) Insert(ctx context.Context, availability *db_models.TrainerAvailability) error {
	return r.db.WithContext(ctx).Create(availability).Error
}

func (r *availabilityRepository) ListByTrainer(ctx context.Context, trainerID int) ([]db_models.TrainerAvailability, error) {
	var availabilities []db_models.TrainerAvailability
	err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("availability_id ASC").
		Find(&availabilities).Error
	if err != nil {
		return nil, err
	}
	return availabilities, nil
}

func (r *availabilityRepository) Update(ctx context.Context, availabilityID int, day, start, end string) error {
	res := r.db.WithContext(ctx).
		Model(&db_models.TrainerAvailability{}).
		Where("availability_id = ?", availabilityID).
		Updates(map[string]interface{}{
			"day_of_week": day,
			"start_time":  start,
			"end_time":    end,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrAvailabilityNotFound
	}
	return nil
}

func (r *availabilityRepository) Remove(ctx context.Context, availabilityID, trainerID int) error {
	res := r.db.WithContext(ctx).
		Where("availability_id = ? AND trainer_id = ?", availabilityID, trainerID).
		Delete(&db_models.TrainerAvailability{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrAvailabilityNotFound
	}
	return nil
}
