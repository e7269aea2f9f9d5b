package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/response_models"
	"gymdesk/pkg/utils"
)

type ScheduleRepository interface {
	// Create inserts the schedule and, in the same transaction, consumes one
	// availability window of the trainer on that day that fully contains the
	// schedule's time range. Ties are broken by lowest availability_id. The
	// unconsumed remainder of the window is discarded, not split.
	Create(ctx context.Context, schedule *db_models.ClassSchedule) (int, error)
	FindByID(ctx context.Context, scheduleID int) (*db_models.ClassSchedule, error)
	ListAll(ctx context.Context) ([]response_models.ScheduleDetail, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]response_models.TrainerScheduleEntry, error)
	ListOpen(ctx context.Context) ([]response_models.OpenSchedule, error)
	// Remove deletes the schedule and every booking referencing it.
	Remove(ctx context.Context, scheduleID int) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *db_models.ClassSchedule) (int, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return err
		}

		var availability db_models.TrainerAvailability
		err := tx.
			Where("trainer_id = ? AND day_of_week = ?", schedule.TrainerID, schedule.DayOfWeek).
			Where("start_time <= ? AND end_time >= ?", schedule.StartTime, schedule.EndTime).
			Order("availability_id ASC").
			First(&availability).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		return tx.Delete(&availability).Error
	})
	if err != nil {
		return 0, err
	}
	return schedule.ScheduleID, nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, scheduleID int) (*db_models.ClassSchedule, error) {
	var schedule db_models.ClassSchedule
	err := r.db.WithContext(ctx).
		Preload("FitnessClass").
		Preload("Room").
		First(&schedule, "schedule_id = ?", scheduleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) ListAll(ctx context.Context) ([]response_models.ScheduleDetail, error) {
	var rows []response_models.ScheduleDetail
	err := r.db.WithContext(ctx).
		Table("class_schedule cs").
		Select(`
			cs.schedule_id,
			fc.name AS class_name,
			r.room_name,
			t.first_name || ' ' || t.last_name AS trainer_name,
			cs.day_of_week,
			cs.start_time,
			cs.end_time`).
		Joins("JOIN fitness_class fc ON fc.class_id = cs.class_id").
		Joins("JOIN room r ON r.room_id = cs.room_id").
		Joins("JOIN trainer t ON t.trainer_id = cs.trainer_id").
		Order("cs.schedule_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *scheduleRepository) ListByTrainer(ctx context.Context, trainerID int) ([]response_models.TrainerScheduleEntry, error) {
	var rows []response_models.TrainerScheduleEntry
	err := r.db.WithContext(ctx).
		Table("class_schedule cs").
		Select("fc.name AS class_name, r.room_name, cs.day_of_week, cs.start_time, cs.end_time").
		Joins("JOIN fitness_class fc ON fc.class_id = cs.class_id").
		Joins("JOIN room r ON r.room_id = cs.room_id").
		Where("cs.trainer_id = ?", trainerID).
		Order("cs.schedule_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *scheduleRepository) ListOpen(ctx context.Context) ([]response_models.OpenSchedule, error) {
	var rows []response_models.OpenSchedule
	err := r.db.WithContext(ctx).
		Table("class_schedule cs").
		Select(`
			cs.schedule_id,
			fc.name AS class_name,
			r.room_name,
			cs.day_of_week,
			cs.start_time,
			cs.end_time,
			COUNT(b.booking_id) AS booked_count,
			r.capacity,
			r.capacity - COUNT(b.booking_id) AS available_spots`).
		Joins("JOIN fitness_class fc ON fc.class_id = cs.class_id").
		Joins("JOIN room r ON r.room_id = cs.room_id").
		Joins("LEFT JOIN booking b ON b.schedule_id = cs.schedule_id").
		Group("cs.schedule_id, fc.name, r.room_name, r.capacity").
		Order("cs.schedule_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *scheduleRepository) Remove(ctx context.Context, scheduleID int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.Booking{}, "schedule_id = ?", scheduleID).Error; err != nil {
			return err
		}
		res := tx.Delete(&db_models.ClassSchedule{}, "schedule_id = ?", scheduleID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrScheduleNotFound
		}
		return nil
	})
}
