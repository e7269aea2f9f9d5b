package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/response_models"
	"gymdesk/pkg/utils"
)

type BookingRepository interface {
	// Create books a schedule for a member. The room row is locked for the
	// duration of the transaction so the count-then-insert pair cannot race
	// another booking; the enforce_room_capacity trigger backstops any writer
	// that bypasses this path.
	Create(ctx context.Context, memberID, scheduleID int) (int, error)
	ListByMember(ctx context.Context, memberID int) ([]response_models.MemberBooking, error)
	CountForSchedule(ctx context.Context, scheduleID int) (int64, error)
	// Cancel deletes a booking only when it belongs to memberID. Wrong owner
	// and missing id are indistinguishable on purpose: both report not found.
	Cancel(ctx context.Context, bookingID, memberID int) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, memberID, scheduleID int) (int, error) {
	var bookingID int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var schedule db_models.ClassSchedule
		if err := tx.First(&schedule, "schedule_id = ?", scheduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrScheduleNotFound
			}
			return err
		}

		var room db_models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, "room_id = ?", schedule.RoomID).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&db_models.Booking{}).
			Where("schedule_id = ?", scheduleID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return utils.ErrClassFull
		}

		booking := db_models.Booking{MemberID: memberID, ScheduleID: scheduleID}
		if err := tx.Create(&booking).Error; err != nil {
			if isCapacityRaise(err) {
				return utils.ErrClassFull
			}
			return err
		}
		bookingID = booking.BookingID
		return nil
	})
	if err != nil {
		return 0, err
	}
	return bookingID, nil
}

func (r *bookingRepository) ListByMember(ctx context.Context, memberID int) ([]response_models.MemberBooking, error) {
	var rows []response_models.MemberBooking
	err := r.db.WithContext(ctx).
		Table("booking b").
		Select("b.booking_id, fc.name AS class_name, cs.day_of_week, cs.start_time, cs.end_time").
		Joins("JOIN class_schedule cs ON cs.schedule_id = b.schedule_id").
		Joins("JOIN fitness_class fc ON fc.class_id = cs.class_id").
		Where("b.member_id = ?", memberID).
		Order("b.booking_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepository) CountForSchedule(ctx context.Context, scheduleID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("schedule_id = ?", scheduleID).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) Cancel(ctx context.Context, bookingID, memberID int) error {
	res := r.db.WithContext(ctx).
		Where("booking_id = ? AND member_id = ?", bookingID, memberID).
		Delete(&db_models.Booking{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrBookingNotFound
	}
	return nil
}
