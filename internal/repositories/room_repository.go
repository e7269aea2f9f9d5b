package repositories

import (
	"context"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

type RoomRepository interface {
	Insert(ctx context.Context, room *db_models.Room) error
	ListAll(ctx context.Context) ([]db_models.Room, error)
	Remove(ctx context.Context, roomID int) error
	// FindFree returns rooms with no schedule overlapping [start, end).
	FindFree(ctx context.Context, start, end string) ([]db_models.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Insert(ctx context.Context, room *db_models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepository) ListAll(ctx context.Context) ([]db_models.Room, error) {
	var rooms []db_models.Room
	err := r.db.WithContext(ctx).Order("room_id ASC").Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) Remove(ctx context.Context, roomID int) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Room{}, "room_id = ?", roomID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrRoomNotFound
	}
	return nil
}

func (r *roomRepository) FindFree(ctx context.Context, start, end string) ([]db_models.Room, error) {
	// Three-way overlap test against existing schedules, with half-open
	// [start, end) semantics so back-to-back slots do not collide:
	// the requested start falls inside an existing range, the requested end
	// falls inside an existing range, or the request swallows an existing
	// range whole.
	booked := r.db.WithContext(ctx).
		Model(&db_models.ClassSchedule{}).
		Select("room_id").
		Where(
			"(? >= start_time AND ? < end_time) OR (? > start_time AND ? <= end_time) OR (? <= start_time AND ? >= end_time)",
			start, start, end, end, start, end,
		)

	var rooms []db_models.Room
	err := r.db.WithContext(ctx).
		Where("room_id NOT IN (?)", booked).
		Order("room_id ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
