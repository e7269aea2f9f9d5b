package repositories

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/infra"
	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

// These tests run against a real PostgreSQL instance; gorm's sqlite driver
// cannot exercise the capacity trigger or FOR UPDATE locking. Set
// TEST_DATABASE_URL to enable them.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := infra.InitPostgresql(dsn, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db, zap.NewNop()))
	return db
}

func seedMember(t *testing.T, db *gorm.DB) *db_models.Member {
	t.Helper()
	m := &db_models.Member{
		FirstName:    "Test",
		LastName:     "Member",
		Email:        fmt.Sprintf("member-%s@test.local", uuid.NewString()),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedWorld(t *testing.T, db *gorm.DB, capacity int) (*db_models.Trainer, *db_models.Room, *db_models.FitnessClass) {
	t.Helper()
	trainer := &db_models.Trainer{
		FirstName:    "Test",
		LastName:     "Trainer",
		Email:        fmt.Sprintf("trainer-%s@test.local", uuid.NewString()),
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(trainer).Error)

	room := &db_models.Room{RoomName: "Room " + uuid.NewString()[:8], Capacity: capacity}
	require.NoError(t, db.Create(room).Error)

	class := &db_models.FitnessClass{Name: "Class " + uuid.NewString()[:8], Duration: 60}
	require.NoError(t, db.Create(class).Error)

	return trainer, room, class
}

func seedSchedule(t *testing.T, db *gorm.DB, trainer *db_models.Trainer, room *db_models.Room, class *db_models.FitnessClass, day, start, end string) *db_models.ClassSchedule {
	t.Helper()
	s := &db_models.ClassSchedule{
		ClassID:   class.ClassID,
		RoomID:    room.RoomID,
		TrainerID: trainer.TrainerID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestRoomFindFreeOverlap(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	trainer, room, class := seedWorld(t, db, 10)
	seedSchedule(t, db, trainer, room, class, "Monday", "10:00", "11:00")

	repo := NewRoomRepository(db)

	roomIn := func(rooms []db_models.Room) bool {
		for _, r := range rooms {
			if r.RoomID == room.RoomID {
				return true
			}
		}
		return false
	}

	// Overlapping windows exclude the room.
	for _, w := range [][2]string{{"10:00", "11:00"}, {"10:30", "11:30"}, {"09:30", "10:30"}, {"09:00", "12:00"}} {
		rooms, err := repo.FindFree(ctx, w[0], w[1])
		require.NoError(t, err)
		assert.False(t, roomIn(rooms), "window %s-%s should conflict", w[0], w[1])
	}

	// A window that only touches the boundary does not conflict.
	for _, w := range [][2]string{{"09:00", "10:00"}, {"11:00", "12:00"}} {
		rooms, err := repo.FindFree(ctx, w[0], w[1])
		require.NoError(t, err)
		assert.True(t, roomIn(rooms), "window %s-%s should be free", w[0], w[1])
	}
}

func TestBookingCapacityEnforced(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	trainer, room, class := seedWorld(t, db, 1)
	schedule := seedSchedule(t, db, trainer, room, class, "Tuesday", "09:00", "10:00")

	repo := NewBookingRepository(db)

	first := seedMember(t, db)
	_, err := repo.Create(ctx, first.MemberID, schedule.ScheduleID)
	require.NoError(t, err)

	second := seedMember(t, db)
	_, err = repo.Create(ctx, second.MemberID, schedule.ScheduleID)
	assert.ErrorIs(t, err, utils.ErrClassFull)

	count, err := repo.CountForSchedule(ctx, schedule.ScheduleID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestBookingCapacityUnderContention(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	const capacity = 3
	const attempts = 10

	trainer, room, class := seedWorld(t, db, capacity)
	schedule := seedSchedule(t, db, trainer, room, class, "Tuesday", "11:00", "12:00")

	members := make([]*db_models.Member, attempts)
	for i := range members {
		members[i] = seedMember(t, db)
	}

	repo := NewBookingRepository(db)

	// All attempts race on one schedule; the room-row lock serializes the
	// count-then-insert pair, so exactly capacity of them may win.
	var confirmed, full, failed int64
	var wg sync.WaitGroup
	for _, m := range members {
		wg.Add(1)
		go func(memberID int) {
			defer wg.Done()
			_, err := repo.Create(ctx, memberID, schedule.ScheduleID)
			switch {
			case err == nil:
				atomic.AddInt64(&confirmed, 1)
			case errors.Is(err, utils.ErrClassFull):
				atomic.AddInt64(&full, 1)
			default:
				atomic.AddInt64(&failed, 1)
			}
		}(m.MemberID)
	}
	wg.Wait()

	assert.Equal(t, int64(0), failed)
	assert.Equal(t, int64(capacity), confirmed)
	assert.Equal(t, int64(attempts-capacity), full)

	count, err := repo.CountForSchedule(ctx, schedule.ScheduleID)
	require.NoError(t, err)
	assert.Equal(t, int64(capacity), count)
}

func TestBookingCancelOwnership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	trainer, room, class := seedWorld(t, db, 5)
	schedule := seedSchedule(t, db, trainer, room, class, "Wednesday", "09:00", "10:00")

	repo := NewBookingRepository(db)

	owner := seedMember(t, db)
	other := seedMember(t, db)
	bookingID, err := repo.Create(ctx, owner.MemberID, schedule.ScheduleID)
	require.NoError(t, err)

	// Someone else's booking looks like a missing one.
	assert.ErrorIs(t, repo.Cancel(ctx, bookingID, other.MemberID), utils.ErrBookingNotFound)
	assert.NoError(t, repo.Cancel(ctx, bookingID, owner.MemberID))
	assert.ErrorIs(t, repo.Cancel(ctx, bookingID, owner.MemberID), utils.ErrBookingNotFound)
}

func TestScheduleCreateConsumesLowestAvailability(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	trainer, room, class := seedWorld(t, db, 5)

	windows := []db_models.TrainerAvailability{
		{TrainerID: trainer.TrainerID, DayOfWeek: "Thursday", StartTime: "08:00", EndTime: "12:00"},
		{TrainerID: trainer.TrainerID, DayOfWeek: "Thursday", StartTime: "09:00", EndTime: "11:00"},
	}
	for i := range windows {
		require.NoError(t, db.Create(&windows[i]).Error)
	}

	repo := NewScheduleRepository(db)
	_, err := repo.Create(ctx, &db_models.ClassSchedule{
		ClassID:   class.ClassID,
		RoomID:    room.RoomID,
		TrainerID: trainer.TrainerID,
		DayOfWeek: "Thursday",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)

	var remaining []db_models.TrainerAvailability
	require.NoError(t, db.Where("trainer_id = ?", trainer.TrainerID).Find(&remaining).Error)
	require.Len(t, remaining, 1)
	// Both windows contain 09:00-10:00; the earlier insert goes first.
	assert.Equal(t, windows[1].AvailabilityID, remaining[0].AvailabilityID)
}

func TestScheduleRemoveDeletesBookings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	trainer, room, class := seedWorld(t, db, 5)
	schedule := seedSchedule(t, db, trainer, room, class, "Friday", "09:00", "10:00")

	member := seedMember(t, db)
	bookingRepo := NewBookingRepository(db)
	_, err := bookingRepo.Create(ctx, member.MemberID, schedule.ScheduleID)
	require.NoError(t, err)

	scheduleRepo := NewScheduleRepository(db)
	require.NoError(t, scheduleRepo.Remove(ctx, schedule.ScheduleID))

	count, err := bookingRepo.CountForSchedule(ctx, schedule.ScheduleID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.ErrorIs(t, scheduleRepo.Remove(ctx, schedule.ScheduleID), utils.ErrScheduleNotFound)
}
