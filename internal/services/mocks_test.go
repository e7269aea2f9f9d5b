package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/response_models"
)

type mockMemberRepo struct{ mock.Mock }

func (m *mockMemberRepo) Insert(ctx context.Context, member *db_models.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *mockMemberRepo) FindByID(ctx context.Context, id int) (*db_models.Member, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*db_models.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMemberRepo) FindByEmail(ctx context.Context, email string) (*db_models.Member, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*db_models.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMemberRepo) SearchByName(ctx context.Context, firstName, lastName string) (*db_models.Member, error) {
	args := m.Called(ctx, firstName, lastName)
	if v := args.Get(0); v != nil {
		return v.(*db_models.Member), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMemberRepo) UpdateFitnessGoals(ctx context.Context, id int, goals string) error {
	args := m.Called(ctx, id, goals)
	return args.Error(0)
}

func (m *mockMemberRepo) UpdateField(ctx context.Context, id int, column string, value string) error {
	args := m.Called(ctx, id, column, value)
	return args.Error(0)
}

func (m *mockMemberRepo) AddHealthMetric(ctx context.Context, metric *db_models.HealthMetric) error {
	args := m.Called(ctx, metric)
	return args.Error(0)
}

func (m *mockMemberRepo) LatestHealthMetric(ctx context.Context, memberID int) (*db_models.HealthMetric, error) {
	args := m.Called(ctx, memberID)
	if v := args.Get(0); v != nil {
		return v.(*db_models.HealthMetric), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) Create(ctx context.Context, memberID, scheduleID int) (int, error) {
	args := m.Called(ctx, memberID, scheduleID)
	return args.Int(0), args.Error(1)
}

func (m *mockBookingRepo) ListByMember(ctx context.Context, memberID int) ([]response_models.MemberBooking, error) {
	args := m.Called(ctx, memberID)
	if v := args.Get(0); v != nil {
		return v.([]response_models.MemberBooking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) CountForSchedule(ctx context.Context, scheduleID int) (int64, error) {
	args := m.Called(ctx, scheduleID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, bookingID, memberID int) error {
	args := m.Called(ctx, bookingID, memberID)
	return args.Error(0)
}

type mockScheduleRepo struct{ mock.Mock }

func (m *mockScheduleRepo) Create(ctx context.Context, schedule *db_models.ClassSchedule) (int, error) {
	args := m.Called(ctx, schedule)
	return args.Int(0), args.Error(1)
}

func (m *mockScheduleRepo) FindByID(ctx context.Context, scheduleID int) (*db_models.ClassSchedule, error) {
	args := m.Called(ctx, scheduleID)
	if v := args.Get(0); v != nil {
		return v.(*db_models.ClassSchedule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) ListAll(ctx context.Context) ([]response_models.ScheduleDetail, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]response_models.ScheduleDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) ListByTrainer(ctx context.Context, trainerID int) ([]response_models.TrainerScheduleEntry, error) {
	args := m.Called(ctx, trainerID)
	if v := args.Get(0); v != nil {
		return v.([]response_models.TrainerScheduleEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) ListOpen(ctx context.Context) ([]response_models.OpenSchedule, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]response_models.OpenSchedule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockScheduleRepo) Remove(ctx context.Context, scheduleID int) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

type mockTrainerRepo struct{ mock.Mock }

func (m *mockTrainerRepo) Insert(ctx context.Context, trainer *db_models.Trainer) error {
	args := m.Called(ctx, trainer)
	return args.Error(0)
}

func (m *mockTrainerRepo) FindByID(ctx context.Context, id int) (*db_models.Trainer, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*db_models.Trainer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTrainerRepo) FindByEmail(ctx context.Context, email string) (*db_models.Trainer, error) {
	args := m.Called(ctx, email)
	if v := args.Get(0); v != nil {
		return v.(*db_models.Trainer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTrainerRepo) FindAvailable(ctx context.Context, day, start, end string) ([]db_models.Trainer, error) {
	args := m.Called(ctx, day, start, end)
	if v := args.Get(0); v != nil {
		return v.([]db_models.Trainer), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) Insert(ctx context.Context, room *db_models.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *mockRoomRepo) ListAll(ctx context.Context) ([]db_models.Room, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]db_models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) Remove(ctx context.Context, roomID int) error {
	args := m.Called(ctx, roomID)
	return args.Error(0)
}

func (m *mockRoomRepo) FindFree(ctx context.Context, start, end string) ([]db_models.Room, error) {
	args := m.Called(ctx, start, end)
	if v := args.Get(0); v != nil {
		return v.([]db_models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockClassRepo struct{ mock.Mock }

func (m *mockClassRepo) Insert(ctx context.Context, class *db_models.FitnessClass) error {
	args := m.Called(ctx, class)
	return args.Error(0)
}

func (m *mockClassRepo) ListAll(ctx context.Context) ([]db_models.FitnessClass, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]db_models.FitnessClass), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockClassRepo) Remove(ctx context.Context, classID int) error {
	args := m.Called(ctx, classID)
	return args.Error(0)
}

func (m *mockClassRepo) FindFittingDuration(ctx context.Context, maxMinutes int) ([]db_models.FitnessClass, error) {
	args := m.Called(ctx, maxMinutes)
	if v := args.Get(0); v != nil {
		return v.([]db_models.FitnessClass), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAvailabilityRepo struct{ mock.Mock }

func (m *mockAvailabilityRepo) Insert(ctx context.Context, availability *db_models.TrainerAvailability) error {
	args := m.Called(ctx, availability)
	return args.Error(0)
}

func (m *mockAvailabilityRepo) ListByTrainer(ctx context.Context, trainerID int) ([]db_models.TrainerAvailability, error) {
	args := m.Called(ctx, trainerID)
	if v := args.Get(0); v != nil {
		return v.([]db_models.TrainerAvailability), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAvailabilityRepo) Update(ctx context.Context, availabilityID int, day, start, end string) error {
	args := m.Called(ctx, availabilityID, day, start, end)
	return args.Error(0)
}

func (m *mockAvailabilityRepo) Remove(ctx context.Context, availabilityID, trainerID int) error {
	args := m.Called(ctx, availabilityID, trainerID)
	return args.Error(0)
}

type mockMailService struct{ mock.Mock }

func (m *mockMailService) SendBookingConfirmation(to, className, dayOfWeek, startTime string) error {
	args := m.Called(to, className, dayOfWeek, startTime)
	return args.Error(0)
}

func (m *mockMailService) SendPasswordReset(to, token string) error {
	args := m.Called(to, token)
	return args.Error(0)
}
