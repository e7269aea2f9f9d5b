package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/request_models"
	"gymdesk/pkg/utils"
)

func newSchedulingFixture() (*mockScheduleRepo, *mockTrainerRepo, *mockRoomRepo, *mockClassRepo, SchedulingServiceInterface) {
	scheduleRepo := new(mockScheduleRepo)
	trainerRepo := new(mockTrainerRepo)
	roomRepo := new(mockRoomRepo)
	classRepo := new(mockClassRepo)
	svc := NewSchedulingService(scheduleRepo, trainerRepo, roomRepo, classRepo, zap.NewNop())
	return scheduleRepo, trainerRepo, roomRepo, classRepo, svc
}

func TestFindAvailableTrainersNormalizesWindow(t *testing.T) {
	_, trainerRepo, _, _, svc := newSchedulingFixture()
	ctx := context.Background()

	// The repo must see the canonical day name and zero-padded times.
	trainerRepo.On("FindAvailable", ctx, "Monday", "09:00", "10:00").
		Return([]db_models.Trainer{{TrainerID: 1}}, nil)

	trainers, err := svc.FindAvailableTrainers(ctx, "monday", "9:00", "10:00")

	assert.NoError(t, err)
	assert.Len(t, trainers, 1)
	trainerRepo.AssertExpectations(t)
}

func TestFindAvailableTrainersRejectsBadDay(t *testing.T) {
	_, trainerRepo, _, _, svc := newSchedulingFixture()

	_, err := svc.FindAvailableTrainers(context.Background(), "Funday", "09:00", "10:00")

	assert.ErrorIs(t, err, utils.ErrInvalidDayOfWeek)
	trainerRepo.AssertNotCalled(t, "FindAvailable", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFindAvailableRoomsRejectsInvertedRange(t *testing.T) {
	_, _, roomRepo, _, svc := newSchedulingFixture()

	_, err := svc.FindAvailableRooms(context.Background(), "10:00", "09:00")

	assert.ErrorIs(t, err, utils.ErrInvalidTimeRange)
	roomRepo.AssertNotCalled(t, "FindFree", mock.Anything, mock.Anything, mock.Anything)
}

func TestFindClassesFittingDurationComputesMinutes(t *testing.T) {
	_, _, _, classRepo, svc := newSchedulingFixture()
	ctx := context.Background()

	classRepo.On("FindFittingDuration", ctx, 90).
		Return([]db_models.FitnessClass{{ClassID: 1, Name: "Yoga", Duration: 60}}, nil)

	classes, err := svc.FindClassesFittingDuration(ctx, "09:00", "10:30")

	assert.NoError(t, err)
	assert.Len(t, classes, 1)
	classRepo.AssertExpectations(t)
}

func TestCreateScheduleNormalizesBeforeInsert(t *testing.T) {
	scheduleRepo, _, _, _, svc := newSchedulingFixture()
	ctx := context.Background()

	scheduleRepo.On("Create", ctx, mock.MatchedBy(func(s *db_models.ClassSchedule) bool {
		return s.DayOfWeek == "Tuesday" && s.StartTime == "08:00" && s.EndTime == "09:00"
	})).Return(5, nil)

	id, err := svc.CreateSchedule(ctx, request_models.CreateScheduleRequest{
		ClassID:   1,
		RoomID:    2,
		TrainerID: 3,
		DayOfWeek: "tuesday",
		StartTime: "8:00",
		EndTime:   "9:00",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, id)
	scheduleRepo.AssertExpectations(t)
}

func TestCreateScheduleRejectsInvalidWindow(t *testing.T) {
	scheduleRepo, _, _, _, svc := newSchedulingFixture()

	_, err := svc.CreateSchedule(context.Background(), request_models.CreateScheduleRequest{
		ClassID:   1,
		RoomID:    2,
		TrainerID: 3,
		DayOfWeek: "Tuesday",
		StartTime: "10:00",
		EndTime:   "10:00",
	})

	assert.ErrorIs(t, err, utils.ErrInvalidTimeRange)
	scheduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
