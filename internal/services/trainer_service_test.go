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

func newTrainerFixture() (*mockTrainerRepo, *mockAvailabilityRepo, *mockScheduleRepo, TrainerServiceInterface) {
	trainerRepo := new(mockTrainerRepo)
	availabilityRepo := new(mockAvailabilityRepo)
	scheduleRepo := new(mockScheduleRepo)
	svc := NewTrainerService(trainerRepo, availabilityRepo, scheduleRepo, zap.NewNop())
	return trainerRepo, availabilityRepo, scheduleRepo, svc
}

func TestAddAvailabilityNormalizes(t *testing.T) {
	_, availabilityRepo, _, svc := newTrainerFixture()
	ctx := context.Background()

	availabilityRepo.On("Insert", ctx, mock.MatchedBy(func(a *db_models.TrainerAvailability) bool {
		return a.TrainerID == 3 && a.DayOfWeek == "Wednesday" && a.StartTime == "08:00" && a.EndTime == "12:00"
	})).Return(nil)

	err := svc.AddAvailability(ctx, 3, request_models.AvailabilityRequest{
		DayOfWeek: "WEDNESDAY", StartTime: "8:00", EndTime: "12:00",
	})

	assert.NoError(t, err)
	availabilityRepo.AssertExpectations(t)
}

func TestAddAvailabilityInvalidWindow(t *testing.T) {
	tests := []struct {
		name string
		req  request_models.AvailabilityRequest
		want error
	}{
		{
			name: "bad day",
			req:  request_models.AvailabilityRequest{DayOfWeek: "Someday", StartTime: "08:00", EndTime: "12:00"},
			want: utils.ErrInvalidDayOfWeek,
		},
		{
			name: "bad time",
			req:  request_models.AvailabilityRequest{DayOfWeek: "Monday", StartTime: "25:00", EndTime: "12:00"},
			want: utils.ErrInvalidTimeOfDay,
		},
		{
			name: "inverted range",
			req:  request_models.AvailabilityRequest{DayOfWeek: "Monday", StartTime: "12:00", EndTime: "08:00"},
			want: utils.ErrInvalidTimeRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, availabilityRepo, _, svc := newTrainerFixture()

			err := svc.AddAvailability(context.Background(), 3, tt.req)

			assert.ErrorIs(t, err, tt.want)
			availabilityRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestRemoveAvailabilityNotOwned(t *testing.T) {
	_, availabilityRepo, _, svc := newTrainerFixture()
	ctx := context.Background()

	availabilityRepo.On("Remove", ctx, 10, 3).Return(utils.ErrAvailabilityNotFound)

	err := svc.RemoveAvailability(ctx, 10, 3)

	assert.ErrorIs(t, err, utils.ErrAvailabilityNotFound)
}
