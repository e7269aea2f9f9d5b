package services

import (
	"context"

	"go.uber.org/zap"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/request_models"
	"gymdesk/internal/models/response_models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/clock"
	"gymdesk/pkg/metrics"
	"gymdesk/pkg/utils"
)

// SchedulingServiceInterface is the availability engine: it answers which
// trainers, rooms and classes fit a proposed (day, time window), and creates
// schedules, consuming the trainer's matching availability window.
type SchedulingServiceInterface interface {
	FindAvailableTrainers(ctx context.Context, day, start, end string) ([]db_models.Trainer, error)
	FindAvailableRooms(ctx context.Context, start, end string) ([]db_models.Room, error)
	FindClassesFittingDuration(ctx context.Context, start, end string) ([]db_models.FitnessClass, error)
	CreateSchedule(ctx context.Context, req request_models.CreateScheduleRequest) (int, error)
	RemoveSchedule(ctx context.Context, scheduleID int) error
	ListSchedules(ctx context.Context) ([]response_models.ScheduleDetail, error)
}

type SchedulingService struct {
	scheduleRepo repositories.ScheduleRepository
	trainerRepo  repositories.TrainerRepository
	roomRepo     repositories.RoomRepository
	classRepo    repositories.ClassRepository
	log          *zap.Logger
}

func NewSchedulingService(
	scheduleRepo repositories.ScheduleRepository,
	trainerRepo repositories.TrainerRepository,
	roomRepo repositories.RoomRepository,
	classRepo repositories.ClassRepository,
	log *zap.Logger,
) SchedulingServiceInterface {
	return &SchedulingService{
		scheduleRepo: scheduleRepo,
		trainerRepo:  trainerRepo,
		roomRepo:     roomRepo,
		classRepo:    classRepo,
		log:          log,
	}
}

func (s *SchedulingService) FindAvailableTrainers(ctx context.Context, day, start, end string) ([]db_models.Trainer, error) {
	d, st, et, err := validateWindow(day, start, end)
	if err != nil {
		return nil, err
	}

	trainers, err := s.trainerRepo.FindAvailable(ctx, d, st, et)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return trainers, nil
}

func (s *SchedulingService) FindAvailableRooms(ctx context.Context, start, end string) ([]db_models.Room, error) {
	st, et, err := validateRange(start, end)
	if err != nil {
		return nil, err
	}

	rooms, err := s.roomRepo.FindFree(ctx, st, et)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return rooms, nil
}

func (s *SchedulingService) FindClassesFittingDuration(ctx context.Context, start, end string) ([]db_models.FitnessClass, error) {
	st, et, err := validateRange(start, end)
	if err != nil {
		return nil, err
	}

	minutes, err := clock.Minutes(st, et)
	if err != nil {
		return nil, utils.ErrInvalidTimeOfDay
	}

	classes, err := s.classRepo.FindFittingDuration(ctx, minutes)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return classes, nil
}

func (s *SchedulingService) CreateSchedule(ctx context.Context, req request_models.CreateScheduleRequest) (int, error) {
	day, start, end, err := validateWindow(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return 0, err
	}

	schedule := &db_models.ClassSchedule{
		ClassID:   req.ClassID,
		RoomID:    req.RoomID,
		TrainerID: req.TrainerID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
	id, err := s.scheduleRepo.Create(ctx, schedule)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	metrics.SchedulesCreatedTotal.Inc()
	s.log.Info("schedule created",
		zap.Int("schedule_id", id),
		zap.Int("trainer_id", req.TrainerID),
		zap.String("day", day))
	return id, nil
}

func (s *SchedulingService) RemoveSchedule(ctx context.Context, scheduleID int) error {
	return s.scheduleRepo.Remove(ctx, scheduleID)
}

func (s *SchedulingService) ListSchedules(ctx context.Context) ([]response_models.ScheduleDetail, error) {
	schedules, err := s.scheduleRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedules, nil
}

func validateRange(start, end string) (string, string, error) {
	st, err := clock.Parse(start)
	if err != nil {
		return "", "", utils.ErrInvalidTimeOfDay
	}
	et, err := clock.Parse(end)
	if err != nil {
		return "", "", utils.ErrInvalidTimeOfDay
	}
	if !clock.Before(st, et) {
		return "", "", utils.ErrInvalidTimeRange
	}
	return st, et, nil
}
