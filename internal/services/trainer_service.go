package services

import (
	"context"

	"go.uber.org/zap"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/request_models"
	"gymdesk/internal/models/response_models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/clock"
	"gymdesk/pkg/utils"
)

type TrainerServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterTrainerRequest) (int, error)
	Login(ctx context.Context, req request_models.LoginRequest) (int, string, error)
	ListSchedule(ctx context.Context, trainerID int) ([]response_models.TrainerScheduleEntry, error)
	ListAvailability(ctx context.Context, trainerID int) ([]response_models.AvailabilityEntry, error)
	AddAvailability(ctx context.Context, trainerID int, req request_models.AvailabilityRequest) error
	UpdateAvailability(ctx context.Context, availabilityID int, req request_models.AvailabilityRequest) error
	RemoveAvailability(ctx context.Context, availabilityID, trainerID int) error
}

type TrainerService struct {
	trainerRepo      repositories.TrainerRepository
	availabilityRepo repositories.AvailabilityRepository
	scheduleRepo     repositories.ScheduleRepository
	log              *zap.Logger
}

func NewTrainerService(
	trainerRepo repositories.TrainerRepository,
	availabilityRepo repositories.AvailabilityRepository,
	scheduleRepo repositories.ScheduleRepository,
	log *zap.Logger,
) TrainerServiceInterface {
	return &TrainerService{
		trainerRepo:      trainerRepo,
		availabilityRepo: availabilityRepo,
		scheduleRepo:     scheduleRepo,
		log:              log,
	}
}

func (s *TrainerService) Register(ctx context.Context, req request_models.RegisterTrainerRequest) (int, error) {
	existing, err := s.trainerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if existing != nil {
		return 0, utils.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}

	trainer := &db_models.Trainer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   hash,
		Specialization: req.Specialization,
	}
	if err := s.trainerRepo.Insert(ctx, trainer); err != nil {
		return 0, err
	}

	s.log.Info("trainer registered", zap.Int("trainer_id", trainer.TrainerID))
	return trainer.TrainerID, nil
}

func (s *TrainerService) Login(ctx context.Context, req request_models.LoginRequest) (int, string, error) {
	trainer, err := s.trainerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return 0, "", utils.ErrDatabaseError
	}
	if trainer == nil {
		return 0, "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(trainer.PasswordHash, req.Password); err != nil {
		return 0, "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(trainer.TrainerID, utils.RoleTrainer)
	if err != nil {
		return 0, "", utils.ErrInvalidCredentials
	}
	return trainer.TrainerID, token, nil
}

func (s *TrainerService) ListSchedule(ctx context.Context, trainerID int) ([]response_models.TrainerScheduleEntry, error) {
	entries, err := s.scheduleRepo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}

func (s *TrainerService) ListAvailability(ctx context.Context, trainerID int) ([]response_models.AvailabilityEntry, error) {
	availabilities, err := s.availabilityRepo.ListByTrainer(ctx, trainerID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	entries := make([]response_models.AvailabilityEntry, 0, len(availabilities))
	for _, a := range availabilities {
		entries = append(entries, response_models.AvailabilityEntry{
			AvailabilityID: a.AvailabilityID,
			DayOfWeek:      a.DayOfWeek,
			StartTime:      a.StartTime,
			EndTime:        a.EndTime,
		})
	}
	return entries, nil
}

func (s *TrainerService) AddAvailability(ctx context.Context, trainerID int, req request_models.AvailabilityRequest) error {
	day, start, end, err := validateWindow(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return err
	}

	availability := &db_models.TrainerAvailability{
		TrainerID: trainerID,
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.availabilityRepo.Insert(ctx, availability); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TrainerService) UpdateAvailability(ctx context.Context, availabilityID int, req request_models.AvailabilityRequest) error {
	day, start, end, err := validateWindow(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		return err
	}
	return s.availabilityRepo.Update(ctx, availabilityID, day, start, end)
}

func (s *TrainerService) RemoveAvailability(ctx context.Context, availabilityID, trainerID int) error {
	return s.availabilityRepo.Remove(ctx, availabilityID, trainerID)
}

// validateWindow normalizes a (day, start, end) triple and rejects malformed
// or inverted ranges.
func validateWindow(day, start, end string) (string, string, string, error) {
	d, err := clock.Weekday(day)
	if err != nil {
		return "", "", "", utils.ErrInvalidDayOfWeek
	}
	st, err := clock.Parse(start)
	if err != nil {
		return "", "", "", utils.ErrInvalidTimeOfDay
	}
	et, err := clock.Parse(end)
	if err != nil {
		return "", "", "", utils.ErrInvalidTimeOfDay
	}
	if !clock.Before(st, et) {
		return "", "", "", utils.ErrInvalidTimeRange
	}
	return d, st, et, nil
}
