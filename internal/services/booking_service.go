package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"gymdesk/internal/models/response_models"
	"gymdesk/internal/repositories"
	"gymdesk/pkg/metrics"
	"gymdesk/pkg/utils"
)

type BookingServiceInterface interface {
	BookClass(ctx context.Context, memberID, scheduleID int) (int, error)
	CancelBooking(ctx context.Context, bookingID, memberID int) error
	ListMemberBookings(ctx context.Context, memberID int) ([]response_models.MemberBooking, error)
	ListOpenSchedules(ctx context.Context) ([]response_models.OpenSchedule, error)
}

type BookingService struct {
	bookingRepo  repositories.BookingRepository
	scheduleRepo repositories.ScheduleRepository
	memberRepo   repositories.MemberRepository
	mail         IMailService
	log          *zap.Logger
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	scheduleRepo repositories.ScheduleRepository,
	memberRepo repositories.MemberRepository,
	mail IMailService,
	log *zap.Logger,
) BookingServiceInterface {
	return &BookingService{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		memberRepo:   memberRepo,
		mail:         mail,
		log:          log,
	}
}

func (s *BookingService) BookClass(ctx context.Context, memberID, scheduleID int) (int, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	if member == nil {
		return 0, utils.ErrMemberNotFound
	}

	bookingID, err := s.bookingRepo.Create(ctx, memberID, scheduleID)
	if err != nil {
		if errors.Is(err, utils.ErrClassFull) || errors.Is(err, utils.ErrScheduleNotFound) {
			metrics.RecordBooking("rejected")
			return 0, err
		}
		metrics.RecordBooking("failed")
		return 0, utils.ErrDatabaseError
	}
	metrics.RecordBooking("confirmed")

	s.log.Info("class booked",
		zap.Int("booking_id", bookingID),
		zap.Int("member_id", memberID),
		zap.Int("schedule_id", scheduleID))

	if schedule, err := s.scheduleRepo.FindByID(ctx, scheduleID); err == nil && schedule != nil {
		if err := s.mail.SendBookingConfirmation(
			member.Email, schedule.FitnessClass.Name, schedule.DayOfWeek, schedule.StartTime,
		); err != nil {
			// The booking stands even when the confirmation cannot be sent.
			s.log.Warn("booking confirmation mail failed", zap.Error(err))
		}
	}

	return bookingID, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingID, memberID int) error {
	if err := s.bookingRepo.Cancel(ctx, bookingID, memberID); err != nil {
		return err
	}

	metrics.BookingCancellationsTotal.Inc()
	s.log.Info("booking cancelled",
		zap.Int("booking_id", bookingID),
		zap.Int("member_id", memberID))
	return nil
}

func (s *BookingService) ListMemberBookings(ctx context.Context, memberID int) ([]response_models.MemberBooking, error) {
	bookings, err := s.bookingRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (s *BookingService) ListOpenSchedules(ctx context.Context) ([]response_models.OpenSchedule, error) {
	schedules, err := s.scheduleRepo.ListOpen(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return schedules, nil
}
