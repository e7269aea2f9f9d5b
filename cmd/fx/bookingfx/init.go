package bookingfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/repositories"
	"gymdesk/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	scheduleRepo repositories.ScheduleRepository,
	memberRepo repositories.MemberRepository,
	mail services.IMailService,
	log *zap.Logger,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, scheduleRepo, memberRepo, mail, log)
}
