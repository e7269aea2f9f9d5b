package trainerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/repositories"
	"gymdesk/internal/services"
)

var Module = fx.Provide(
	provideTrainerRepo, provideAvailabilityRepo, provideTrainerService)

func provideTrainerRepo(db *gorm.DB) repositories.TrainerRepository {
	return repositories.NewTrainerRepository(db)
}

func provideAvailabilityRepo(db *gorm.DB) repositories.AvailabilityRepository {
	return repositories.NewAvailabilityRepository(db)
}

func provideTrainerService(
	trainerRepo repositories.TrainerRepository,
	availabilityRepo repositories.AvailabilityRepository,
	scheduleRepo repositories.ScheduleRepository,
	log *zap.Logger,
) services.TrainerServiceInterface {
	return services.NewTrainerService(trainerRepo, availabilityRepo, scheduleRepo, log)
}
