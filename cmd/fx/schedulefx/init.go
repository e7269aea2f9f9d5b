package schedulefx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/repositories"
	"gymdesk/internal/services"
)

var Module = fx.Provide(
	provideScheduleRepo, provideRoomRepo, provideClassRepo, provideSchedulingService)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideRoomRepo(db *gorm.DB) repositories.RoomRepository {
	return repositories.NewRoomRepository(db)
}

func provideClassRepo(db *gorm.DB) repositories.ClassRepository {
	return repositories.NewClassRepository(db)
}

func provideSchedulingService(
	scheduleRepo repositories.ScheduleRepository,
	trainerRepo repositories.TrainerRepository,
	roomRepo repositories.RoomRepository,
	classRepo repositories.ClassRepository,
	log *zap.Logger,
) services.SchedulingServiceInterface {
	return services.NewSchedulingService(scheduleRepo, trainerRepo, roomRepo, classRepo, log)
}
