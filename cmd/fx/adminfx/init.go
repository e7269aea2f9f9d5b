package adminfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/repositories"
	"gymdesk/internal/services"
)

var Module = fx.Provide(
	provideAdminRepo, provideAdminService)

func provideAdminRepo(db *gorm.DB) repositories.AdminRepository {
	return repositories.NewAdminRepository(db)
}

func provideAdminService(
	adminRepo repositories.AdminRepository,
	roomRepo repositories.RoomRepository,
	classRepo repositories.ClassRepository,
	log *zap.Logger,
) services.AdminServiceInterface {
	return services.NewAdminService(adminRepo, roomRepo, classRepo, log)
}
