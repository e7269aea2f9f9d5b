// Command cli runs the interactive terminal front end against the same
// services the HTTP server exposes.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gymdesk/internal/config"
	"gymdesk/internal/console"
	"gymdesk/internal/infra"
	"gymdesk/internal/repositories"
	"gymdesk/internal/services"
	"gymdesk/pkg/memcache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := infra.InitPostgresql(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer infra.ClosePostgresql(db, logger)

	if err := infra.Migrate(db, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := infra.Seed(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	memberRepo := repositories.NewMemberRepository(db)
	trainerRepo := repositories.NewTrainerRepository(db)
	availabilityRepo := repositories.NewAvailabilityRepository(db)
	roomRepo := repositories.NewRoomRepository(db)
	classRepo := repositories.NewClassRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	dashboardRepo := repositories.NewDashboardRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	mail := services.NewSMTPMailService(cfg, logger)
	tokens := memcache.NewResetTokens()

	ui := console.New(
		services.NewMemberService(memberRepo, mail, tokens, logger),
		services.NewTrainerService(trainerRepo, availabilityRepo, scheduleRepo, logger),
		services.NewAdminService(adminRepo, roomRepo, classRepo, logger),
		services.NewSchedulingService(scheduleRepo, trainerRepo, roomRepo, classRepo, logger),
		services.NewBookingService(bookingRepo, scheduleRepo, memberRepo, mail, logger),
		services.NewDashboardService(dashboardRepo),
	)
	ui.Run(context.Background())
}
