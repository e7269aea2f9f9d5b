package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/cmd/fx/adminfx"
	"gymdesk/cmd/fx/bookingfx"
	"gymdesk/cmd/fx/controllersfx"
	"gymdesk/cmd/fx/dashboardfx"
	"gymdesk/cmd/fx/dbfx"
	"gymdesk/cmd/fx/mailfx"
	"gymdesk/cmd/fx/memberfx"
	"gymdesk/cmd/fx/schedulefx"
	"gymdesk/cmd/fx/trainerfx"
	"gymdesk/internal/api/controllers"
	"gymdesk/internal/config"
	"gymdesk/internal/infra"
	"gymdesk/pkg/middleware"
	"gymdesk/pkg/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	app := fx.New(
		fx.Provide(provideLogger, config.Load),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		dbfx.Module,
		mailfx.Module,
		memberfx.Module,
		trainerfx.Module,
		adminfx.Module,
		schedulefx.Module,
		bookingfx.Module,
		dashboardfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(PrepareDatabase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func PrepareDatabase(db *gorm.DB, logger *zap.Logger) error {
	if err := infra.Migrate(db, logger); err != nil {
		return err
	}
	return infra.Seed(db, logger)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Port))
				if err := engine.Run(":" + cfg.Port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			infra.ClosePostgresql(db, logger)
			return nil
		},
	})
}

func ProvideRouter(
	memberController *controllers.MemberController,
	trainerController *controllers.TrainerController,
	adminController *controllers.AdminController,
	scheduleController *controllers.ScheduleController,
	bookingController *controllers.BookingController,
	dashboardController *controllers.DashboardController,
) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, memberController, trainerController, adminController,
		scheduleController, bookingController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	memberController *controllers.MemberController,
	trainerController *controllers.TrainerController,
	adminController *controllers.AdminController,
	scheduleController *controllers.ScheduleController,
	bookingController *controllers.BookingController,
	dashboardController *controllers.DashboardController) {

	members := r.Group("/members")
	members.POST("/register", memberController.Register)
	members.POST("/login", memberController.Login)
	members.POST("/forgot-password", memberController.ForgotPassword)
	members.POST("/reset-password", memberController.ResetPassword)

	memberAuth := members.Group("")
	memberAuth.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleMember))
	memberAuth.GET("/me", dashboardController.GetMyProfile)
	memberAuth.PUT("/me/goals", memberController.UpdateFitnessGoals)
	memberAuth.PUT("/me/info", memberController.UpdatePersonalInfo)
	memberAuth.POST("/me/metrics", memberController.AddHealthMetric)
	memberAuth.GET("/me/bookings", bookingController.ListMyBookings)
	memberAuth.POST("/me/bookings", bookingController.BookClass)
	memberAuth.POST("/me/bookings/:bookingID/cancel", bookingController.CancelBooking)
	memberAuth.GET("/schedules", bookingController.ListOpenSchedules)

	trainers := r.Group("/trainers")
	trainers.POST("/register", trainerController.Register)
	trainers.POST("/login", trainerController.Login)

	trainerAuth := trainers.Group("")
	trainerAuth.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleTrainer))
	trainerAuth.GET("/me/schedule", trainerController.ListSchedule)
	trainerAuth.GET("/me/availability", trainerController.ListAvailability)
	trainerAuth.POST("/me/availability", trainerController.AddAvailability)
	trainerAuth.PUT("/me/availability/:availabilityID", trainerController.UpdateAvailability)
	trainerAuth.DELETE("/me/availability/:availabilityID", trainerController.RemoveAvailability)
	trainerAuth.GET("/members/search", memberController.SearchByName)

	admin := r.Group("/admin")
	admin.POST("/login", adminController.Login)

	adminAuth := admin.Group("")
	adminAuth.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware(utils.RoleAdmin))
	adminAuth.GET("/rooms", adminController.ListRooms)
	adminAuth.POST("/rooms", adminController.AddRoom)
	adminAuth.DELETE("/rooms/:roomID", adminController.RemoveRoom)
	adminAuth.GET("/classes", adminController.ListClasses)
	adminAuth.POST("/classes", adminController.AddClass)
	adminAuth.DELETE("/classes/:classID", adminController.RemoveClass)
	adminAuth.GET("/schedules", scheduleController.ListSchedules)
	adminAuth.POST("/schedules", scheduleController.CreateSchedule)
	adminAuth.DELETE("/schedules/:scheduleID", scheduleController.RemoveSchedule)
	adminAuth.GET("/availability/trainers", scheduleController.FindAvailableTrainers)
	adminAuth.GET("/availability/rooms", scheduleController.FindAvailableRooms)
	adminAuth.GET("/availability/classes", scheduleController.FindFittingClasses)
}
