package controllersfx

import (
	"go.uber.org/fx"

	"gymdesk/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewMemberController,
	controllers.NewTrainerController,
	controllers.NewAdminController,
	controllers.NewScheduleController,
	controllers.NewBookingController,
	controllers.NewDashboardController,
)
