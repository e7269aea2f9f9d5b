package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/services"
	"gymdesk/pkg/middleware"
	"gymdesk/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

func (d *DashboardController) GetMyProfile(c *gin.Context) {
	memberID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profile, err := d.dashboardService.GetMemberProfile(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "")
}
