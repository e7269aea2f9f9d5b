package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/models/request_models"
	"gymdesk/internal/services"
	"gymdesk/pkg/middleware"
	"gymdesk/pkg/utils"
)

type MemberController struct {
	memberService services.MemberServiceInterface
}

func NewMemberController(memberService services.MemberServiceInterface) *MemberController {
	return &MemberController{memberService: memberService}
}

func (m *MemberController) Register(c *gin.Context) {
	var req request_models.RegisterMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	memberID, err := m.memberService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"member_id": memberID}, "Member registered successfully")
}

func (m *MemberController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	memberID, token, err := m.memberService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	utils.RespondSuccess(c, gin.H{"member_id": memberID, "token": token}, "Login successful")
}

func (m *MemberController) UpdateFitnessGoals(c *gin.Context) {
	memberID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.UpdateFitnessGoalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.memberService.UpdateFitnessGoals(c.Request.Context(), memberID, req.FitnessGoals); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Fitness goals updated")
}

func (m *MemberController) UpdatePersonalInfo(c *gin.Context) {
	memberID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.memberService.UpdatePersonalInfo(c.Request.Context(), memberID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Profile updated")
}

func (m *MemberController) AddHealthMetric(c *gin.Context) {
	memberID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.AddHealthMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.memberService.AddHealthMetric(c.Request.Context(), memberID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Health metric recorded")
}

func (m *MemberController) SearchByName(c *gin.Context) {
	firstName := c.Query("first_name")
	lastName := c.Query("last_name")
	if firstName == "" && lastName == "" {
		utils.RespondError(c, http.StatusBadRequest, "first_name or last_name is required")
		return
	}

	summary, err := m.memberService.SearchByName(c.Request.Context(), firstName, lastName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "")
}

func (m *MemberController) ForgotPassword(c *gin.Context) {
	var req request_models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.memberService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email is registered, a reset code has been sent")
}

func (m *MemberController) ResetPassword(c *gin.Context) {
	var req request_models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := m.memberService.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid or expired reset code")
		return
	}

	utils.RespondSuccess(c, nil, "Password reset successfully")
}
