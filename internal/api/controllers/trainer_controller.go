package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/models/request_models"
	"gymdesk/internal/services"
	"gymdesk/pkg/middleware"
	"gymdesk/pkg/utils"
)

type TrainerController struct {
	trainerService services.TrainerServiceInterface
}

func NewTrainerController(trainerService services.TrainerServiceInterface) *TrainerController {
	return &TrainerController{trainerService: trainerService}
}

func (t *TrainerController) Register(c *gin.Context) {
	var req request_models.RegisterTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trainerID, err := t.trainerService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"trainer_id": trainerID}, "Trainer registered successfully")
}

func (t *TrainerController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trainerID, token, err := t.trainerService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	utils.RespondSuccess(c, gin.H{"trainer_id": trainerID, "token": token}, "Login successful")
}

func (t *TrainerController) ListSchedule(c *gin.Context) {
	trainerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	entries, err := t.trainerService.ListSchedule(c.Request.Context(), trainerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "")
}

func (t *TrainerController) ListAvailability(c *gin.Context) {
	trainerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	entries, err := t.trainerService.ListAvailability(c.Request.Context(), trainerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "")
}

func (t *TrainerController) AddAvailability(c *gin.Context) {
	trainerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.trainerService.AddAvailability(c.Request.Context(), trainerID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Availability added")
}

func (t *TrainerController) UpdateAvailability(c *gin.Context) {
	availabilityID, err := strconv.Atoi(c.Param("availabilityID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid availability ID")
		return
	}

	var req request_models.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := t.trainerService.UpdateAvailability(c.Request.Context(), availabilityID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Availability updated")
}

func (t *TrainerController) RemoveAvailability(c *gin.Context) {
	trainerID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	availabilityID, err := strconv.Atoi(c.Param("availabilityID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid availability ID")
		return
	}

	if err := t.trainerService.RemoveAvailability(c.Request.Context(), availabilityID, trainerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Availability removed")
}
