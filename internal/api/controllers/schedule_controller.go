package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/models/request_models"
	"gymdesk/internal/services"
	"gymdesk/pkg/utils"
)

type ScheduleController struct {
	schedulingService services.SchedulingServiceInterface
}

func NewScheduleController(schedulingService services.SchedulingServiceInterface) *ScheduleController {
	return &ScheduleController{schedulingService: schedulingService}
}

func (s *ScheduleController) FindAvailableTrainers(c *gin.Context) {
	var req request_models.TimeWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	trainers, err := s.schedulingService.FindAvailableTrainers(
		c.Request.Context(), req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trainers, "")
}

func (s *ScheduleController) FindAvailableRooms(c *gin.Context) {
	var req request_models.TimeWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	rooms, err := s.schedulingService.FindAvailableRooms(c.Request.Context(), req.StartTime, req.EndTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rooms, "")
}

func (s *ScheduleController) FindFittingClasses(c *gin.Context) {
	var req request_models.TimeWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	classes, err := s.schedulingService.FindClassesFittingDuration(c.Request.Context(), req.StartTime, req.EndTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, classes, "")
}

func (s *ScheduleController) CreateSchedule(c *gin.Context) {
	var req request_models.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	scheduleID, err := s.schedulingService.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"schedule_id": scheduleID}, "Schedule created")
}

func (s *ScheduleController) RemoveSchedule(c *gin.Context) {
	scheduleID, err := strconv.Atoi(c.Param("scheduleID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	if err := s.schedulingService.RemoveSchedule(c.Request.Context(), scheduleID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule removed")
}

func (s *ScheduleController) ListSchedules(c *gin.Context) {
	schedules, err := s.schedulingService.ListSchedules(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "")
}
