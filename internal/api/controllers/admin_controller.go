package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/models/request_models"
	"gymdesk/internal/services"
	"gymdesk/pkg/utils"
)

type AdminController struct {
	adminService services.AdminServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface) *AdminController {
	return &AdminController{adminService: adminService}
}

func (a *AdminController) Login(c *gin.Context) {
	var req request_models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.adminService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}

func (a *AdminController) AddRoom(c *gin.Context) {
	var req request_models.AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	roomID, err := a.adminService.AddRoom(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"room_id": roomID}, "Room added")
}

func (a *AdminController) RemoveRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := a.adminService.RemoveRoom(c.Request.Context(), roomID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Room removed")
}

func (a *AdminController) ListRooms(c *gin.Context) {
	rooms, err := a.adminService.ListRooms(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rooms, "")
}

func (a *AdminController) AddClass(c *gin.Context) {
	var req request_models.AddClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	classID, err := a.adminService.AddClass(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"class_id": classID}, "Class added")
}

func (a *AdminController) RemoveClass(c *gin.Context) {
	classID, err := strconv.Atoi(c.Param("classID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid class ID")
		return
	}

	if err := a.adminService.RemoveClass(c.Request.Context(), classID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Class removed")
}

func (a *AdminController) ListClasses(c *gin.Context) {
	classes, err := a.adminService.ListClasses(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, classes, "")
}
