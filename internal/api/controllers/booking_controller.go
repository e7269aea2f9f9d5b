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

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{bookingService: bookingService}
}

func (b *BookingController) BookClass(c *gin.Context) {
	memberID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request_models.BookClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bookingID, err := b.bookingService.BookClass(c.Request.Context(), memberID, req.ScheduleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"booking_id": bookingID}, "Class booked successfully")
}

func (b *BookingController) CancelBooking(c *gin.Context) {
	memberID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	if err := b.bookingService.CancelBooking(c.Request.Context(), bookingID, memberID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking cancelled")
}

func (b *BookingController) ListMyBookings(c *gin.Context) {
	memberID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	bookings, err := b.bookingService.ListMemberBookings(c.Request.Context(), memberID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "")
}

func (b *BookingController) ListOpenSchedules(c *gin.Context) {
	schedules, err := b.bookingService.ListOpenSchedules(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "")
}
