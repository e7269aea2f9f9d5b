package request_models

type BookClassRequest struct {
	ScheduleID int `json:"schedule_id" binding:"required"`
}
