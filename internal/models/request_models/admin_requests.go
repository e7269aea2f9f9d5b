package request_models

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AddRoomRequest struct {
	RoomName string `json:"room_name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

type AddClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
}

type CreateScheduleRequest struct {
	ClassID   int    `json:"class_id" binding:"required"`
	RoomID    int    `json:"room_id" binding:"required"`
	TrainerID int    `json:"trainer_id" binding:"required"`
	DayOfWeek string `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type TimeWindowRequest struct {
	DayOfWeek string `form:"day_of_week"`
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time" binding:"required"`
}
