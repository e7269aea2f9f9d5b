package response_models

// OpenSchedule is a bookable slot with its remaining capacity.
type OpenSchedule struct {
	ScheduleID     int    `json:"schedule_id"`
	ClassName      string `json:"class_name"`
	RoomName       string `json:"room_name"`
	DayOfWeek      string `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	BookedCount    int64  `json:"booked_count"`
	Capacity       int    `json:"capacity"`
	AvailableSpots int64  `json:"available_spots"`
}

type ScheduleDetail struct {
	ScheduleID  int    `json:"schedule_id"`
	ClassName   string `json:"class_name"`
	RoomName    string `json:"room_name"`
	TrainerName string `json:"trainer_name"`
	DayOfWeek   string `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type TrainerScheduleEntry struct {
	ClassName string `json:"class_name"`
	RoomName  string `json:"room_name"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityEntry struct {
	AvailabilityID int    `json:"availability_id"`
	DayOfWeek      string `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
}
