package db_models

// ClassSchedule is a recurring (day-of-week, time-range) slot binding one
// class, one room and one trainer. Times are zero-padded "HH:MM" so SQL
// string comparison orders them correctly.
type ClassSchedule struct {
	ScheduleID int    `gorm:"column:schedule_id;primaryKey;autoIncrement"`
	ClassID    int    `gorm:"column:class_id;not null"`
	RoomID     int    `gorm:"column:room_id;not null"`
	TrainerID  int    `gorm:"column:trainer_id;not null"`
	DayOfWeek  string `gorm:"column:day_of_week;not null"`
	StartTime  string `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime    string `gorm:"column:end_time;type:varchar(5);not null"`

	FitnessClass FitnessClass `gorm:"foreignKey:ClassID"`
	Room         Room         `gorm:"foreignKey:RoomID"`
	Trainer      Trainer      `gorm:"foreignKey:TrainerID"`
	Bookings     []Booking    `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
}

func (ClassSchedule) TableName() string { return "class_schedule" }
