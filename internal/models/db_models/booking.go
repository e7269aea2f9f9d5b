package db_models

import "time"

type Booking struct {
	BookingID  int       `gorm:"column:booking_id;primaryKey;autoIncrement"`
	MemberID   int       `gorm:"column:member_id;not null"`
	ScheduleID int       `gorm:"column:schedule_id;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (Booking) TableName() string { return "booking" }
