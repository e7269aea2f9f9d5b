package db_models

type Room struct {
	RoomID   int    `gorm:"column:room_id;primaryKey;autoIncrement"`
	RoomName string `gorm:"column:room_name;not null"`
	Capacity int    `gorm:"not null"`

	Schedules []ClassSchedule `gorm:"foreignKey:RoomID"`
}

func (Room) TableName() string { return "room" }
