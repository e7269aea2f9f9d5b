package db_models

// TrainerAvailability is a declared open window. Creating a schedule that fits
// inside a window consumes (deletes) it; the remainder is not split out.
type TrainerAvailability struct {
	AvailabilityID int    `gorm:"column:availability_id;primaryKey;autoIncrement"`
	TrainerID      int    `gorm:"column:trainer_id;not null"`
	DayOfWeek      string `gorm:"column:day_of_week;not null"`
	StartTime      string `gorm:"column:start_time;type:varchar(5);not null"`
	EndTime        string `gorm:"column:end_time;type:varchar(5);not null"`
}

func (TrainerAvailability) TableName() string { return "trainer_availability" }
