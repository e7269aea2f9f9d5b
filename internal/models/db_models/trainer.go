package db_models

type Trainer struct {
	TrainerID      int    `gorm:"column:trainer_id;primaryKey;autoIncrement"`
	FirstName      string `gorm:"column:first_name;not null"`
	LastName       string `gorm:"column:last_name;not null"`
	Email          string `gorm:"unique;not null"`
	PasswordHash   string `gorm:"not null"`
	Specialization string

	Schedules      []ClassSchedule       `gorm:"foreignKey:TrainerID"`
	Availabilities []TrainerAvailability `gorm:"foreignKey:TrainerID"`
}

func (Trainer) TableName() string { return "trainer" }
