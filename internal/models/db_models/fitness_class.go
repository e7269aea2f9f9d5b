package db_models

type FitnessClass struct {
	ClassID     int    `gorm:"column:class_id;primaryKey;autoIncrement"`
	Name        string `gorm:"not null"`
	Description string
	// Duration is the class length in minutes.
	Duration int `gorm:"not null"`

	Schedules []ClassSchedule `gorm:"foreignKey:ClassID"`
}

func (FitnessClass) TableName() string { return "fitness_class" }
