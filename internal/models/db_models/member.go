package db_models

type Member struct {
	MemberID     int    `gorm:"column:member_id;primaryKey;autoIncrement"`
	FirstName    string `gorm:"column:first_name;not null"`
	LastName     string `gorm:"column:last_name;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	DateOfBirth  string
	Gender       string
	FitnessGoals string

	Bookings      []Booking      `gorm:"foreignKey:MemberID"`
	HealthMetrics []HealthMetric `gorm:"foreignKey:MemberID"`
}

func (Member) TableName() string { return "member" }
