package db_models

type Admin struct {
	AdminID      int    `gorm:"column:admin_id;primaryKey;autoIncrement"`
	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
}

func (Admin) TableName() string { return "admin" }
