package infra

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/pkg/utils"
)

// Seed inserts sample data on an empty database. Availability windows already
// carved into schedules are not re-inserted, mirroring how schedule creation
// consumes them.
func Seed(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&db_models.Member{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("sample data already present, skipping seed")
		return nil
	}

	password, err := utils.HashPassword("changeme")
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		members := []db_models.Member{
			{FirstName: "Jack", LastName: "Wimp", Email: "jack@example.com", PasswordHash: password, DateOfBirth: "1990-01-15", Gender: "Male", FitnessGoals: "Lose weight"},
			{FirstName: "Ryan", LastName: "Perry", Email: "ryan@example.com", PasswordHash: password, DateOfBirth: "1985-06-22", Gender: "Male", FitnessGoals: "Build muscle"},
			{FirstName: "Ming", LastName: "Vo", Email: "ming@example.com", PasswordHash: password, DateOfBirth: "1992-03-10", Gender: "Female", FitnessGoals: "Improve endurance"},
		}
		if err := tx.Create(&members).Error; err != nil {
			return err
		}

		trainers := []db_models.Trainer{
			{FirstName: "Grant", LastName: "Tar", Email: "grant@example.com", PasswordHash: password, Specialization: "Yoga"},
			{FirstName: "Karim", LastName: "Rifai", Email: "karim@example.com", PasswordHash: password, Specialization: "Strength Training"},
		}
		if err := tx.Create(&trainers).Error; err != nil {
			return err
		}

		if err := tx.Create(&db_models.Admin{Username: "admin", PasswordHash: password}).Error; err != nil {
			return err
		}

		rooms := []db_models.Room{
			{RoomName: "Room A", Capacity: 20},
			{RoomName: "Room B", Capacity: 15},
			{RoomName: "Room C", Capacity: 10},
			{RoomName: "Studio 1", Capacity: 25},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return err
		}

		classes := []db_models.FitnessClass{
			{Name: "Yoga", Description: "A relaxing yoga class", Duration: 60},
			{Name: "Strength", Description: "Build your strength", Duration: 45},
			{Name: "Cardio", Description: "High intensity cardio workout", Duration: 30},
			{Name: "Pilates", Description: "Core strengthening pilates", Duration: 50},
			{Name: "HIIT", Description: "High Intensity Interval Training", Duration: 40},
		}
		if err := tx.Create(&classes).Error; err != nil {
			return err
		}

		metrics := []db_models.HealthMetric{
			{MemberID: members[0].MemberID, Weight: 100, Height: 180, Bodyfat: 25},
			{MemberID: members[1].MemberID, Weight: 80, Height: 175, Bodyfat: 15},
			{MemberID: members[2].MemberID, Weight: 70, Height: 170, Bodyfat: 10},
		}
		if err := tx.Create(&metrics).Error; err != nil {
			return err
		}

		// Open windows that no schedule has consumed yet.
		availabilities := []db_models.TrainerAvailability{
			{TrainerID: trainers[1].TrainerID, DayOfWeek: "Thursday", StartTime: "08:00", EndTime: "10:00"},
		}
		if err := tx.Create(&availabilities).Error; err != nil {
			return err
		}

		schedules := []db_models.ClassSchedule{
			{ClassID: classes[0].ClassID, RoomID: rooms[0].RoomID, TrainerID: trainers[0].TrainerID, DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00"},
			{ClassID: classes[1].ClassID, RoomID: rooms[1].RoomID, TrainerID: trainers[1].TrainerID, DayOfWeek: "Wednesday", StartTime: "14:00", EndTime: "14:45"},
			{ClassID: classes[3].ClassID, RoomID: rooms[3].RoomID, TrainerID: trainers[0].TrainerID, DayOfWeek: "Friday", StartTime: "15:00", EndTime: "15:50"},
		}
		if err := tx.Create(&schedules).Error; err != nil {
			return err
		}

		bookings := []db_models.Booking{
			{MemberID: members[0].MemberID, ScheduleID: schedules[0].ScheduleID},
			{MemberID: members[1].MemberID, ScheduleID: schedules[0].ScheduleID},
			{MemberID: members[2].MemberID, ScheduleID: schedules[1].ScheduleID},
		}
		if err := tx.Create(&bookings).Error; err != nil {
			return err
		}

		log.Info("sample data inserted")
		return nil
	})
}
