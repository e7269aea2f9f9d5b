package infra

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
)

const dashboardViewDDL = `
CREATE OR REPLACE VIEW member_dashboard_view AS
SELECT
    m.member_id,
    m.first_name,
    m.last_name,
    m.fitness_goals,
    hm.weight,
    hm.height,
    hm.bodyfat,
    hm.recorded_at,
    COUNT(b.booking_id) AS total_bookings
FROM member m
LEFT JOIN health_metric hm ON m.member_id = hm.member_id
LEFT JOIN booking b ON m.member_id = b.member_id
GROUP BY m.member_id, hm.metric_id
`

// The trigger enforces the capacity invariant for every writer, including ones
// that bypass the locked count-then-insert path in the booking repository.
const capacityTriggerDDL = `
CREATE OR REPLACE FUNCTION check_room_capacity()
RETURNS TRIGGER AS $$
DECLARE
    current_bookings INT;
    max_capacity INT;
BEGIN
    SELECT COUNT(*), r.capacity
    INTO current_bookings, max_capacity
    FROM booking b
    JOIN class_schedule cs ON b.schedule_id = cs.schedule_id
    JOIN room r ON cs.room_id = r.room_id
    WHERE b.schedule_id = NEW.schedule_id
    GROUP BY r.capacity;

    IF current_bookings >= max_capacity THEN
        RAISE EXCEPTION 'class is at full capacity';
    END IF;

    RETURN NEW;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS enforce_room_capacity ON booking;
CREATE TRIGGER enforce_room_capacity
BEFORE INSERT ON booking
FOR EACH ROW
EXECUTE FUNCTION check_room_capacity();
`

var indexDDL = []string{
	`CREATE INDEX IF NOT EXISTS idx_member_email ON member(email)`,
	`CREATE INDEX IF NOT EXISTS idx_booking_member ON booking(member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_booking_schedule ON booking(schedule_id)`,
}

// Migrate creates the tables, the dashboard view, the capacity trigger and the
// lookup indexes. Safe to run on every start.
func Migrate(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&db_models.Member{},
		&db_models.Trainer{},
		&db_models.Room{},
		&db_models.FitnessClass{},
		&db_models.TrainerAvailability{},
		&db_models.ClassSchedule{},
		&db_models.Booking{},
		&db_models.HealthMetric{},
		&db_models.Admin{},
	)
	if err != nil {
		return err
	}

	if err := db.Exec(dashboardViewDDL).Error; err != nil {
		return err
	}
	if err := db.Exec(capacityTriggerDDL).Error; err != nil {
		return err
	}
	for _, ddl := range indexDDL {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}

	log.Info("database schema migrated")
	return nil
}
