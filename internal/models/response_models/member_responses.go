package response_models

import "time"

// MemberProfile is the dashboard projection: identity, fitness goal, the most
// recently recorded health metric (nil if none) and the all-time booking count.
type MemberProfile struct {
	MemberID      int            `json:"member_id"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Email         string         `json:"email"`
	FitnessGoals  string         `json:"fitness_goals"`
	LatestMetric  *MetricSummary `json:"latest_metric,omitempty"`
	TotalBookings int64          `json:"total_bookings"`
}

type MetricSummary struct {
	Weight     float64   `json:"weight"`
	Height     float64   `json:"height"`
	Bodyfat    float64   `json:"bodyfat"`
	RecordedAt time.Time `json:"recorded_at"`
}

type MemberSummary struct {
	MemberID     int            `json:"member_id"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Email        string         `json:"email"`
	FitnessGoals string         `json:"fitness_goals"`
	LatestMetric *MetricSummary `json:"latest_metric,omitempty"`
}

type MemberBooking struct {
	BookingID int    `json:"booking_id"`
	ClassName string `json:"class_name"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
