package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"gymdesk/internal/models/db_models"
	"gymdesk/internal/models/response_models"
)

type DashboardRepository interface {
	// MemberProfile reads the member_dashboard_view projection: identity,
	// fitness goal, latest recorded health metric and all-time booking count.
	// Returns nil when the member does not exist.
	MemberProfile(ctx context.Context, memberID int) (*response_models.MemberProfile, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

type dashboardRow struct {
	MemberID      int        `gorm:"column:member_id"`
	FirstName     string     `gorm:"column:first_name"`
	LastName      string     `gorm:"column:last_name"`
	FitnessGoals  string     `gorm:"column:fitness_goals"`
	Weight        *float64   `gorm:"column:weight"`
	Height        *float64   `gorm:"column:height"`
	Bodyfat       *float64   `gorm:"column:bodyfat"`
	RecordedAt    *time.Time `gorm:"column:recorded_at"`
	TotalBookings int64      `gorm:"column:total_bookings"`
}

// latestMetric maps the view's nullable metric columns, which are all NULL or
// all set for a given row. A row missing any of them yields no metric.
func (row *dashboardRow) latestMetric() *response_models.MetricSummary {
	if row.RecordedAt == nil || row.Weight == nil || row.Height == nil || row.Bodyfat == nil {
		return nil
	}
	return &response_models.MetricSummary{
		Weight:     *row.Weight,
		Height:     *row.Height,
		Bodyfat:    *row.Bodyfat,
		RecordedAt: *row.RecordedAt,
	}
}

func (r *dashboardRepository) MemberProfile(ctx context.Context, memberID int) (*response_models.MemberProfile, error) {
	var row dashboardRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT member_id, first_name, last_name, fitness_goals,
		       weight, height, bodyfat, recorded_at, total_bookings
		FROM member_dashboard_view
		WHERE member_id = ?
		ORDER BY recorded_at DESC NULLS LAST
		LIMIT 1`, memberID).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.MemberID == 0 {
		return nil, nil
	}

	var member db_models.Member
	if err := r.db.WithContext(ctx).First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	profile := &response_models.MemberProfile{
		MemberID:      row.MemberID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		Email:         member.Email,
		FitnessGoals:  row.FitnessGoals,
		TotalBookings: row.TotalBookings,
		LatestMetric:  row.latestMetric(),
	}
	return profile, nil
}
