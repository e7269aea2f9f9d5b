package db_models

import "time"

// HealthMetric is an append-only log entry; the most recent row per member is
// that member's current metrics.
type HealthMetric struct {
	MetricID   int       `gorm:"column:metric_id;primaryKey;autoIncrement"`
	MemberID   int       `gorm:"column:member_id;not null"`
	Weight     float64
	Height     float64
	Bodyfat    float64
	RecordedAt time.Time `gorm:"column:recorded_at;not null;autoCreateTime"`
}

func (HealthMetric) TableName() string { return "health_metric" }
