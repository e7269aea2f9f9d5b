package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDashboardRowLatestMetric(t *testing.T) {
	now := time.Now()
	weight, height, bodyfat := 80.5, 181.0, 17.2

	full := dashboardRow{Weight: &weight, Height: &height, Bodyfat: &bodyfat, RecordedAt: &now}
	metric := full.latestMetric()
	if assert.NotNil(t, metric) {
		assert.Equal(t, weight, metric.Weight)
		assert.Equal(t, height, metric.Height)
		assert.Equal(t, bodyfat, metric.Bodyfat)
	}

	// Any missing column means no metric, not a partial one.
	tests := []struct {
		name string
		row  dashboardRow
	}{
		{name: "all null", row: dashboardRow{}},
		{name: "missing height", row: dashboardRow{Weight: &weight, Bodyfat: &bodyfat, RecordedAt: &now}},
		{name: "missing bodyfat", row: dashboardRow{Weight: &weight, Height: &height, RecordedAt: &now}},
		{name: "missing recorded_at", row: dashboardRow{Weight: &weight, Height: &height, Bodyfat: &bodyfat}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, tt.row.latestMetric())
		})
	}
}
