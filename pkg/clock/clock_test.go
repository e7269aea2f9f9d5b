package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:05", want: "09:05"},
		{in: "9:05", want: "09:05"},
		{in: "00:00", want: "00:00"},
		{in: "23:59", want: "23:59"},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "half past ten", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMinutes(t *testing.T) {
	got, err := Minutes("09:00", "10:30")
	assert.NoError(t, err)
	assert.Equal(t, 90, got)

	got, err = Minutes("10:00", "10:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestBefore(t *testing.T) {
	assert.True(t, Before("09:00", "10:00"))
	assert.False(t, Before("10:00", "09:00"))
	assert.False(t, Before("10:00", "10:00"))
	// Zero padding keeps lexical order chronological.
	assert.True(t, Before("09:30", "10:00"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("08:00", "12:00", "09:00", "10:00"))
	assert.True(t, Contains("09:00", "10:00", "09:00", "10:00"))
	assert.False(t, Contains("09:30", "12:00", "09:00", "10:00"))
	assert.False(t, Contains("08:00", "09:30", "09:00", "10:00"))
}

func TestWeekday(t *testing.T) {
	for _, in := range []string{"monday", "Monday", "MONDAY"} {
		got, err := Weekday(in)
		assert.NoError(t, err, "input %q", in)
		assert.Equal(t, "Monday", got)
	}

	_, err := Weekday("Funday")
	assert.Error(t, err)
}
