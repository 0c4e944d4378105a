package mentor

import (
	"testing"

	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule(t *testing.T) {
	tests := []struct {
		name      string
		days      []string
		start     string
		end       string
		wantField string // empty means valid
		wantDays  []models.Weekday
	}{
		{
			name:     "valid pattern",
			days:     []string{"MONDAY", "WEDNESDAY"},
			start:    "09:00",
			end:      "17:00",
			wantDays: []models.Weekday{models.Monday, models.Wednesday},
		},
		{
			name:     "case and whitespace normalized",
			days:     []string{" monday ", "Friday"},
			start:    "09:00",
			end:      "12:00",
			wantDays: []models.Weekday{models.Monday, models.Friday},
		},
		{
			name:     "duplicate days collapsed",
			days:     []string{"MONDAY", "MONDAY", "TUESDAY"},
			start:    "09:00",
			end:      "12:00",
			wantDays: []models.Weekday{models.Monday, models.Tuesday},
		},
		{
			name:      "empty day set",
			days:      nil,
			start:     "09:00",
			end:       "17:00",
			wantField: "daysOfWeek",
		},
		{
			name:      "unknown day name",
			days:      []string{"FUNDAY"},
			start:     "09:00",
			end:       "17:00",
			wantField: "daysOfWeek",
		},
		{
			name:      "unparsable start time",
			days:      []string{"MONDAY"},
			start:     "morning",
			end:       "17:00",
			wantField: "startTime",
		},
		{
			name:      "unparsable end time",
			days:      []string{"MONDAY"},
			start:     "09:00",
			end:       "late",
			wantField: "endTime",
		},
		{
			name:      "window inverted",
			days:      []string{"MONDAY"},
			start:     "17:00",
			end:       "09:00",
			wantField: "endTime",
		},
		{
			name:      "window empty",
			days:      []string{"MONDAY"},
			start:     "09:00",
			end:       "09:00",
			wantField: "endTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched, err := buildSchedule(tt.days, tt.start, tt.end)
			if tt.wantField != "" {
				ve, ok := IsValidationError(err)
				require.True(t, ok, "expected a validation error, got %v", err)
				assert.Equal(t, tt.wantField, ve.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, sched.DaysOfWeek)
			assert.Equal(t, tt.start, sched.StartTime)
			assert.Equal(t, tt.end, sched.EndTime)
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 540, true},
		{"09:30:00", 570, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"09:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseClock(tt.in)
		assert.Equal(t, tt.ok, ok, "parseClock(%q) ok", tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, "parseClock(%q)", tt.in)
		}
	}
}
