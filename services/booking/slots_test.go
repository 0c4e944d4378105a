package booking

import (
	"testing"
	"time"

	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []string
	}{
		{
			name:  "standard morning window",
			start: "09:00",
			end:   "12:00",
			want:  []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		},
		{
			name:  "window not divisible by thirty minutes",
			start: "09:00",
			end:   "11:15",
			want:  []string{"09:00", "09:30", "10:00", "10:30", "11:00"},
		},
		{
			name:  "seconds tolerated in bounds",
			start: "09:00:00",
			end:   "10:00:00",
			want:  []string{"09:00", "09:30"},
		},
		{
			name:  "single slot",
			start: "13:00",
			end:   "13:30",
			want:  []string{"13:00"},
		},
		{
			name:  "zero padded early hours",
			start: "08:30",
			end:   "09:30",
			want:  []string{"08:30", "09:00"},
		},
		{
			name:  "empty start",
			start: "",
			end:   "12:00",
			want:  nil,
		},
		{
			name:  "empty end",
			start: "09:00",
			end:   "",
			want:  nil,
		},
		{
			name:  "start equals end",
			start: "09:00",
			end:   "09:00",
			want:  nil,
		},
		{
			name:  "start after end",
			start: "14:00",
			end:   "09:00",
			want:  nil,
		},
		{
			name:  "unparsable start",
			start: "morning",
			end:   "12:00",
			want:  nil,
		},
		{
			name:  "out of range hour",
			start: "25:00",
			end:   "26:00",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateTimeSlots(tt.start, tt.end)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateTimeSlots_OrderAndWidth(t *testing.T) {
	slots := GenerateTimeSlots("08:00", "17:00")
	require.NotEmpty(t, slots)

	prev, ok := parseClock(slots[0])
	require.True(t, ok)
	for _, s := range slots[1:] {
		cur, ok := parseClock(s)
		require.True(t, ok)
		assert.Equal(t, slotInterval, cur-prev, "slots must be contiguous 30-minute starts")
		prev = cur
	}
}

func TestIsDateAvailable(t *testing.T) {
	schedule := models.Schedule{
		DaysOfWeek: []models.Weekday{models.Monday, models.Wednesday},
		StartTime:  "09:00",
		EndTime:    "17:00",
	}

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Monday, monday.Weekday())

	assert.True(t, IsDateAvailable(monday, schedule))
	assert.True(t, IsDateAvailable(monday.AddDate(0, 0, 2), schedule))  // wednesday
	assert.False(t, IsDateAvailable(monday.AddDate(0, 0, 1), schedule)) // tuesday
	assert.False(t, IsDateAvailable(monday.AddDate(0, 0, 5), schedule)) // saturday
}

func TestIsDateAvailable_EmptyDaySet(t *testing.T) {
	for d := 0; d < 7; d++ {
		date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
		assert.False(t, IsDateAvailable(date, models.Schedule{StartTime: "09:00", EndTime: "17:00"}))
	}
}

func TestSlotsFor(t *testing.T) {
	schedule := models.Schedule{
		DaysOfWeek: []models.Weekday{models.Friday},
		StartTime:  "10:00",
		EndTime:    "12:00",
	}

	friday := time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Friday, friday.Weekday())

	assert.Equal(t, []string{"10:00", "10:30", "11:00", "11:30"}, SlotsFor(friday, schedule))
	assert.Nil(t, SlotsFor(friday.AddDate(0, 0, 1), schedule), "non-working day has no slots")
}
