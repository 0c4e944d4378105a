package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf(t *testing.T) {
	// 2026-09-07 is a Monday.
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	want := []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
	for i, expected := range want {
		assert.Equal(t, expected, WeekdayOf(monday.AddDate(0, 0, i)))
	}
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("MONDAY")
	assert.True(t, ok)
	assert.Equal(t, Monday, d)

	_, ok = ParseWeekday("monday")
	assert.False(t, ok, "lower case is not accepted; callers upper-case first")

	_, ok = ParseWeekday("FUNDAY")
	assert.False(t, ok)
}

func TestSchedule_WorksOn(t *testing.T) {
	s := Schedule{DaysOfWeek: []Weekday{Monday, Friday}}
	assert.True(t, s.WorksOn(Monday))
	assert.True(t, s.WorksOn(Friday))
	assert.False(t, s.WorksOn(Sunday))
	assert.False(t, Schedule{}.WorksOn(Monday))
}
