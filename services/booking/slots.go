package booking

import (
	"fmt"
	"time"

	"mentorhub/models"
)

// slotInterval is the fixed width of an offerable appointment slot.
const slotInterval = 30 // minutes

// parseClock converts a wall-clock string ("HH:MM" or "HH:MM:SS") to
// minutes from midnight. ok is false when the string does not parse;
// callers are expected to supply well-formed values from mentor records.
func parseClock(s string) (int, bool) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, false
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// GenerateTimeSlots partitions the half-open window [startTime, endTime)
// into 30-minute slots and returns their start times as zero-padded
// "HH:MM" strings, in order. Every start time strictly before endTime is
// emitted. The result is empty when either bound is absent or when
// startTime >= endTime.
func GenerateTimeSlots(startTime, endTime string) []string {
	if startTime == "" || endTime == "" {
		return nil
	}
	start, ok := parseClock(startTime)
	if !ok {
		return nil
	}
	end, ok := parseClock(endTime)
	if !ok {
		return nil
	}

	var slots []string
	for t := start; t < end; t += slotInterval {
		slots = append(slots, fmt.Sprintf("%02d:%02d", t/60, t%60))
	}
	return slots
}

// IsDateAvailable reports whether a calendar date falls on one of the
// mentor's working days. An empty or absent day set makes every date
// unavailable.
func IsDateAvailable(date time.Time, schedule models.Schedule) bool {
	if len(schedule.DaysOfWeek) == 0 {
		return false
	}
	return schedule.WorksOn(models.WeekdayOf(date))
}

// SlotsFor derives the offerable slot sequence for a date under a
// schedule: empty when the date is not a working day, otherwise the full
// 30-minute partition of the working window.
func SlotsFor(date time.Time, schedule models.Schedule) []string {
	if !IsDateAvailable(date, schedule) {
		return nil
	}
	return GenerateTimeSlots(schedule.StartTime, schedule.EndTime)
}
