package models

import (
	"time"
)

// Weekday is a day-of-week enumerator matching the vocabulary mentors use
// when describing their weekly availability.
type Weekday string

const (
	Monday    Weekday = "MONDAY"
	Tuesday   Weekday = "TUESDAY"
	Wednesday Weekday = "WEDNESDAY"
	Thursday  Weekday = "THURSDAY"
	Friday    Weekday = "FRIDAY"
	Saturday  Weekday = "SATURDAY"
	Sunday    Weekday = "SUNDAY"
)

// weekdayNames maps time.Weekday onto the enumerator vocabulary.
var weekdayNames = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf returns the enumerator for a calendar date's weekday.
func WeekdayOf(t time.Time) Weekday {
	return weekdayNames[t.Weekday()]
}

// ParseWeekday validates a day name (case-insensitive callers should
// upper-case first). ok is false for anything outside the seven days.
func ParseWeekday(s string) (Weekday, bool) {
	switch Weekday(s) {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return Weekday(s), true
	}
	return "", false
}

// Schedule is a mentor's weekly working pattern: a set of working days and
// a daily wall-clock window ("HH:MM", no timezone component).
type Schedule struct {
	DaysOfWeek []Weekday `bson:"days_of_week,omitempty" json:"daysOfWeek,omitempty"`
	StartTime  string    `bson:"start_time,omitempty" json:"startTime,omitempty"`
	EndTime    string    `bson:"end_time,omitempty" json:"endTime,omitempty"`
}

// WorksOn reports whether d is one of the schedule's working days. An
// empty or absent day set means the mentor is never bookable.
func (s Schedule) WorksOn(d Weekday) bool {
	for _, day := range s.DaysOfWeek {
		if day == d {
			return true
		}
	}
	return false
}

// FieldSummary is the field information denormalized onto mentor documents.
type FieldSummary struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// Mentor is an approved service provider with a weekly availability
// pattern and a per-consultation fee.
type Mentor struct {
	ID          string       `bson:"id" json:"id"`
	UserID      string       `bson:"user_id" json:"userId"`
	FullName    string       `bson:"full_name" json:"fullName"`
	Field       FieldSummary `bson:"field" json:"field"`
	ImageURL    string       `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Fee         float64      `bson:"fee" json:"fee"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Schedule    Schedule     `bson:"schedule" json:"schedule"`
	Rating      float64      `bson:"rating" json:"rating"`
	ReviewCount int          `bson:"review_count" json:"reviewCount"`
	CreatedAt   time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time    `bson:"updated_at" json:"updatedAt"`
}
