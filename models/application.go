package models

import "time"

// ApplicationStatus is the moderation state of a mentor application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "PENDING"
	ApplicationApproved ApplicationStatus = "APPROVED"
	ApplicationRejected ApplicationStatus = "REJECTED"
)

// MentorApplication is a user's request to become a mentor: the proposed
// schedule, field, fee and profile photo. Admins approve or reject;
// approval creates the Mentor record and flips the applicant's role.
type MentorApplication struct {
	ID          string            `bson:"id" json:"id"`
	UserID      string            `bson:"user_id" json:"userId"`
	FieldID     string            `bson:"field_id" json:"fieldId"`
	Field       FieldSummary      `bson:"field" json:"field"`
	DaysOfWeek  []Weekday         `bson:"days_of_week" json:"daysOfWeek"`
	StartTime   string            `bson:"start_time" json:"startTime"`
	EndTime     string            `bson:"end_time" json:"endTime"`
	Fee         float64           `bson:"fee" json:"fee"`
	Description string            `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL    string            `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	Status      ApplicationStatus `bson:"status" json:"status"`
	CreatedAt   time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time         `bson:"updated_at" json:"updatedAt"`
}
