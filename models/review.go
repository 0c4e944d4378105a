package models

import "time"

// Review is a member's rating of a mentor after a completed consultation.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	MentorID   string    `bson:"mentor_id" json:"mentorId"`
	MemberID   string    `bson:"member_id" json:"memberId"`
	MemberName string    `bson:"member_name" json:"memberName"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}
