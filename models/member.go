package models

import "time"

// Member is a user who has booked at least one consultation. Created
// lazily on first booking; the backing user keeps the MEMBER role from
// then on.
type Member struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	FirstName   string    `bson:"first_name" json:"firstName"`
	LastName    string    `bson:"last_name" json:"lastName"`
	Email       string    `bson:"email" json:"email"`
	PhoneNumber string    `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
