package models

import "time"

// Role is the closed set of account roles on the platform.
type Role string

const (
	RoleUser   Role = "USER"
	RoleMember Role = "MEMBER"
	RoleMentor Role = "MENTOR"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleMember, RoleMentor, RoleAdmin:
		return true
	}
	return false
}

// User is a platform account. Every mentor and member is backed by a user;
// the role field records the account's current standing (a USER becomes a
// MEMBER on their first booking, and a MENTOR when an application is approved).
type User struct {
	ID            string         `bson:"id" json:"id"`
	FirstName     string         `bson:"first_name" json:"firstName"`
	LastName      string         `bson:"last_name" json:"lastName"`
	Username      string         `bson:"username" json:"username"`
	Email         string         `bson:"email" json:"email"`
	PasswordHash  string         `bson:"password_hash" json:"-"`
	PhoneNumber   string         `bson:"phone_number,omitempty" json:"phoneNumber,omitempty"`
	Address       string         `bson:"address,omitempty" json:"address,omitempty"`
	DateOfBirth   string         `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"`
	Role          Role           `bson:"role" json:"role"`
	TokenHash     string         `bson:"token_hash,omitempty" json:"-"`
	Notifications []Notification `bson:"notifications,omitempty" json:"notifications,omitempty"`
	CreatedAt     time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updatedAt"`
}

// FullName joins first and last name with a single space, trimming the
// join when either part is empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// Notification is an in-app message appended to the user document.
type Notification struct {
	ID        string         `bson:"id" json:"id"`
	Type      string         `bson:"type" json:"type"`
	Message   string         `bson:"message" json:"message"`
	Data      map[string]any `bson:"data,omitempty" json:"data,omitempty"`
	Read      bool           `bson:"read" json:"read"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}
