package models

import "time"

// AppointmentStatus is the server-side lifecycle of a booked consultation.
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDING"
	AppointmentConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentCancelled AppointmentStatus = "CANCELLED"
	AppointmentCompleted AppointmentStatus = "COMPLETED"
)

// CanTransitionTo reports whether an appointment may move from s to next.
// Only PENDING appointments may be confirmed or cancelled; confirmed ones
// may be completed or cancelled. Terminal states never transition.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentPending:
		return next == AppointmentConfirmed || next == AppointmentCancelled
	case AppointmentConfirmed:
		return next == AppointmentCompleted || next == AppointmentCancelled
	}
	return false
}

// PaymentMethod selects how a consultation fee is settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentOnline PaymentMethod = "ONLINE"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCash || m == PaymentOnline
}

// PaymentStatus tracks settlement of the consultation fee.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Appointment is a confirmed booking record. Created exactly once per
// wizard submission (the idempotency key carries that guarantee through
// retries); all later changes are status transitions.
type Appointment struct {
	ID             string            `bson:"id" json:"id"`
	MentorID       string            `bson:"mentor_id" json:"mentorId"`
	MemberID       string            `bson:"member_id" json:"memberId"`
	Date           string            `bson:"date" json:"date"` // YYYY-MM-DD
	Time           string            `bson:"time" json:"time"` // HH:MM
	Reason         string            `bson:"reason" json:"reason"`
	Notes          string            `bson:"notes,omitempty" json:"notes,omitempty"`
	ContactName    string            `bson:"contact_name,omitempty" json:"contactName,omitempty"`
	ContactPhone   string            `bson:"contact_phone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail   string            `bson:"contact_email,omitempty" json:"contactEmail,omitempty"`
	Status         AppointmentStatus `bson:"status" json:"status"`
	PaymentMethod  PaymentMethod     `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus  PaymentStatus     `bson:"payment_status" json:"paymentStatus"`
	Fee            float64           `bson:"fee" json:"fee"`
	IdempotencyKey string            `bson:"idempotency_key" json:"-"`
	CreatedAt      time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `bson:"updated_at" json:"updatedAt"`
}

// BookingResult is what a wizard submission hands back to the client:
// the created appointment and, for online payments, the gateway redirect.
type BookingResult struct {
	Appointment *Appointment `json:"appointment"`
	PaymentURL  string       `json:"paymentUrl,omitempty"`
	// User is set when the booking promoted the account from USER to
	// MEMBER, so the client can refresh its session.
	User *User `json:"user,omitempty"`
}
