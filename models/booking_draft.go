package models

import "time"

// Wizard step ordinals. The wizard is a strictly ordered four-step form;
// a draft's CurrentStep is always within [StepSchedule, StepConfirm].
const (
	StepSchedule = 1 // choose date and time
	StepDetails  = 2 // reason, contact info, notes
	StepPayment  = 3 // payment method, fee review
	StepConfirm  = 4 // read-only review, triggers submission
)

// MentorSnapshot is the slice of the mentor record the wizard needs:
// the weekly schedule used for slot derivation and the fee captured into
// the submission. Snapshotted at session start so a concurrent schedule
// edit cannot shift the draft under the user.
type MentorSnapshot struct {
	ID       string   `json:"id"`
	FullName string   `json:"fullName"`
	Fee      float64  `json:"fee"`
	Schedule Schedule `json:"schedule"`
}

// BookingDraft is the in-progress state of one booking wizard session.
// It is owned exclusively by that session for its lifetime and persisted
// between requests; nothing here is shared across users.
type BookingDraft struct {
	SessionID string         `json:"sessionId"`
	UserID    string         `json:"userId"`
	Mentor    MentorSnapshot `json:"mentor"`

	CurrentStep int `json:"currentStep"`

	SelectedDate string   `json:"selectedDate,omitempty"` // YYYY-MM-DD
	SelectedTime string   `json:"selectedTime,omitempty"` // HH:MM, member of Slots
	Slots        []string `json:"slots,omitempty"`        // offerable slots for SelectedDate

	Reason       string `json:"reason,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
	Notes        string `json:"notes,omitempty"`

	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`

	// IdempotencyKey is generated once per session; every submission
	// retry carries the same key so at most one appointment is created.
	IdempotencyKey string `json:"idempotencyKey"`

	// Submitting blocks re-entrant submission while a creation request
	// is in flight.
	Submitting bool `json:"submitting"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
