package booking

import (
	"errors"
	"fmt"
)

// ValidationError is a step-scoped, recoverable input error: the wizard
// surfaces it and stays on the current step.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a step validation failure for a field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	// ErrSessionNotFound means the wizard session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrSubmissionInFlight blocks re-entrant submission while a creation
	// request is outstanding.
	ErrSubmissionInFlight = errors.New("submission already in flight")
	// ErrSlotTaken means another booking claimed the slot first.
	ErrSlotTaken = errors.New("this slot has been booked")
	// ErrPaymentInit means the online payment gateway returned no redirect URL.
	ErrPaymentInit = errors.New("payment initialization failed")
	// ErrMentorNotFound means the mentor the session refers to is gone.
	ErrMentorNotFound = errors.New("mentor not found")
)
