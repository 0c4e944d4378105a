package mentor

import "errors"

// ValidationError reports a rejected application or profile field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a field-level validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err carries a field-level rejection.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var (
	// ErrMentorNotFound means no mentor record matches the identifier.
	ErrMentorNotFound = errors.New("mentor not found")

	// ErrApplicationNotFound means no application matches the identifier.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrAlreadyMentor blocks applications from accounts that already
	// hold a mentor record.
	ErrAlreadyMentor = errors.New("you are already a mentor")

	// ErrPendingApplication blocks a second application while one is
	// still under review.
	ErrPendingApplication = errors.New("you already have an application under review")

	// ErrApplicationClosed means the application was already moderated.
	ErrApplicationClosed = errors.New("application has already been reviewed")
)
