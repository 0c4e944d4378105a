package booking

import (
	"regexp"
	"strings"
	"time"

	"mentorhub/models"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

var nonDigits = regexp.MustCompile(`\D`)

// Wizard advances a booking draft through its four steps. All methods
// mutate the draft in place and return step-scoped validation errors;
// nothing here touches the network, so every failure is recoverable.
type Wizard struct {
	Draft *models.BookingDraft
}

// NewDraft initializes a draft at step 1 for the given user and mentor
// snapshot. The idempotency key is fixed for the session's lifetime so
// every submission retry maps to the same appointment.
func NewDraft(sessionID, userID, idempotencyKey string, mentor models.MentorSnapshot) *models.BookingDraft {
	now := time.Now()
	return &models.BookingDraft{
		SessionID:      sessionID,
		UserID:         userID,
		Mentor:         mentor,
		CurrentStep:    models.StepSchedule,
		PaymentMethod:  models.PaymentCash,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SelectDate sets the draft's date, unconditionally clears the selected
// time (a time is only meaningful against the slot set its date produced)
// and recomputes the offerable slots.
func (w *Wizard) SelectDate(date string) error {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return NewValidationError("date", "invalid date format, expected YYYY-MM-DD")
	}

	w.Draft.SelectedDate = date
	w.Draft.SelectedTime = ""
	w.Draft.Slots = SlotsFor(parsed, w.Draft.Mentor.Schedule)
	w.touch()
	return nil
}

// SelectTime sets the draft's time. Values outside the currently derived
// slot sequence are rejected rather than trusted from the caller.
func (w *Wizard) SelectTime(timeOfDay string) error {
	found := false
	for _, s := range w.Draft.Slots {
		if s == timeOfDay {
			found = true
			break
		}
	}
	if !found {
		return NewValidationError("time", "selected time is not an offered slot")
	}
	w.Draft.SelectedTime = timeOfDay
	w.touch()
	return nil
}

// DetailsInput carries the step-2 fields.
type DetailsInput struct {
	Reason       string `json:"reason"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
	Notes        string `json:"notes"`
}

// SetDetails stores the consultation details. Validation happens on
// Advance so partially filled forms can be saved between requests.
func (w *Wizard) SetDetails(in DetailsInput) {
	w.Draft.Reason = in.Reason
	w.Draft.ContactName = in.ContactName
	w.Draft.ContactPhone = in.ContactPhone
	w.Draft.ContactEmail = in.ContactEmail
	w.Draft.Notes = in.Notes
	w.touch()
}

// SetPaymentMethod stores the step-3 choice.
func (w *Wizard) SetPaymentMethod(m models.PaymentMethod) error {
	if !m.Valid() {
		return NewValidationError("paymentMethod", "please choose a payment method")
	}
	w.Draft.PaymentMethod = m
	w.touch()
	return nil
}

// Advance validates the current step and, on success, moves one step
// forward (capped at the confirm step). On failure the step is unchanged
// and the validation error describes what to fix.
func (w *Wizard) Advance() error {
	if err := w.ValidateStep(w.Draft.CurrentStep); err != nil {
		return err
	}
	if w.Draft.CurrentStep < models.StepConfirm {
		w.Draft.CurrentStep++
		w.touch()
	}
	return nil
}

// Retreat moves one step back. It always succeeds and never discards
// entered data; the floor is step 1.
func (w *Wizard) Retreat() {
	if w.Draft.CurrentStep > models.StepSchedule {
		w.Draft.CurrentStep--
		w.touch()
	}
}

// JumpTo returns directly to an earlier step from the confirm step's
// edit affordances. Data entered in later steps is preserved.
func (w *Wizard) JumpTo(step int) error {
	if w.Draft.CurrentStep != models.StepConfirm {
		return NewValidationError("step", "direct navigation is only allowed from the review step")
	}
	if step < models.StepSchedule || step >= models.StepConfirm {
		return NewValidationError("step", "invalid target step")
	}
	w.Draft.CurrentStep = step
	w.touch()
	return nil
}

// ValidateStep runs the validation predicate for the given step.
func (w *Wizard) ValidateStep(step int) error {
	switch step {
	case models.StepSchedule:
		return w.validateSchedule()
	case models.StepDetails:
		return w.validateDetails()
	case models.StepPayment:
		return w.validatePayment()
	case models.StepConfirm:
		return nil // review only
	}
	return NewValidationError("step", "unknown step")
}

func (w *Wizard) validateSchedule() error {
	d := w.Draft
	if d.SelectedDate == "" {
		return NewValidationError("date", "please choose a consultation date")
	}
	if d.SelectedTime == "" {
		return NewValidationError("time", "please choose a consultation time")
	}

	selected, err := time.Parse(dateLayout, d.SelectedDate)
	if err != nil {
		return NewValidationError("date", "invalid date format, expected YYYY-MM-DD")
	}
	today := time.Now().Format(dateLayout)
	// Date-only comparison; the lexicographic order of YYYY-MM-DD matches
	// chronological order.
	if d.SelectedDate < today {
		return NewValidationError("date", "the consultation date cannot be in the past")
	}
	if !IsDateAvailable(selected, d.Mentor.Schedule) {
		return NewValidationError("date", "the mentor does not work on this day, please choose another date")
	}
	return nil
}

func (w *Wizard) validateDetails() error {
	d := w.Draft
	if len(strings.TrimSpace(d.Reason)) < 5 {
		return NewValidationError("reason", "please describe the consultation reason (at least 5 characters)")
	}
	if d.ContactEmail != "" && !strings.Contains(d.ContactEmail, "@") {
		return NewValidationError("contactEmail", "invalid email address")
	}
	if d.ContactPhone != "" {
		digits := nonDigits.ReplaceAllString(d.ContactPhone, "")
		if len(digits) != 10 {
			return NewValidationError("contactPhone", "invalid phone number, expected 10 digits")
		}
	}
	return nil
}

func (w *Wizard) validatePayment() error {
	if !w.Draft.PaymentMethod.Valid() {
		return NewValidationError("paymentMethod", "please choose a payment method")
	}
	return nil
}

func (w *Wizard) touch() {
	w.Draft.UpdatedAt = time.Now()
}
