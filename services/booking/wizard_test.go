package booking

import (
	"testing"
	"time"

	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekdaySchedule() models.Schedule {
	return models.Schedule{
		DaysOfWeek: []models.Weekday{
			models.Monday, models.Tuesday, models.Wednesday, models.Thursday, models.Friday,
		},
		StartTime: "09:00",
		EndTime:   "12:00",
	}
}

func testDraft(t *testing.T) *models.BookingDraft {
	t.Helper()
	snapshot := models.MentorSnapshot{
		ID:       "mentor-1",
		FullName: "Dana Mentor",
		Fee:      50,
		Schedule: weekdaySchedule(),
	}
	return NewDraft("session-1", "user-1", "key-1", snapshot)
}

// nextWorkingDate returns an upcoming weekday date in wire format.
func nextWorkingDate(t *testing.T) string {
	t.Helper()
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func requireValidation(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
}

func TestNewDraft(t *testing.T) {
	draft := testDraft(t)

	assert.Equal(t, models.StepSchedule, draft.CurrentStep)
	assert.Equal(t, models.PaymentCash, draft.PaymentMethod, "cash is the default method")
	assert.Equal(t, "key-1", draft.IdempotencyKey)
	assert.Empty(t, draft.SelectedDate)
	assert.Empty(t, draft.Slots)
}

func TestWizard_SelectDate(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}

	date := nextWorkingDate(t)
	require.NoError(t, w.SelectDate(date))
	assert.Equal(t, date, w.Draft.SelectedDate)
	assert.Equal(t, GenerateTimeSlots("09:00", "12:00"), w.Draft.Slots)

	// Picking a time and then a new date must drop the stale time.
	require.NoError(t, w.SelectTime(w.Draft.Slots[0]))
	require.NoError(t, w.SelectDate(date))
	assert.Empty(t, w.Draft.SelectedTime, "changing the date clears the selected time")
}

func TestWizard_SelectDate_Invalid(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}
	requireValidation(t, w.SelectDate("tomorrow"), "date")
	requireValidation(t, w.SelectDate("07-09-2026"), "date")
}

func TestWizard_SelectTime_RejectsNonSlot(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}
	require.NoError(t, w.SelectDate(nextWorkingDate(t)))

	requireValidation(t, w.SelectTime("09:15"), "time")
	requireValidation(t, w.SelectTime("14:00"), "time")
	assert.Empty(t, w.Draft.SelectedTime)

	require.NoError(t, w.SelectTime("10:30"))
	assert.Equal(t, "10:30", w.Draft.SelectedTime)
}

func TestWizard_ScheduleValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(d *models.BookingDraft)
		wantField string
	}{
		{
			name:      "missing date",
			mutate:    func(d *models.BookingDraft) {},
			wantField: "date",
		},
		{
			name: "missing time",
			mutate: func(d *models.BookingDraft) {
				d.SelectedDate = "2030-01-07" // a Monday
			},
			wantField: "time",
		},
		{
			name: "past date",
			mutate: func(d *models.BookingDraft) {
				d.SelectedDate = "2020-01-06" // a Monday, long gone
				d.SelectedTime = "09:00"
			},
			wantField: "date",
		},
		{
			name: "non working day",
			mutate: func(d *models.BookingDraft) {
				d.SelectedDate = "2030-01-06" // a Sunday
				d.SelectedTime = "09:00"
			},
			wantField: "date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Wizard{Draft: testDraft(t)}
			tt.mutate(w.Draft)
			requireValidation(t, w.Advance(), tt.wantField)
			assert.Equal(t, models.StepSchedule, w.Draft.CurrentStep, "failed validation must not advance")
		})
	}
}

func TestWizard_DetailsValidation(t *testing.T) {
	tests := []struct {
		name      string
		details   DetailsInput
		wantField string // empty means valid
	}{
		{
			name:    "minimal valid details",
			details: DetailsInput{Reason: "Career advice"},
		},
		{
			name:      "reason too short",
			details:   DetailsInput{Reason: "Hi"},
			wantField: "reason",
		},
		{
			name:      "reason whitespace padded",
			details:   DetailsInput{Reason: "  ab  "},
			wantField: "reason",
		},
		{
			name:      "email without at sign",
			details:   DetailsInput{Reason: "Career advice", ContactEmail: "not-an-email"},
			wantField: "contactEmail",
		},
		{
			name:    "email with at sign",
			details: DetailsInput{Reason: "Career advice", ContactEmail: "me@example.com"},
		},
		{
			name:    "phone with separators",
			details: DetailsInput{Reason: "Career advice", ContactPhone: "090-123-4567"},
		},
		{
			name:      "phone too short",
			details:   DetailsInput{Reason: "Career advice", ContactPhone: "12345"},
			wantField: "contactPhone",
		},
		{
			name:      "phone too long",
			details:   DetailsInput{Reason: "Career advice", ContactPhone: "090123456789"},
			wantField: "contactPhone",
		},
		{
			name:    "optional contact fields empty",
			details: DetailsInput{Reason: "Career advice", ContactPhone: "", ContactEmail: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Wizard{Draft: testDraft(t)}
			w.Draft.CurrentStep = models.StepDetails
			w.SetDetails(tt.details)

			err := w.Advance()
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, models.StepPayment, w.Draft.CurrentStep)
			} else {
				requireValidation(t, err, tt.wantField)
				assert.Equal(t, models.StepDetails, w.Draft.CurrentStep)
			}
		})
	}
}

func TestWizard_AdvanceCapsAtConfirm(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}
	w.Draft.CurrentStep = models.StepConfirm

	require.NoError(t, w.Advance())
	assert.Equal(t, models.StepConfirm, w.Draft.CurrentStep)
}

func TestWizard_RetreatFloorsAtScheduleAndPreservesData(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}
	require.NoError(t, w.SelectDate(nextWorkingDate(t)))
	require.NoError(t, w.SelectTime(w.Draft.Slots[0]))
	require.NoError(t, w.Advance())
	w.SetDetails(DetailsInput{Reason: "Mock interview prep", ContactPhone: "0901234567"})
	require.NoError(t, w.Advance())
	require.NoError(t, w.SetPaymentMethod(models.PaymentOnline))

	w.Retreat()
	w.Retreat()
	assert.Equal(t, models.StepSchedule, w.Draft.CurrentStep)
	w.Retreat()
	assert.Equal(t, models.StepSchedule, w.Draft.CurrentStep, "retreat floors at the first step")

	assert.Equal(t, "Mock interview prep", w.Draft.Reason)
	assert.Equal(t, "0901234567", w.Draft.ContactPhone)
	assert.Equal(t, models.PaymentOnline, w.Draft.PaymentMethod)
	assert.NotEmpty(t, w.Draft.SelectedTime)
}

func TestWizard_RoundTripAdvanceAfterRetreat(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}
	require.NoError(t, w.SelectDate(nextWorkingDate(t)))
	require.NoError(t, w.SelectTime(w.Draft.Slots[1]))
	require.NoError(t, w.Advance())
	w.SetDetails(DetailsInput{Reason: "Portfolio review"})
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	require.Equal(t, models.StepConfirm, w.Draft.CurrentStep)

	for w.Draft.CurrentStep > models.StepSchedule {
		w.Retreat()
	}
	// Everything still filled in, so advancing straight back to review
	// must succeed without re-entering anything.
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	require.NoError(t, w.Advance())
	assert.Equal(t, models.StepConfirm, w.Draft.CurrentStep)
}

func TestWizard_JumpTo(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}

	// Only the review step offers direct navigation.
	requireValidation(t, w.JumpTo(models.StepDetails), "step")

	require.NoError(t, w.SelectDate(nextWorkingDate(t)))
	require.NoError(t, w.SelectTime(w.Draft.Slots[0]))
	require.NoError(t, w.Advance())
	w.SetDetails(DetailsInput{Reason: "System design coaching"})
	require.NoError(t, w.Advance())
	require.NoError(t, w.SetPaymentMethod(models.PaymentOnline))
	require.NoError(t, w.Advance())
	require.Equal(t, models.StepConfirm, w.Draft.CurrentStep)

	requireValidation(t, w.JumpTo(models.StepConfirm), "step")
	requireValidation(t, w.JumpTo(0), "step")

	require.NoError(t, w.JumpTo(models.StepDetails))
	assert.Equal(t, models.StepDetails, w.Draft.CurrentStep)
	assert.Equal(t, models.PaymentOnline, w.Draft.PaymentMethod, "jumping back preserves later-step data")
	assert.Equal(t, "System design coaching", w.Draft.Reason)
}

func TestWizard_SetPaymentMethod(t *testing.T) {
	w := &Wizard{Draft: testDraft(t)}

	require.NoError(t, w.SetPaymentMethod(models.PaymentCash))
	require.NoError(t, w.SetPaymentMethod(models.PaymentOnline))
	requireValidation(t, w.SetPaymentMethod("CARD"), "paymentMethod")
	assert.Equal(t, models.PaymentOnline, w.Draft.PaymentMethod, "rejected method leaves the previous choice")
}
