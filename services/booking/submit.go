package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	appointmentRepo "mentorhub/database/repository/appointment"
	"mentorhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// reminderLead is how long before the consultation the reminder fires.
const reminderLead = time.Hour

// Submit finalizes the wizard: it re-runs the schedule guard, creates
// exactly one appointment under the session's idempotency key, and for
// the ONLINE method opens a payment checkout whose URL the client must
// follow. All failures preserve the draft so Submit can be retried; a
// retry reuses the idempotency key and therefore the same appointment.
func (s *DefaultBookingService) Submit(ctx context.Context, sessionID, userID string) (*models.BookingResult, error) {
	draft, err := s.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if draft.Submitting {
		return nil, ErrSubmissionInFlight
	}
	if draft.CurrentStep != models.StepConfirm {
		return nil, NewValidationError("step", "submission is only allowed from the review step")
	}

	// Final guard: the date may have slipped into the past (or the
	// schedule snapshot may never have allowed it) while the user sat on
	// the review step.
	w := &Wizard{Draft: draft}
	if err := w.ValidateStep(models.StepSchedule); err != nil {
		return nil, err
	}
	if err := w.ValidateStep(models.StepDetails); err != nil {
		return nil, err
	}
	if err := w.ValidateStep(models.StepPayment); err != nil {
		return nil, err
	}

	// Block re-entrant submission before any outbound call.
	draft.Submitting = true
	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	release := func() {
		draft.Submitting = false
		if err := s.Sessions.Save(ctx, draft); err != nil {
			s.Logger.Warn("failed to release booking session", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}

	member, promotedUser, err := s.ensureMember(userID)
	if err != nil {
		release()
		return nil, err
	}

	appt, err := s.createOnce(draft, member.ID)
	if err != nil {
		release()
		return nil, err
	}

	result := &models.BookingResult{Appointment: appt, User: promotedUser}

	if draft.PaymentMethod == models.PaymentOnline {
		url, payErr := s.Gateway.CreateCheckout(ctx, appt)
		if payErr != nil || url == "" {
			// The appointment stays PENDING; retrying reuses the same
			// idempotency key, so no second record is created.
			release()
			if payErr != nil && !errors.Is(payErr, ErrPaymentInit) {
				s.Logger.Error("payment initialization failed",
					zap.String("appointmentID", appt.ID), zap.Error(payErr))
			}
			return nil, ErrPaymentInit
		}
		result.PaymentURL = url
	}

	s.scheduleReminder(userID, draft.Mentor.FullName, appt)
	s.notifyBooked(userID, appt)

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to delete booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("mentorID", appt.MentorID),
		zap.String("memberID", appt.MemberID),
		zap.String("paymentMethod", string(appt.PaymentMethod)))
	return result, nil
}

// ensureMember returns the member record for the user, creating it (and
// promoting the account USER → MEMBER) on first booking. The promoted
// user is returned so the client can refresh its session; nil when no
// promotion happened.
func (s *DefaultBookingService) ensureMember(userID string) (*models.Member, *models.User, error) {
	member, err := s.MemberRepo.GetByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	if member != nil {
		return member, nil, nil
	}

	user, err := s.UserRepo.GetByID(userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, fmt.Errorf("user %s not found", userID)
	}

	member = &models.Member{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Address:     user.Address,
	}
	if err := s.MemberRepo.Create(member); err != nil {
		return nil, nil, err
	}

	if user.Role == models.RoleUser {
		if err := s.UserRepo.SetRole(user.ID, models.RoleMember); err != nil {
			return nil, nil, err
		}
		user.Role = models.RoleMember
		return member, user, nil
	}
	return member, nil, nil
}

// createOnce inserts the appointment, or returns the one a previous
// attempt already created under the same idempotency key.
func (s *DefaultBookingService) createOnce(draft *models.BookingDraft, memberID string) (*models.Appointment, error) {
	if existing, err := s.ApptRepo.GetByIdempotencyKey(draft.IdempotencyKey); err != nil {
		return nil, err
	} else if existing != nil {
		return existing, nil
	}

	held, err := s.ApptRepo.ExistsAt(draft.Mentor.ID, draft.SelectedDate, draft.SelectedTime)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		ID:             uuid.New().String(),
		MentorID:       draft.Mentor.ID,
		MemberID:       memberID,
		Date:           draft.SelectedDate,
		Time:           draft.SelectedTime,
		Reason:         draft.Reason,
		Notes:          draft.Notes,
		ContactName:    draft.ContactName,
		ContactPhone:   draft.ContactPhone,
		ContactEmail:   draft.ContactEmail,
		Status:         models.AppointmentPending,
		PaymentMethod:  draft.PaymentMethod,
		PaymentStatus:  models.PaymentStatusPending,
		Fee:            draft.Mentor.Fee,
		IdempotencyKey: draft.IdempotencyKey,
	}
	if err := s.ApptRepo.Create(appt); err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateKey) {
			// Lost a race against our own retry; the stored record wins.
			existing, getErr := s.ApptRepo.GetByIdempotencyKey(draft.IdempotencyKey)
			if getErr != nil {
				return nil, getErr
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}
	return appt, nil
}

func (s *DefaultBookingService) scheduleReminder(userID, mentorName string, appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	start, err := time.ParseInLocation(dateLayout+" 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		s.Logger.Warn("cannot schedule reminder for unparsable start",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return
	}
	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		MemberUserID:  userID,
		MentorID:      appt.MentorID,
		MentorName:    mentorName,
		Date:          appt.Date,
		Time:          appt.Time,
	}
	if err := s.Reminders.ScheduleAppointmentReminder(payload, fireAt); err != nil {
		s.Logger.Warn("failed to schedule reminder", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func (s *DefaultBookingService) notifyBooked(userID string, appt *models.Appointment) {
	n := models.Notification{
		ID:      uuid.New().String(),
		Type:    "booking_created",
		Message: fmt.Sprintf("Your consultation on %s at %s has been booked.", appt.Date, appt.Time),
		Data: map[string]any{
			"appointmentId": appt.ID,
			"status":        string(appt.Status),
			"paymentStatus": string(appt.PaymentStatus),
		},
		CreatedAt: time.Now(),
	}
	if err := s.UserRepo.PushNotification(userID, n); err != nil {
		s.Logger.Warn("failed to push booking notification", zap.String("userID", userID), zap.Error(err))
	}
}
