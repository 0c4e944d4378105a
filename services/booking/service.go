package booking

import (
	"context"
	"fmt"
	"time"

	"mentorhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession fetches the mentor, snapshots the schedule and fee into a
// fresh draft and persists it under a new session ID.
func (s *DefaultBookingService) StartSession(ctx context.Context, userID, mentorID string) (*models.BookingDraft, error) {
	mentor, err := s.MentorRepo.GetByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	snapshot := models.MentorSnapshot{
		ID:       mentor.ID,
		FullName: mentor.FullName,
		Fee:      mentor.Fee,
		Schedule: mentor.Schedule,
	}
	draft := NewDraft(uuid.New().String(), userID, uuid.New().String(), snapshot)

	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	s.Logger.Info("booking session started",
		zap.String("sessionID", draft.SessionID),
		zap.String("userID", userID),
		zap.String("mentorID", mentorID))
	return draft, nil
}

// GetSession loads a draft and enforces session ownership.
func (s *DefaultBookingService) GetSession(ctx context.Context, sessionID, userID string) (*models.BookingDraft, error) {
	draft, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.UserID != userID {
		return nil, ErrSessionNotFound
	}
	return draft, nil
}

// Wizard update actions.
const (
	ActionSelectDate    = "select-date"
	ActionSelectTime    = "select-time"
	ActionSetDetails    = "details"
	ActionSetPayment    = "payment-method"
	ActionAdvance       = "advance"
	ActionRetreat       = "retreat"
	ActionJumpTo        = "jump"
	ActionClearProgress = "reset"
)

// UpdateRequest is one wizard interaction: a single user action applied
// to the draft, validated, and re-persisted.
type UpdateRequest struct {
	Action        string               `json:"action"`
	Date          string               `json:"date,omitempty"`
	Time          string               `json:"time,omitempty"`
	Details       *DetailsInput        `json:"details,omitempty"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod,omitempty"`
	Step          int                  `json:"step,omitempty"`
}

// UpdateSession applies one wizard action to the stored draft. Validation
// failures leave the draft unchanged in the store.
func (s *DefaultBookingService) UpdateSession(ctx context.Context, sessionID, userID string, req UpdateRequest) (*models.BookingDraft, error) {
	draft, err := s.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if draft.Submitting {
		return nil, ErrSubmissionInFlight
	}

	w := &Wizard{Draft: draft}
	switch req.Action {
	case ActionSelectDate:
		err = w.SelectDate(req.Date)
	case ActionSelectTime:
		err = w.SelectTime(req.Time)
	case ActionSetDetails:
		if req.Details == nil {
			err = NewValidationError("details", "missing details payload")
		} else {
			w.SetDetails(*req.Details)
		}
	case ActionSetPayment:
		err = w.SetPaymentMethod(req.PaymentMethod)
	case ActionAdvance:
		err = w.Advance()
	case ActionRetreat:
		w.Retreat()
	case ActionJumpTo:
		err = w.JumpTo(req.Step)
	default:
		err = NewValidationError("action", "unknown wizard action")
	}
	if err != nil {
		return nil, err
	}

	if err := s.Sessions.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// CancelSession discards the draft. Nothing is persisted for abandoned
// wizards.
func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID, userID string) error {
	if _, err := s.GetSession(ctx, sessionID, userID); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, sessionID)
}

// AvailableSlots derives the offerable slot sequence for a mentor on a
// date and removes slots already held by other appointments.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, mentorID, date string) ([]string, error) {
	mentor, err := s.MentorRepo.GetByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor: %w", err)
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, NewValidationError("date", "invalid date format, expected YYYY-MM-DD")
	}

	slots := SlotsFor(parsed, mentor.Schedule)
	if len(slots) == 0 {
		return nil, nil
	}

	taken, err := s.ApptRepo.TakenTimes(mentorID, date)
	if err != nil {
		return nil, err
	}
	if len(taken) == 0 {
		return slots, nil
	}

	takenSet := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		takenSet[t] = struct{}{}
	}
	free := slots[:0]
	for _, slot := range slots {
		if _, held := takenSet[slot]; !held {
			free = append(free, slot)
		}
	}
	return free, nil
}
