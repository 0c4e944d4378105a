package appointment

import (
	"errors"
	"fmt"
	"time"

	appointmentRepo "mentorhub/database/repository/appointment"
	memberRepo "mentorhub/database/repository/member"
	mentorRepo "mentorhub/database/repository/mentor"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrAppointmentNotFound means no appointment matches the identifier.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrForbiddenTransition rejects a status change the lifecycle does
	// not allow (terminal states never move, PENDING cannot complete).
	ErrForbiddenTransition = errors.New("appointment cannot move to that status")

	// ErrNotYours rejects access to someone else's appointment.
	ErrNotYours = errors.New("appointment does not belong to you")
)

// AppointmentService serves booked consultations after the wizard is done:
// per-role listings, lifecycle transitions and payment settlement.
type AppointmentService interface {
	GetByID(id string) (*models.Appointment, error)
	ListForMemberUser(userID string) ([]models.Appointment, error)
	ListForMentorUser(userID string) ([]models.Appointment, error)
	ListAll() ([]models.Appointment, error)

	// Transition moves an appointment along its lifecycle on behalf of
	// the mentor who owns it (admins pass an empty actingUserID).
	Transition(id string, next models.AppointmentStatus, actingUserID string) (*models.Appointment, error)

	// CancelByMember lets the booking member cancel a not-yet-completed
	// appointment.
	CancelByMember(id, userID string) (*models.Appointment, error)

	// SettlePayment records the gateway's verdict for an online payment.
	SettlePayment(id string, status models.PaymentStatus) error
}

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	ApptRepo   appointmentRepo.AppointmentRepository
	MemberRepo memberRepo.MemberRepository
	MentorRepo mentorRepo.MentorRepository
	UserRepo   userRepo.UserRepository
	Logger     *zap.Logger
}

// GetByID returns a single appointment.
func (s *DefaultAppointmentService) GetByID(id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	return appt, nil
}

// ListForMemberUser lists the appointments booked by the user's member
// record. Accounts that never booked get an empty list.
func (s *DefaultAppointmentService) ListForMemberUser(userID string) ([]models.Appointment, error) {
	member, err := s.MemberRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return []models.Appointment{}, nil
	}
	return s.ApptRepo.GetByMember(member.ID)
}

// ListForMentorUser lists the appointments held with the user's mentor
// record.
func (s *DefaultAppointmentService) ListForMentorUser(userID string) ([]models.Appointment, error) {
	mentor, err := s.MentorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return []models.Appointment{}, nil
	}
	return s.ApptRepo.GetByMentor(mentor.ID)
}

// ListAll lists every appointment (admin surface).
func (s *DefaultAppointmentService) ListAll() ([]models.Appointment, error) {
	return s.ApptRepo.GetAll()
}

// Transition applies a lifecycle change. When actingUserID is set the
// appointment must belong to that user's mentor record.
func (s *DefaultAppointmentService) Transition(id string, next models.AppointmentStatus, actingUserID string) (*models.Appointment, error) {
	appt, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if actingUserID != "" {
		mentor, err := s.MentorRepo.GetByUserID(actingUserID)
		if err != nil {
			return nil, err
		}
		if mentor == nil || mentor.ID != appt.MentorID {
			return nil, ErrNotYours
		}
	}

	if !appt.Status.CanTransitionTo(next) {
		return nil, ErrForbiddenTransition
	}
	if err := s.ApptRepo.UpdateStatus(id, next); err != nil {
		return nil, err
	}
	appt.Status = next

	s.notifyMemberOfStatus(appt)
	s.Logger.Info("appointment status changed",
		zap.String("appointmentID", id), zap.String("status", string(next)))
	return appt, nil
}

// CancelByMember cancels the member's own appointment.
func (s *DefaultAppointmentService) CancelByMember(id, userID string) (*models.Appointment, error) {
	appt, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	member, err := s.MemberRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if member == nil || member.ID != appt.MemberID {
		return nil, ErrNotYours
	}
	if !appt.Status.CanTransitionTo(models.AppointmentCancelled) {
		return nil, ErrForbiddenTransition
	}
	if err := s.ApptRepo.UpdateStatus(id, models.AppointmentCancelled); err != nil {
		return nil, err
	}
	appt.Status = models.AppointmentCancelled
	s.Logger.Info("appointment cancelled by member", zap.String("appointmentID", id))
	return appt, nil
}

// SettlePayment records the payment outcome reported by the gateway.
func (s *DefaultAppointmentService) SettlePayment(id string, status models.PaymentStatus) error {
	appt, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.ApptRepo.UpdatePaymentStatus(id, status); err != nil {
		return err
	}
	appt.PaymentStatus = status
	s.notifyMemberOfPayment(appt)
	s.Logger.Info("payment settled",
		zap.String("appointmentID", id), zap.String("paymentStatus", string(status)))
	return nil
}

func (s *DefaultAppointmentService) notifyMemberOfStatus(appt *models.Appointment) {
	member, err := s.MemberRepo.GetByID(appt.MemberID)
	if err != nil || member == nil {
		return
	}
	n := models.Notification{
		ID:      uuid.New().String(),
		Type:    "appointment_status",
		Message: fmt.Sprintf("Your consultation on %s at %s is now %s.", appt.Date, appt.Time, appt.Status),
		Data: map[string]any{
			"appointmentId": appt.ID,
			"status":        string(appt.Status),
		},
		CreatedAt: time.Now(),
	}
	if err := s.UserRepo.PushNotification(member.UserID, n); err != nil {
		s.Logger.Warn("failed to push status notification",
			zap.String("userID", member.UserID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) notifyMemberOfPayment(appt *models.Appointment) {
	member, err := s.MemberRepo.GetByID(appt.MemberID)
	if err != nil || member == nil {
		return
	}
	msg := fmt.Sprintf("Payment for your consultation on %s at %s was received.", appt.Date, appt.Time)
	if appt.PaymentStatus == models.PaymentStatusFailed {
		msg = fmt.Sprintf("Payment for your consultation on %s at %s failed. Please try again.", appt.Date, appt.Time)
	}
	n := models.Notification{
		ID:      uuid.New().String(),
		Type:    "payment_status",
		Message: msg,
		Data: map[string]any{
			"appointmentId": appt.ID,
			"paymentStatus": string(appt.PaymentStatus),
		},
		CreatedAt: time.Now(),
	}
	if err := s.UserRepo.PushNotification(member.UserID, n); err != nil {
		s.Logger.Warn("failed to push payment notification",
			zap.String("userID", member.UserID), zap.Error(err))
	}
}
