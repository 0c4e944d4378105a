package booking

import (
	"context"
	"time"

	appointmentRepo "mentorhub/database/repository/appointment"
	memberRepo "mentorhub/database/repository/member"
	mentorRepo "mentorhub/database/repository/mentor"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"

	"go.uber.org/zap"
)

// ReminderScheduler queues an appointment reminder for later delivery.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(p models.ReminderPayload, fireAt time.Time) error
}

// BookingService drives the multi-step appointment-booking wizard: one
// session per user per flow, persisted between requests, submitted at
// most once.
type BookingService interface {
	StartSession(ctx context.Context, userID, mentorID string) (*models.BookingDraft, error)
	GetSession(ctx context.Context, sessionID, userID string) (*models.BookingDraft, error)
	UpdateSession(ctx context.Context, sessionID, userID string, req UpdateRequest) (*models.BookingDraft, error)
	CancelSession(ctx context.Context, sessionID, userID string) error
	Submit(ctx context.Context, sessionID, userID string) (*models.BookingResult, error)

	AvailableSlots(ctx context.Context, mentorID, date string) ([]string, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	MentorRepo mentorRepo.MentorRepository
	MemberRepo memberRepo.MemberRepository
	UserRepo   userRepo.UserRepository
	ApptRepo   appointmentRepo.AppointmentRepository
	Sessions   SessionStore
	Gateway    PaymentGateway
	Reminders  ReminderScheduler // optional; nil disables reminders
	Logger     *zap.Logger
}
