package appointmentRepo

import "mentorhub/models"

// AppointmentRepository defines persistence operations for appointments.
//
// Create relies on a unique index over idempotency_key: a retried
// submission carrying the same key surfaces ErrDuplicateKey instead of
// inserting a second record.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetByIdempotencyKey(key string) (*models.Appointment, error)

	GetByMentor(mentorID string) ([]models.Appointment, error)
	GetByMember(memberID string) ([]models.Appointment, error)
	GetAll() ([]models.Appointment, error)

	// TakenTimes lists the HH:MM start times already held by
	// non-cancelled appointments for a mentor on a date.
	TakenTimes(mentorID, date string) ([]string, error)
	ExistsAt(mentorID, date, timeOfDay string) (bool, error)

	UpdateStatus(id string, status models.AppointmentStatus) error
	UpdatePaymentStatus(id string, status models.PaymentStatus) error
}
