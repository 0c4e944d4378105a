package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	appointmentRepo "mentorhub/database/repository/appointment"
	mentorRepo "mentorhub/database/repository/mentor"
	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// --- in-memory fakes ---

type memSessionStore struct {
	drafts map[string]models.BookingDraft
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *memSessionStore) Save(_ context.Context, draft *models.BookingDraft) error {
	s.drafts[draft.SessionID] = *draft
	return nil
}

func (s *memSessionStore) Get(_ context.Context, sessionID string) (*models.BookingDraft, error) {
	d, ok := s.drafts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := d
	return &cp, nil
}

func (s *memSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(s.drafts, sessionID)
	return nil
}

type fakeMentorRepo struct {
	mentors map[string]*models.Mentor
}

func (r *fakeMentorRepo) Create(m *models.Mentor) error                   { r.mentors[m.ID] = m; return nil }
func (r *fakeMentorRepo) Update(m *models.Mentor) error                   { r.mentors[m.ID] = m; return nil }
func (r *fakeMentorRepo) UpdateSetDocument(string, bson.M) error          { return nil }
func (r *fakeMentorRepo) Delete(id string) error                          { delete(r.mentors, id); return nil }
func (r *fakeMentorRepo) GetByID(id string) (*models.Mentor, error)       { return r.mentors[id], nil }
func (r *fakeMentorRepo) GetByUserID(string) (*models.Mentor, error)      { return nil, nil }
func (r *fakeMentorRepo) Search(mentorRepo.SearchQuery) ([]models.Mentor, error) {
	return nil, nil
}
func (r *fakeMentorRepo) SetRating(string, float64, int) error { return nil }

type fakeMemberRepo struct {
	members map[string]*models.Member // keyed by user ID
}

func (r *fakeMemberRepo) Create(m *models.Member) error { r.members[m.UserID] = m; return nil }
func (r *fakeMemberRepo) GetByID(id string) (*models.Member, error) {
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}
func (r *fakeMemberRepo) GetByUserID(userID string) (*models.Member, error) {
	return r.members[userID], nil
}
func (r *fakeMemberRepo) GetAll() ([]models.Member, error) { return nil, nil }
func (r *fakeMemberRepo) Delete(string) error              { return nil }

type fakeUserRepo struct {
	users         map[string]*models.User
	notifications map[string][]models.Notification
}

func (r *fakeUserRepo) Create(u *models.User) error              { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *models.User) error              { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdateSetDocument(string, bson.M) error   { return nil }
func (r *fakeUserRepo) Delete(id string) error                   { delete(r.users, id); return nil }
func (r *fakeUserRepo) GetByID(id string) (*models.User, error)  { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(string) (*models.User, error)  { return nil, nil }
func (r *fakeUserRepo) GetByTokenHash(string) (*models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) GetAll() ([]models.User, error) { return nil, nil }
func (r *fakeUserRepo) SetTokenHash(string, string) error {
	return nil
}
func (r *fakeUserRepo) SetRole(id string, role models.Role) error {
	if u, ok := r.users[id]; ok {
		u.Role = role
	}
	return nil
}
func (r *fakeUserRepo) PushNotification(id string, n models.Notification) error {
	r.notifications[id] = append(r.notifications[id], n)
	return nil
}

type fakeApptRepo struct {
	appts       []*models.Appointment
	createCalls int
	// lookupMisses makes GetByIdempotencyKey miss that many times, which
	// simulates losing the insert race right after a missed lookup.
	lookupMisses int
}

func (r *fakeApptRepo) Create(a *models.Appointment) error {
	r.createCalls++
	for _, existing := range r.appts {
		if existing.IdempotencyKey == a.IdempotencyKey {
			return appointmentRepo.ErrDuplicateKey
		}
	}
	r.appts = append(r.appts, a)
	return nil
}
func (r *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	for _, a := range r.appts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeApptRepo) GetByIdempotencyKey(key string) (*models.Appointment, error) {
	if r.lookupMisses > 0 {
		r.lookupMisses--
		return nil, nil
	}
	for _, a := range r.appts {
		if a.IdempotencyKey == key {
			return a, nil
		}
	}
	return nil, nil
}
func (r *fakeApptRepo) GetByMentor(string) ([]models.Appointment, error) { return nil, nil }
func (r *fakeApptRepo) GetByMember(string) ([]models.Appointment, error) { return nil, nil }
func (r *fakeApptRepo) GetAll() ([]models.Appointment, error)            { return nil, nil }
func (r *fakeApptRepo) TakenTimes(mentorID, date string) ([]string, error) {
	var taken []string
	for _, a := range r.appts {
		if a.MentorID == mentorID && a.Date == date && a.Status != models.AppointmentCancelled {
			taken = append(taken, a.Time)
		}
	}
	return taken, nil
}
func (r *fakeApptRepo) ExistsAt(mentorID, date, timeOfDay string) (bool, error) {
	for _, a := range r.appts {
		if a.MentorID == mentorID && a.Date == date && a.Time == timeOfDay && a.Status != models.AppointmentCancelled {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeApptRepo) UpdateStatus(id string, status models.AppointmentStatus) error {
	for _, a := range r.appts {
		if a.ID == id {
			a.Status = status
		}
	}
	return nil
}
func (r *fakeApptRepo) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	for _, a := range r.appts {
		if a.ID == id {
			a.PaymentStatus = status
		}
	}
	return nil
}

type fakeGateway struct {
	url   string
	err   error
	calls int
}

func (g *fakeGateway) CreateCheckout(context.Context, *models.Appointment) (string, error) {
	g.calls++
	return g.url, g.err
}

type fakeReminder struct {
	payloads []models.ReminderPayload
}

func (f *fakeReminder) ScheduleAppointmentReminder(p models.ReminderPayload, _ time.Time) error {
	f.payloads = append(f.payloads, p)
	return nil
}

// --- fixtures ---

type bookingFixture struct {
	svc      *DefaultBookingService
	sessions *memSessionStore
	appts    *fakeApptRepo
	users    *fakeUserRepo
	members  *fakeMemberRepo
	gateway  *fakeGateway
	reminder *fakeReminder
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	mentors := &fakeMentorRepo{mentors: map[string]*models.Mentor{
		"mentor-1": {
			ID:       "mentor-1",
			UserID:   "mentor-user-1",
			FullName: "Dana Mentor",
			Fee:      50,
			Schedule: weekdaySchedule(),
		},
	}}
	users := &fakeUserRepo{
		users: map[string]*models.User{
			"user-1": {ID: "user-1", FirstName: "Alex", LastName: "Doe", Email: "alex@example.com", Role: models.RoleUser},
		},
		notifications: make(map[string][]models.Notification),
	}
	f := &bookingFixture{
		sessions: newMemSessionStore(),
		appts:    &fakeApptRepo{},
		users:    users,
		members:  &fakeMemberRepo{members: make(map[string]*models.Member)},
		gateway:  &fakeGateway{},
		reminder: &fakeReminder{},
	}
	f.svc = &DefaultBookingService{
		MentorRepo: mentors,
		MemberRepo: f.members,
		UserRepo:   f.users,
		ApptRepo:   f.appts,
		Sessions:   f.sessions,
		Gateway:    f.gateway,
		Reminders:  f.reminder,
		Logger:     zap.NewNop(),
	}
	return f
}

// readyDraft stores a fully filled draft parked on the review step.
func (f *bookingFixture) readyDraft(t *testing.T, method models.PaymentMethod) *models.BookingDraft {
	t.Helper()
	draft := testDraft(t)
	w := &Wizard{Draft: draft}
	require.NoError(t, w.SelectDate(nextWorkingDate(t)))
	require.NoError(t, w.SelectTime(draft.Slots[0]))
	w.SetDetails(DetailsInput{Reason: "Resume review", ContactPhone: "0901234567"})
	require.NoError(t, w.SetPaymentMethod(method))
	draft.CurrentStep = models.StepConfirm
	require.NoError(t, f.sessions.Save(context.Background(), draft))
	return draft
}

// --- tests ---

func TestSubmit_CashBooking(t *testing.T) {
	f := newBookingFixture(t)
	draft := f.readyDraft(t, models.PaymentCash)
	ctx := context.Background()

	result, err := f.svc.Submit(ctx, draft.SessionID, "user-1")
	require.NoError(t, err)
	require.NotNil(t, result.Appointment)

	appt := result.Appointment
	assert.Equal(t, models.AppointmentPending, appt.Status)
	assert.Equal(t, models.PaymentStatusPending, appt.PaymentStatus)
	assert.Equal(t, draft.SelectedDate, appt.Date)
	assert.Equal(t, draft.SelectedTime, appt.Time)
	assert.Equal(t, draft.IdempotencyKey, appt.IdempotencyKey)
	assert.Empty(t, result.PaymentURL, "cash bookings need no redirect")
	assert.Equal(t, 0, f.gateway.calls)

	// First booking promotes the account and creates the member record.
	require.NotNil(t, result.User)
	assert.Equal(t, models.RoleMember, result.User.Role)
	member, _ := f.members.GetByUserID("user-1")
	require.NotNil(t, member)
	assert.Equal(t, member.ID, appt.MemberID)

	// The session is gone and the member was notified.
	_, err = f.sessions.Get(ctx, draft.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NotEmpty(t, f.users.notifications["user-1"])
}

func TestSubmit_SecondBookingDoesNotPromoteAgain(t *testing.T) {
	f := newBookingFixture(t)
	first := f.readyDraft(t, models.PaymentCash)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, first.SessionID, "user-1")
	require.NoError(t, err)

	second := f.readyDraft(t, models.PaymentCash)
	second.SessionID = "session-2"
	second.IdempotencyKey = "key-2"
	w := &Wizard{Draft: second}
	require.NoError(t, w.JumpTo(models.StepSchedule))
	require.NoError(t, w.SelectDate(nextWorkingDate(t)))
	require.NoError(t, w.SelectTime(second.Slots[1]))
	second.CurrentStep = models.StepConfirm
	require.NoError(t, f.sessions.Save(ctx, second))

	result, err := f.svc.Submit(ctx, "session-2", "user-1")
	require.NoError(t, err)
	assert.Nil(t, result.User, "no promotion on later bookings")
	assert.Len(t, f.appts.appts, 2)
}

func TestSubmit_BlockedWhileInFlight(t *testing.T) {
	f := newBookingFixture(t)
	draft := f.readyDraft(t, models.PaymentCash)
	ctx := context.Background()

	draft.Submitting = true
	require.NoError(t, f.sessions.Save(ctx, draft))

	_, err := f.svc.Submit(ctx, draft.SessionID, "user-1")
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
	assert.Equal(t, 0, f.appts.createCalls, "no appointment while a submission is in flight")
}

func TestSubmit_RequiresConfirmStep(t *testing.T) {
	f := newBookingFixture(t)
	draft := f.readyDraft(t, models.PaymentCash)
	ctx := context.Background()

	draft.CurrentStep = models.StepPayment
	require.NoError(t, f.sessions.Save(ctx, draft))

	_, err := f.svc.Submit(ctx, draft.SessionID, "user-1")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "step", ve.Field)
}

func TestSubmit_SlotTaken(t *testing.T) {
	f := newBookingFixture(t)
	draft := f.readyDraft(t, models.PaymentCash)
	ctx := context.Background()

	f.appts.appts = append(f.appts.appts, &models.Appointment{
		ID:             "other",
		MentorID:       "mentor-1",
		Date:           draft.SelectedDate,
		Time:           draft.SelectedTime,
		Status:         models.AppointmentPending,
		IdempotencyKey: "someone-else",
	})

	_, err := f.svc.Submit(ctx, draft.SessionID, "user-1")
	assert.ErrorIs(t, err, ErrSlotTaken)

	// The draft survives so the user can pick another slot.
	stored, err := f.sessions.Get(ctx, draft.SessionID)
	require.NoError(t, err)
	assert.False(t, stored.Submitting, "failed submission must release the in-flight flag")
}

func TestSubmit_OnlinePaymentSuccess(t *testing.T) {
	f := newBookingFixture(t)
	f.gateway.url = "https://checkout.example.com/cs_123"
	draft := f.readyDraft(t, models.PaymentOnline)

	result, err := f.svc.Submit(context.Background(), draft.SessionID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.example.com/cs_123", result.PaymentURL)
	assert.Equal(t, 1, f.gateway.calls)
	assert.Equal(t, models.PaymentStatusPending, result.Appointment.PaymentStatus,
		"settlement arrives later via the gateway webhook")
}

func TestSubmit_OnlinePaymentRetryReusesAppointment(t *testing.T) {
	f := newBookingFixture(t)
	f.gateway.err = errors.New("gateway down")
	draft := f.readyDraft(t, models.PaymentOnline)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, draft.SessionID, "user-1")
	assert.ErrorIs(t, err, ErrPaymentInit)
	require.Len(t, f.appts.appts, 1, "the appointment outlives the payment failure")
	firstID := f.appts.appts[0].ID

	// The session survives with the same idempotency key, so the retry
	// lands on the same appointment instead of creating a second one.
	stored, err := f.sessions.Get(ctx, draft.SessionID)
	require.NoError(t, err)
	assert.False(t, stored.Submitting)
	assert.Equal(t, draft.IdempotencyKey, stored.IdempotencyKey)

	f.gateway.err = nil
	f.gateway.url = "https://checkout.example.com/cs_retry"
	result, err := f.svc.Submit(ctx, draft.SessionID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, firstID, result.Appointment.ID)
	assert.Len(t, f.appts.appts, 1, "retry must not create a second appointment")
	assert.Equal(t, "https://checkout.example.com/cs_retry", result.PaymentURL)
}

func TestSubmit_DuplicateKeyRaceReturnsStoredAppointment(t *testing.T) {
	f := newBookingFixture(t)
	draft := f.readyDraft(t, models.PaymentCash)
	ctx := context.Background()

	// The insert hits the unique index even though the pre-insert lookup
	// missed; the stored record must win.
	stored := &models.Appointment{
		ID:             "winner",
		MentorID:       "mentor-1",
		Date:           draft.SelectedDate,
		Time:           "11:30",
		Status:         models.AppointmentPending,
		IdempotencyKey: draft.IdempotencyKey,
	}
	f.appts.appts = append(f.appts.appts, stored)
	f.appts.lookupMisses = 1

	result, err := f.svc.Submit(ctx, draft.SessionID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "winner", result.Appointment.ID)
}

func TestSubmit_ReminderScheduled(t *testing.T) {
	f := newBookingFixture(t)
	draft := f.readyDraft(t, models.PaymentCash)

	_, err := f.svc.Submit(context.Background(), draft.SessionID, "user-1")
	require.NoError(t, err)

	require.Len(t, f.reminder.payloads, 1)
	p := f.reminder.payloads[0]
	assert.Equal(t, "user-1", p.MemberUserID)
	assert.Equal(t, "mentor-1", p.MentorID)
	assert.Equal(t, "Dana Mentor", p.MentorName)
	assert.Equal(t, draft.SelectedDate, p.Date)
	assert.Equal(t, draft.SelectedTime, p.Time)
}

func TestStartSession_SnapshotsMentor(t *testing.T) {
	f := newBookingFixture(t)

	draft, err := f.svc.StartSession(context.Background(), "user-1", "mentor-1")
	require.NoError(t, err)
	assert.Equal(t, "mentor-1", draft.Mentor.ID)
	assert.Equal(t, float64(50), draft.Mentor.Fee)
	assert.Equal(t, models.StepSchedule, draft.CurrentStep)
	assert.NotEmpty(t, draft.IdempotencyKey)

	_, err = f.svc.StartSession(context.Background(), "user-1", "nobody")
	assert.ErrorIs(t, err, ErrMentorNotFound)
}

func TestGetSession_EnforcesOwnership(t *testing.T) {
	f := newBookingFixture(t)
	draft := f.readyDraft(t, models.PaymentCash)

	_, err := f.svc.GetSession(context.Background(), draft.SessionID, "somebody-else")
	assert.ErrorIs(t, err, ErrSessionNotFound, "foreign sessions look nonexistent, not forbidden")
}

func TestAvailableSlots_FiltersTakenTimes(t *testing.T) {
	f := newBookingFixture(t)
	date := nextWorkingDate(t)

	f.appts.appts = append(f.appts.appts,
		&models.Appointment{ID: "a1", MentorID: "mentor-1", Date: date, Time: "09:30", Status: models.AppointmentPending, IdempotencyKey: "k1"},
		&models.Appointment{ID: "a2", MentorID: "mentor-1", Date: date, Time: "10:00", Status: models.AppointmentCancelled, IdempotencyKey: "k2"},
	)

	slots, err := f.svc.AvailableSlots(context.Background(), "mentor-1", date)
	require.NoError(t, err)
	assert.NotContains(t, slots, "09:30", "held slots are not offered")
	assert.Contains(t, slots, "10:00", "cancelled appointments free their slot")
	assert.Contains(t, slots, "09:00")
}
