package mentor

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"mentorhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// applicationPhotoFolder is the Cloudinary folder for profile photos.
const applicationPhotoFolder = "mentor-applications"

// buildSchedule validates and normalizes a proposed weekly pattern.
func buildSchedule(days []string, startTime, endTime string) (models.Schedule, error) {
	if len(days) == 0 {
		return models.Schedule{}, NewValidationError("daysOfWeek", "select at least one working day")
	}
	seen := make(map[models.Weekday]bool, len(days))
	parsed := make([]models.Weekday, 0, len(days))
	for _, d := range days {
		day, ok := models.ParseWeekday(strings.ToUpper(strings.TrimSpace(d)))
		if !ok {
			return models.Schedule{}, NewValidationError("daysOfWeek", fmt.Sprintf("%q is not a day of the week", d))
		}
		if !seen[day] {
			seen[day] = true
			parsed = append(parsed, day)
		}
	}

	start, okStart := parseClock(startTime)
	end, okEnd := parseClock(endTime)
	if !okStart {
		return models.Schedule{}, NewValidationError("startTime", "start time must be HH:MM")
	}
	if !okEnd {
		return models.Schedule{}, NewValidationError("endTime", "end time must be HH:MM")
	}
	if start >= end {
		return models.Schedule{}, NewValidationError("endTime", "end time must be after start time")
	}

	return models.Schedule{DaysOfWeek: parsed, StartTime: startTime, EndTime: endTime}, nil
}

// parseClock reads "HH:MM" (seconds tolerated) into minutes since
// midnight. ok is false for anything unparsable or out of range.
func parseClock(s string) (int, bool) {
	var h, m, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, false
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// SubmitApplication files a become-a-mentor request for review.
func (s *DefaultMentorService) SubmitApplication(ctx context.Context, userID string, in ApplicationInput, photo io.Reader) (*models.MentorApplication, error) {
	existing, err := s.MentorRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyMentor
	}

	previous, err := s.AppRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	for _, app := range previous {
		if app.Status == models.ApplicationPending {
			return nil, ErrPendingApplication
		}
	}

	field, err := s.FieldRepo.GetByID(in.FieldID)
	if err != nil {
		return nil, err
	}
	if field == nil {
		return nil, NewValidationError("fieldId", "unknown mentoring field")
	}

	sched, err := buildSchedule(in.DaysOfWeek, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}
	if in.Fee <= 0 {
		return nil, NewValidationError("fee", "fee must be greater than zero")
	}

	var imageURL string
	if photo != nil && s.Storage != nil {
		imageURL, err = s.Storage.UploadImage(ctx, photo, applicationPhotoFolder)
		if err != nil {
			return nil, fmt.Errorf("failed to store profile photo: %w", err)
		}
	}

	now := time.Now()
	app := &models.MentorApplication{
		ID:          uuid.New().String(),
		UserID:      userID,
		FieldID:     field.ID,
		Field:       models.FieldSummary{ID: field.ID, Name: field.Name},
		DaysOfWeek:  sched.DaysOfWeek,
		StartTime:   sched.StartTime,
		EndTime:     sched.EndTime,
		Fee:         in.Fee,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    imageURL,
		Status:      models.ApplicationPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.AppRepo.Create(app); err != nil {
		return nil, err
	}
	s.Logger.Info("mentor application submitted",
		zap.String("applicationID", app.ID), zap.String("userID", userID))
	return app, nil
}

// MyApplications lists a user's own applications, newest first.
func (s *DefaultMentorService) MyApplications(userID string) ([]models.MentorApplication, error) {
	return s.AppRepo.GetByUserID(userID)
}

// ListApplications lists applications for moderation, optionally
// filtered by status (empty status lists everything).
func (s *DefaultMentorService) ListApplications(status models.ApplicationStatus) ([]models.MentorApplication, error) {
	return s.AppRepo.GetAll(status)
}

// ApproveApplication creates the mentor record, promotes the applicant
// to the MENTOR role and notifies them.
func (s *DefaultMentorService) ApproveApplication(id string) (*models.Mentor, error) {
	app, err := s.AppRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}
	if app.Status != models.ApplicationPending {
		return nil, ErrApplicationClosed
	}

	usr, err := s.UserRepo.GetByID(app.UserID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, fmt.Errorf("applicant %s not found", app.UserID)
	}

	now := time.Now()
	m := &models.Mentor{
		ID:          uuid.New().String(),
		UserID:      usr.ID,
		FullName:    usr.FullName(),
		Field:       app.Field,
		ImageURL:    app.ImageURL,
		Fee:         app.Fee,
		Description: app.Description,
		Schedule: models.Schedule{
			DaysOfWeek: app.DaysOfWeek,
			StartTime:  app.StartTime,
			EndTime:    app.EndTime,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.MentorRepo.Create(m); err != nil {
		return nil, err
	}
	if err := s.AppRepo.UpdateStatus(app.ID, models.ApplicationApproved); err != nil {
		return nil, err
	}
	if usr.Role != models.RoleAdmin {
		if err := s.UserRepo.SetRole(usr.ID, models.RoleMentor); err != nil {
			return nil, err
		}
	}

	s.notifyApplicant(usr.ID, app.ID, "application_approved",
		"Congratulations! Your mentor application has been approved.")
	s.Logger.Info("mentor application approved",
		zap.String("applicationID", app.ID), zap.String("mentorID", m.ID))
	return m, nil
}

// RejectApplication closes the application without creating a mentor.
func (s *DefaultMentorService) RejectApplication(id string) error {
	app, err := s.AppRepo.GetByID(id)
	if err != nil {
		return err
	}
	if app == nil {
		return ErrApplicationNotFound
	}
	if app.Status != models.ApplicationPending {
		return ErrApplicationClosed
	}
	if err := s.AppRepo.UpdateStatus(app.ID, models.ApplicationRejected); err != nil {
		return err
	}
	s.notifyApplicant(app.UserID, app.ID, "application_rejected",
		"Your mentor application was not approved this time.")
	s.Logger.Info("mentor application rejected", zap.String("applicationID", app.ID))
	return nil
}

func (s *DefaultMentorService) notifyApplicant(userID, applicationID, kind, message string) {
	n := models.Notification{
		ID:        uuid.New().String(),
		Type:      kind,
		Message:   message,
		Data:      map[string]any{"applicationId": applicationID},
		CreatedAt: time.Now(),
	}
	if err := s.UserRepo.PushNotification(userID, n); err != nil {
		s.Logger.Warn("failed to push application notification",
			zap.String("userID", userID), zap.Error(err))
	}
}
