package mentor

import (
	"time"

	mentorRepo "mentorhub/database/repository/mentor"
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetByID returns a mentor profile.
func (s *DefaultMentorService) GetByID(id string) (*models.Mentor, error) {
	m, err := s.MentorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMentorNotFound
	}
	return m, nil
}

// GetByUserID returns the mentor record owned by a user account, or nil
// when the account has none.
func (s *DefaultMentorService) GetByUserID(userID string) (*models.Mentor, error) {
	return s.MentorRepo.GetByUserID(userID)
}

// Search lists mentors matching the query filters.
func (s *DefaultMentorService) Search(q mentorRepo.SearchQuery) ([]models.Mentor, error) {
	return s.MentorRepo.Search(q)
}

// UpdateSchedule replaces the weekly availability pattern. Existing
// appointments are untouched; only future bookings see the new window.
func (s *DefaultMentorService) UpdateSchedule(mentorID string, upd ScheduleUpdate) (*models.Mentor, error) {
	m, err := s.MentorRepo.GetByID(mentorID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMentorNotFound
	}

	sched, err := buildSchedule(upd.DaysOfWeek, upd.StartTime, upd.EndTime)
	if err != nil {
		return nil, err
	}

	if err := s.MentorRepo.UpdateSetDocument(mentorID, bson.M{
		"schedule":   sched,
		"updated_at": time.Now(),
	}); err != nil {
		return nil, err
	}
	m.Schedule = sched
	s.Logger.Info("mentor schedule updated", zap.String("mentorID", mentorID))
	return m, nil
}

// Delete removes a mentor profile (admin surface).
func (s *DefaultMentorService) Delete(id string) error {
	return s.MentorRepo.Delete(id)
}
