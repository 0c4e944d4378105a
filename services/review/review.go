package review

import (
	"errors"
	"fmt"
	"strings"
	"time"

	appointmentRepo "mentorhub/database/repository/appointment"
	memberRepo "mentorhub/database/repository/member"
	mentorRepo "mentorhub/database/repository/mentor"
	reviewRepo "mentorhub/database/repository/review"
	"mentorhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNotAMember means the account never booked anything, so there is
	// nothing to review.
	ErrNotAMember = errors.New("only members with a completed consultation can leave a review")

	// ErrNoCompletedSession means the member has no COMPLETED appointment
	// with this mentor.
	ErrNoCompletedSession = errors.New("you can review a mentor only after a completed consultation")

	// ErrAlreadyReviewed enforces one review per member per mentor.
	ErrAlreadyReviewed = errors.New("you have already reviewed this mentor")

	// ErrInvalidRating rejects ratings outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// ReviewService records mentor reviews and keeps rating aggregates current.
type ReviewService interface {
	AddReview(userID, mentorID string, rating int, comment string) (*models.Review, error)
	ListByMentor(mentorID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	ReviewRepo reviewRepo.ReviewRepository
	MemberRepo memberRepo.MemberRepository
	MentorRepo mentorRepo.MentorRepository
	ApptRepo   appointmentRepo.AppointmentRepository
	Logger     *zap.Logger
}

// AddReview stores a member's rating of a mentor and refreshes the
// mentor's rating aggregate. Only members with a COMPLETED appointment
// with that mentor may review, once each.
func (s *DefaultReviewService) AddReview(userID, mentorID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	member, err := s.MemberRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrNotAMember
	}

	mentor, err := s.MentorRepo.GetByID(mentorID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, fmt.Errorf("mentor %s not found", mentorID)
	}

	appts, err := s.ApptRepo.GetByMember(member.ID)
	if err != nil {
		return nil, err
	}
	completed := false
	for _, a := range appts {
		if a.MentorID == mentorID && a.Status == models.AppointmentCompleted {
			completed = true
			break
		}
	}
	if !completed {
		return nil, ErrNoCompletedSession
	}

	exists, err := s.ReviewRepo.ExistsByMemberAndMentor(member.ID, mentorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	review := &models.Review{
		ID:         uuid.New().String(),
		MentorID:   mentorID,
		MemberID:   member.ID,
		MemberName: strings.TrimSpace(member.FirstName + " " + member.LastName),
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
		CreatedAt:  time.Now(),
	}
	if err := s.ReviewRepo.Create(review); err != nil {
		return nil, err
	}

	if err := s.refreshAggregate(mentorID); err != nil {
		s.Logger.Warn("failed to refresh mentor rating",
			zap.String("mentorID", mentorID), zap.Error(err))
	}
	s.Logger.Info("review added",
		zap.String("mentorID", mentorID), zap.String("memberID", member.ID), zap.Int("rating", rating))
	return review, nil
}

// ListByMentor returns a mentor's reviews, newest first.
func (s *DefaultReviewService) ListByMentor(mentorID string) ([]models.Review, error) {
	return s.ReviewRepo.GetByMentor(mentorID)
}

// refreshAggregate recomputes the mentor's average rating from scratch.
// Review volume per mentor is small enough that a full recount beats
// keeping an incremental counter honest.
func (s *DefaultReviewService) refreshAggregate(mentorID string) error {
	reviews, err := s.ReviewRepo.GetByMentor(mentorID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return s.MentorRepo.SetRating(mentorID, 0, 0)
	}
	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	avg := float64(total) / float64(len(reviews))
	return s.MentorRepo.SetRating(mentorID, avg, len(reviews))
}
