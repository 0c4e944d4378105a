package reviewRepo

import "mentorhub/models"

// ReviewRepository defines persistence operations for mentor reviews.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByMentor(mentorID string) ([]models.Review, error)
	ExistsByMemberAndMentor(memberID, mentorID string) (bool, error)
}
