package mentorRepo

import (
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SearchQuery narrows mentor listings.
type SearchQuery struct {
	FieldID string
	Name    string // case-insensitive substring of the full name
}

// MentorRepository defines persistence operations for mentors.
type MentorRepository interface {
	Create(mentor *models.Mentor) error
	Update(mentor *models.Mentor) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	GetByID(id string) (*models.Mentor, error)
	GetByUserID(userID string) (*models.Mentor, error)
	Search(q SearchQuery) ([]models.Mentor, error)

	SetRating(id string, rating float64, reviewCount int) error
}
