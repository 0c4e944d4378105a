package memberRepo

import "mentorhub/models"

// MemberRepository defines persistence operations for members.
type MemberRepository interface {
	Create(member *models.Member) error
	GetByID(id string) (*models.Member, error)
	GetByUserID(userID string) (*models.Member, error)
	GetAll() ([]models.Member, error)
	Delete(id string) error
}
