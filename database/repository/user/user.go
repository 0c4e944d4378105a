package userRepo

import (
	"mentorhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines persistence operations for platform accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	UpdateSetDocument(id string, updateDoc bson.M) error
	Delete(id string) error

	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByTokenHash(hash string) (*models.User, error)
	GetAll() ([]models.User, error)

	SetTokenHash(id, hash string) error
	SetRole(id string, role models.Role) error
	PushNotification(id string, n models.Notification) error
}
