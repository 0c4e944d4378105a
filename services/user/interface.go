package user

import (
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"

	"go.uber.org/zap"
)

// RegistrationInput carries the signup form.
type RegistrationInput struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
}

// UserService manages accounts and their auth sessions.
type UserService interface {
	Register(in RegistrationInput) (*models.User, string, error)
	Authenticate(email, password string) (*models.User, string, error)
	RevokeToken(userID string) error

	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
	GetAll() ([]models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}
