package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mentorhub/models"
	"mentorhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tokenLifetime is how long an issued session token stays valid.
const tokenLifetime = 72 * time.Hour

// ErrInvalidCredentials covers both unknown accounts and wrong passwords,
// so responses never reveal which one it was.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken means the registration email already has an account.
var ErrEmailTaken = errors.New("an account with this email already exists")

// ErrUserNotFound means no account matches the identifier.
var ErrUserNotFound = errors.New("user not found")

// Register creates a USER-role account and signs it in.
func (s *DefaultUserService) Register(in RegistrationInput) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		DateOfBirth:  in.DateOfBirth,
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}
	s.Logger.Info("user registered", zap.String("userID", usr.ID))
	return usr, token, nil
}

// Authenticate verifies credentials and issues a fresh session token,
// replacing any previous one.
func (s *DefaultUserService) Authenticate(email, password string) (*models.User, string, error) {
	usr, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", err
	}
	if usr == nil || !utils.CheckPassword(usr.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}
	s.Logger.Info("user authenticated", zap.String("userID", usr.ID))
	return usr, token, nil
}

// issueToken signs a JWT, stores its hash on the user document and
// primes the auth cache so the next request skips the database.
func (s *DefaultUserService) issueToken(usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, string(usr.Role), tokenLifetime)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	hash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(usr.ID, hash); err != nil {
		return "", err
	}

	cache := utils.GetAuthCacheClient()
	if cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.Set(ctx, utils.AuthCachePrefix+usr.ID, hash, time.Hour).Err(); err != nil {
			s.Logger.Warn("failed to prime auth cache", zap.String("userID", usr.ID), zap.Error(err))
		}
	}
	return token, nil
}

// RevokeToken signs the user out everywhere: the stored hash and the
// cached entry are both cleared.
func (s *DefaultUserService) RevokeToken(userID string) error {
	if err := s.Repo.SetTokenHash(userID, ""); err != nil {
		return err
	}
	cache := utils.GetAuthCacheClient()
	if cache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := cache.Del(ctx, utils.AuthCachePrefix+userID).Err(); err != nil {
			s.Logger.Warn("failed to clear auth cache", zap.String("userID", userID), zap.Error(err))
		}
	}
	return nil
}
