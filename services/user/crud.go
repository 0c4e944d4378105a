package user

import "mentorhub/models"

// GetByID returns the account, or nil when absent.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// Update persists profile changes. Role and credentials go through their
// dedicated paths, never through here.
func (s *DefaultUserService) Update(user *models.User) error {
	current, err := s.Repo.GetByID(user.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrUserNotFound
	}
	user.Role = current.Role
	user.PasswordHash = current.PasswordHash
	user.TokenHash = current.TokenHash
	return s.Repo.Update(user)
}

// Delete removes the account.
func (s *DefaultUserService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// GetAll lists every account (admin surface).
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}
