package field

import (
	"errors"
	"strings"
	"time"

	fieldRepo "mentorhub/database/repository/field"
	"mentorhub/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrFieldNotFound means no field matches the identifier.
var ErrFieldNotFound = errors.New("field not found")

// ErrEmptyName rejects a field without a name.
var ErrEmptyName = errors.New("field name is required")

// FieldService manages the catalogue of mentoring specialties.
type FieldService interface {
	Create(name, description string) (*models.Field, error)
	Update(field *models.Field) error
	Delete(id string) error
	GetByID(id string) (*models.Field, error)
	GetAll() ([]models.Field, error)
}

// DefaultFieldService implements FieldService.
type DefaultFieldService struct {
	Repo   fieldRepo.FieldRepository
	Logger *zap.Logger
}

// Create adds a new mentoring field (admin surface).
func (s *DefaultFieldService) Create(name, description string) (*models.Field, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now()
	f := &models.Field{
		ID:          uuid.New().String(),
		Name:        name,
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(f); err != nil {
		return nil, err
	}
	s.Logger.Info("field created", zap.String("fieldID", f.ID), zap.String("name", f.Name))
	return f, nil
}

// Update renames or re-describes a field.
func (s *DefaultFieldService) Update(field *models.Field) error {
	if strings.TrimSpace(field.Name) == "" {
		return ErrEmptyName
	}
	current, err := s.Repo.GetByID(field.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrFieldNotFound
	}
	field.CreatedAt = current.CreatedAt
	field.UpdatedAt = time.Now()
	return s.Repo.Update(field)
}

// Delete removes a field from the catalogue.
func (s *DefaultFieldService) Delete(id string) error {
	return s.Repo.Delete(id)
}

// GetByID returns a single field.
func (s *DefaultFieldService) GetByID(id string) (*models.Field, error) {
	f, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFieldNotFound
	}
	return f, nil
}

// GetAll lists every mentoring field.
func (s *DefaultFieldService) GetAll() ([]models.Field, error) {
	return s.Repo.GetAll()
}
