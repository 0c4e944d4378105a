package fieldRepo

import "mentorhub/models"

// FieldRepository defines persistence operations for mentoring fields.
type FieldRepository interface {
	Create(field *models.Field) error
	Update(field *models.Field) error
	Delete(id string) error
	GetByID(id string) (*models.Field, error)
	GetAll() ([]models.Field, error)
}
