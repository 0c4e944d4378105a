package applicationRepo

import "mentorhub/models"

// ApplicationRepository defines persistence operations for mentor applications.
type ApplicationRepository interface {
	Create(app *models.MentorApplication) error
	GetByID(id string) (*models.MentorApplication, error)
	GetByUserID(userID string) ([]models.MentorApplication, error)
	GetAll(status models.ApplicationStatus) ([]models.MentorApplication, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}
