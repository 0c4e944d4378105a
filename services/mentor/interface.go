package mentor

import (
	"context"
	"io"

	applicationRepo "mentorhub/database/repository/application"
	fieldRepo "mentorhub/database/repository/field"
	mentorRepo "mentorhub/database/repository/mentor"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
	"mentorhub/services/storage"

	"go.uber.org/zap"
)

// ApplicationInput is the become-a-mentor form.
type ApplicationInput struct {
	FieldID     string   `json:"fieldId" binding:"required"`
	DaysOfWeek  []string `json:"daysOfWeek" binding:"required"`
	StartTime   string   `json:"startTime" binding:"required"`
	EndTime     string   `json:"endTime" binding:"required"`
	Fee         float64  `json:"fee" binding:"required"`
	Description string   `json:"description"`
}

// ScheduleUpdate replaces a mentor's weekly availability pattern.
type ScheduleUpdate struct {
	DaysOfWeek []string `json:"daysOfWeek" binding:"required"`
	StartTime  string   `json:"startTime" binding:"required"`
	EndTime    string   `json:"endTime" binding:"required"`
}

// MentorService manages mentor profiles and the application pipeline.
type MentorService interface {
	GetByID(id string) (*models.Mentor, error)
	GetByUserID(userID string) (*models.Mentor, error)
	Search(q mentorRepo.SearchQuery) ([]models.Mentor, error)
	UpdateSchedule(mentorID string, upd ScheduleUpdate) (*models.Mentor, error)
	Delete(id string) error

	SubmitApplication(ctx context.Context, userID string, in ApplicationInput, photo io.Reader) (*models.MentorApplication, error)
	MyApplications(userID string) ([]models.MentorApplication, error)
	ListApplications(status models.ApplicationStatus) ([]models.MentorApplication, error)
	ApproveApplication(id string) (*models.Mentor, error)
	RejectApplication(id string) error
}

// DefaultMentorService implements MentorService.
type DefaultMentorService struct {
	MentorRepo mentorRepo.MentorRepository
	AppRepo    applicationRepo.ApplicationRepository
	FieldRepo  fieldRepo.FieldRepository
	UserRepo   userRepo.UserRepository
	Storage    storage.StorageService // nil disables photo uploads
	Logger     *zap.Logger
}
