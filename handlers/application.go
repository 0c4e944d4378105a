package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"mentorhub/middleware"
	"mentorhub/models"
	mentorSvc "mentorhub/services/mentor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ApplicationHandler serves the become-a-mentor pipeline.
type ApplicationHandler struct {
	Mentors mentorSvc.MentorService
	Logger  *zap.Logger
}

// Apply handles POST /api/applications. The request is multipart: an
// "application" JSON part and an optional "photo" file part.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := middleware.UserIDFrom(c)

	var in mentorSvc.ApplicationInput
	if err := json.Unmarshal([]byte(c.PostForm("application")), &in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid application payload",
			"message": err.Error(),
		})
		return
	}

	var photo io.Reader
	if file, err := c.FormFile("photo"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable photo upload"})
			return
		}
		defer f.Close()
		photo = f
	}

	app, err := h.Mentors.SubmitApplication(c.Request.Context(), userID, in, photo)
	if err != nil {
		if ve, ok := mentorSvc.IsValidationError(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Message, "field": ve.Field})
			return
		}
		switch {
		case errors.Is(err, mentorSvc.ErrAlreadyMentor),
			errors.Is(err, mentorSvc.ErrPendingApplication):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("Apply: failed to submit application", zap.String("userID", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit application"})
		}
		return
	}
	c.JSON(http.StatusCreated, app)
}

// MyApplications handles GET /api/applications/mine.
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	apps, err := h.Mentors.MyApplications(userID)
	if err != nil {
		h.Logger.Error("MyApplications: failed to list applications", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// List handles GET /api/admin/applications?status=.
func (h *ApplicationHandler) List(c *gin.Context) {
	status := models.ApplicationStatus(c.Query("status"))
	apps, err := h.Mentors.ListApplications(status)
	if err != nil {
		h.Logger.Error("List: failed to list applications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// Approve handles POST /api/admin/applications/:id/approve.
func (h *ApplicationHandler) Approve(c *gin.Context) {
	m, err := h.Mentors.ApproveApplication(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, mentorSvc.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, mentorSvc.ErrApplicationClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("Approve: failed to approve application", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve application"})
		}
		return
	}
	c.JSON(http.StatusOK, m)
}

// Reject handles POST /api/admin/applications/:id/reject.
func (h *ApplicationHandler) Reject(c *gin.Context) {
	if err := h.Mentors.RejectApplication(c.Param("id")); err != nil {
		switch {
		case errors.Is(err, mentorSvc.ErrApplicationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, mentorSvc.ErrApplicationClosed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("Reject: failed to reject application", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reject application"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "application rejected"})
}
