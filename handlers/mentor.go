package handlers

import (
	"errors"
	"net/http"

	mentorRepo "mentorhub/database/repository/mentor"
	"mentorhub/middleware"
	mentorSvc "mentorhub/services/mentor"
	reviewSvc "mentorhub/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MentorHandler serves mentor profiles and schedules.
type MentorHandler struct {
	Mentors mentorSvc.MentorService
	Reviews reviewSvc.ReviewService
	Logger  *zap.Logger
}

// Search handles GET /api/mentors?fieldId=&name=.
func (h *MentorHandler) Search(c *gin.Context) {
	q := mentorRepo.SearchQuery{
		FieldID: c.Query("fieldId"),
		Name:    c.Query("name"),
	}
	mentors, err := h.Mentors.Search(q)
	if err != nil {
		h.Logger.Error("Search: failed to list mentors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list mentors"})
		return
	}
	c.JSON(http.StatusOK, mentors)
}

// Get handles GET /api/mentors/:id.
func (h *MentorHandler) Get(c *gin.Context) {
	m, err := h.Mentors.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, mentorSvc.ErrMentorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Get: failed to load mentor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load mentor"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// ListReviews handles GET /api/mentors/:id/reviews.
func (h *MentorHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Reviews.ListByMentor(c.Param("id"))
	if err != nil {
		h.Logger.Error("ListReviews: failed to list reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reviews"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// MyProfile handles GET /api/mentor/profile: the signed-in mentor's own
// record.
func (h *MentorHandler) MyProfile(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	m, err := h.Mentors.GetByUserID(userID)
	if err != nil {
		h.Logger.Error("MyProfile: failed to load mentor", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load mentor profile"})
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no mentor profile for this account"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpdateSchedule handles PUT /api/mentor/schedule.
func (h *MentorHandler) UpdateSchedule(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	m, err := h.Mentors.GetByUserID(userID)
	if err != nil || m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no mentor profile for this account"})
		return
	}

	var upd mentorSvc.ScheduleUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	updated, err := h.Mentors.UpdateSchedule(m.ID, upd)
	if err != nil {
		if ve, ok := mentorSvc.IsValidationError(err); ok {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Message, "field": ve.Field})
			return
		}
		h.Logger.Error("UpdateSchedule: failed to update schedule", zap.String("mentorID", m.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update schedule"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMentor handles DELETE /api/admin/mentors/:id.
func (h *MentorHandler) DeleteMentor(c *gin.Context) {
	if err := h.Mentors.Delete(c.Param("id")); err != nil {
		h.Logger.Error("DeleteMentor: failed to delete mentor", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete mentor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "mentor deleted"})
}
