package handlers

import (
	"errors"
	"net/http"

	"mentorhub/middleware"
	reviewSvc "mentorhub/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler records mentor reviews.
type ReviewHandler struct {
	Reviews reviewSvc.ReviewService
	Logger  *zap.Logger
}

// Create handles POST /api/mentors/:id/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var body struct {
		Rating  int    `json:"rating" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	review, err := h.Reviews.AddReview(middleware.UserIDFrom(c), c.Param("id"), body.Rating, body.Comment)
	if err != nil {
		switch {
		case errors.Is(err, reviewSvc.ErrInvalidRating):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, reviewSvc.ErrNotAMember),
			errors.Is(err, reviewSvc.ErrNoCompletedSession):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, reviewSvc.ErrAlreadyReviewed):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("Create: failed to add review", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add review"})
		}
		return
	}
	c.JSON(http.StatusCreated, review)
}
