package handlers

import (
	"net/http"

	"mentorhub/middleware"
	"mentorhub/models"
	userSvc "mentorhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account profile endpoints.
type UserHandler struct {
	Users  userSvc.UserService
	Logger *zap.Logger
}

// UpdateProfile handles PUT /api/users/me.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := middleware.UserIDFrom(c)

	var body struct {
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		PhoneNumber string `json:"phoneNumber"`
		Address     string `json:"address"`
		DateOfBirth string `json:"dateOfBirth"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	usr, err := h.Users.GetByID(userID)
	if err != nil || usr == nil {
		h.Logger.Error("UpdateProfile: failed to load user", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	if body.FirstName != "" {
		usr.FirstName = body.FirstName
	}
	if body.LastName != "" {
		usr.LastName = body.LastName
	}
	if body.PhoneNumber != "" {
		usr.PhoneNumber = body.PhoneNumber
	}
	if body.Address != "" {
		usr.Address = body.Address
	}
	if body.DateOfBirth != "" {
		usr.DateOfBirth = body.DateOfBirth
	}

	if err := h.Users.Update(usr); err != nil {
		h.Logger.Error("UpdateProfile: failed to update user", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// Notifications handles GET /api/users/me/notifications.
func (h *UserHandler) Notifications(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	usr, err := h.Users.GetByID(userID)
	if err != nil || usr == nil {
		h.Logger.Error("Notifications: failed to load user", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notifications"})
		return
	}
	notifications := usr.Notifications
	if notifications == nil {
		notifications = []models.Notification{}
	}
	c.JSON(http.StatusOK, notifications)
}

// ListUsers handles GET /api/admin/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Users.GetAll()
	if err != nil {
		h.Logger.Error("ListUsers: failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if err := h.Users.Delete(id); err != nil {
		h.Logger.Error("DeleteUser: failed to delete user", zap.String("userID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
