package handlers

import (
	"errors"
	"net/http"

	"mentorhub/middleware"
	userSvc "mentorhub/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration and session endpoints.
type AuthHandler struct {
	Users  userSvc.UserService
	Logger *zap.Logger
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var in userSvc.RegistrationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	usr, token, err := h.Users.Register(in)
	if err != nil {
		if errors.Is(err, userSvc.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Register: failed to create account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": usr, "token": token})
}

// SignIn handles POST /api/auth/sign-in.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	usr, token, err := h.Users.Authenticate(body.Email, body.Password)
	if err != nil {
		if errors.Is(err, userSvc.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("SignIn: authentication failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-in failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": usr, "token": token})
}

// SignOut handles POST /api/auth/sign-out.
func (h *AuthHandler) SignOut(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	if err := h.Users.RevokeToken(userID); err != nil {
		h.Logger.Error("SignOut: failed to revoke token", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign-out failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Me handles GET /api/auth/me: the client's session refresh.
func (h *AuthHandler) Me(c *gin.Context) {
	userID := middleware.UserIDFrom(c)
	usr, err := h.Users.GetByID(userID)
	if err != nil || usr == nil {
		h.Logger.Error("Me: failed to load user", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, usr)
}
