package handlers

import (
	"errors"
	"net/http"

	"mentorhub/models"
	fieldSvc "mentorhub/services/field"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FieldHandler serves the mentoring-field catalogue.
type FieldHandler struct {
	Fields fieldSvc.FieldService
	Logger *zap.Logger
}

// List handles GET /api/fields.
func (h *FieldHandler) List(c *gin.Context) {
	fields, err := h.Fields.GetAll()
	if err != nil {
		h.Logger.Error("List: failed to list fields", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list fields"})
		return
	}
	c.JSON(http.StatusOK, fields)
}

// Get handles GET /api/fields/:id.
func (h *FieldHandler) Get(c *gin.Context) {
	f, err := h.Fields.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, fieldSvc.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Get: failed to load field", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load field"})
		return
	}
	c.JSON(http.StatusOK, f)
}

// Create handles POST /api/admin/fields.
func (h *FieldHandler) Create(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	f, err := h.Fields.Create(body.Name, body.Description)
	if err != nil {
		if errors.Is(err, fieldSvc.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("Create: failed to create field", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create field"})
		return
	}
	c.JSON(http.StatusCreated, f)
}

// Update handles PUT /api/admin/fields/:id.
func (h *FieldHandler) Update(c *gin.Context) {
	var body struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	f := &models.Field{ID: c.Param("id"), Name: body.Name, Description: body.Description}
	if err := h.Fields.Update(f); err != nil {
		switch {
		case errors.Is(err, fieldSvc.ErrFieldNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, fieldSvc.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("Update: failed to update field", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update field"})
		}
		return
	}
	c.JSON(http.StatusOK, f)
}

// Delete handles DELETE /api/admin/fields/:id.
func (h *FieldHandler) Delete(c *gin.Context) {
	if err := h.Fields.Delete(c.Param("id")); err != nil {
		h.Logger.Error("Delete: failed to delete field", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete field"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "field deleted"})
}
