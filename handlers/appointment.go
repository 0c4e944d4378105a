package handlers

import (
	"errors"
	"net/http"

	"mentorhub/middleware"
	"mentorhub/models"
	appointmentSvc "mentorhub/services/appointment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves booked consultations.
type AppointmentHandler struct {
	Appointments appointmentSvc.AppointmentService
	Logger       *zap.Logger
}

func (h *AppointmentHandler) appointmentError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, appointmentSvc.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, appointmentSvc.ErrNotYours):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, appointmentSvc.ErrForbiddenTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error(op+": appointment operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "appointment operation failed"})
	}
}

// Mine handles GET /api/appointments/mine (member view).
func (h *AppointmentHandler) Mine(c *gin.Context) {
	appts, err := h.Appointments.ListForMemberUser(middleware.UserIDFrom(c))
	if err != nil {
		h.appointmentError(c, "Mine", err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// MentorList handles GET /api/mentor/appointments (mentor view).
func (h *AppointmentHandler) MentorList(c *gin.Context) {
	appts, err := h.Appointments.ListForMentorUser(middleware.UserIDFrom(c))
	if err != nil {
		h.appointmentError(c, "MentorList", err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// AdminList handles GET /api/admin/appointments.
func (h *AppointmentHandler) AdminList(c *gin.Context) {
	appts, err := h.Appointments.ListAll()
	if err != nil {
		h.appointmentError(c, "AdminList", err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

// UpdateStatus handles PATCH /api/mentor/appointments/:id/status: the
// mentor confirms, completes or cancels one of their own appointments.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	appt, err := h.Appointments.Transition(c.Param("id"), body.Status, middleware.UserIDFrom(c))
	if err != nil {
		h.appointmentError(c, "UpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// AdminUpdateStatus handles PATCH /api/admin/appointments/:id/status.
func (h *AppointmentHandler) AdminUpdateStatus(c *gin.Context) {
	var body struct {
		Status models.AppointmentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	appt, err := h.Appointments.Transition(c.Param("id"), body.Status, "")
	if err != nil {
		h.appointmentError(c, "AdminUpdateStatus", err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Cancel handles POST /api/appointments/:id/cancel (member view).
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	appt, err := h.Appointments.CancelByMember(c.Param("id"), middleware.UserIDFrom(c))
	if err != nil {
		h.appointmentError(c, "Cancel", err)
		return
	}
	c.JSON(http.StatusOK, appt)
}
