package handlers

import (
	"errors"
	"net/http"

	"mentorhub/middleware"
	bookingSvc "mentorhub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the appointment-booking wizard.
type BookingHandler struct {
	Booking bookingSvc.BookingService
	Logger  *zap.Logger
}

// bookingError maps booking service failures onto HTTP responses.
func (h *BookingHandler) bookingError(c *gin.Context, op string, err error) {
	var ve *bookingSvc.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Message, "field": ve.Field})
	case errors.Is(err, bookingSvc.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrMentorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrSubmissionInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, bookingSvc.ErrPaymentInit):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.Logger.Error(op+": booking operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking operation failed"})
	}
}

// StartSession handles POST /api/booking/sessions.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var body struct {
		MentorID string `json:"mentorId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	draft, err := h.Booking.StartSession(c.Request.Context(), middleware.UserIDFrom(c), body.MentorID)
	if err != nil {
		h.bookingError(c, "StartSession", err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// GetSession handles GET /api/booking/sessions/:id.
func (h *BookingHandler) GetSession(c *gin.Context) {
	draft, err := h.Booking.GetSession(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c))
	if err != nil {
		h.bookingError(c, "GetSession", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// UpdateSession handles PUT /api/booking/sessions/:id: one wizard action
// per call.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var req bookingSvc.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	draft, err := h.Booking.UpdateSession(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c), req)
	if err != nil {
		h.bookingError(c, "UpdateSession", err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Submit handles POST /api/booking/sessions/:id/submit.
func (h *BookingHandler) Submit(c *gin.Context) {
	result, err := h.Booking.Submit(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c))
	if err != nil {
		h.bookingError(c, "Submit", err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CancelSession handles DELETE /api/booking/sessions/:id.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Booking.CancelSession(c.Request.Context(), c.Param("id"), middleware.UserIDFrom(c)); err != nil {
		h.bookingError(c, "CancelSession", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session discarded"})
}

// Slots handles GET /api/mentors/:id/slots?date=YYYY-MM-DD.
func (h *BookingHandler) Slots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing date query parameter"})
		return
	}

	slots, err := h.Booking.AvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		h.bookingError(c, "Slots", err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
