package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"mentorhub/config"
	"mentorhub/models"
	appointmentSvc "mentorhub/services/appointment"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// StripeWebhookHandler finalizes online payments from gateway events.
type StripeWebhookHandler struct {
	Appointments appointmentSvc.AppointmentService
	Logger       *zap.Logger
}

// Handle serves POST /api/webhooks/stripe. The checkout session's client
// reference ID carries the appointment ID, so a completed checkout maps
// straight onto a payment settlement.
func (h *StripeWebhookHandler) Handle(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.AppConfig.StripeWebhookSecret)
	if err != nil {
		h.Logger.Warn("stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signature"})
		return
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.async_payment_succeeded":
		h.settle(c, event.Data.Raw, models.PaymentStatusPaid)
	case "checkout.session.async_payment_failed", "checkout.session.expired":
		h.settle(c, event.Data.Raw, models.PaymentStatusFailed)
	default:
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func (h *StripeWebhookHandler) settle(c *gin.Context, raw json.RawMessage, status models.PaymentStatus) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(raw, &session); err != nil {
		h.Logger.Error("stripe webhook: malformed checkout session", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event"})
		return
	}
	if session.ClientReferenceID == "" {
		h.Logger.Warn("stripe webhook: checkout session without client reference")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if err := h.Appointments.SettlePayment(session.ClientReferenceID, status); err != nil {
		h.Logger.Error("stripe webhook: failed to settle payment",
			zap.String("appointmentID", session.ClientReferenceID), zap.Error(err))
		// Non-2xx makes Stripe retry the delivery later.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "settlement failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
