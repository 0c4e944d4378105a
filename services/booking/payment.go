package booking

import (
	"context"
	"fmt"

	"mentorhub/config"
	"mentorhub/models"

	"github.com/stripe/stripe-go/v76"
	checkoutSession "github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// PaymentGateway initiates online settlement for an appointment and
// returns the hosted payment page the client should be redirected to.
// The CASH method never reaches the gateway.
type PaymentGateway interface {
	CreateCheckout(ctx context.Context, appt *models.Appointment) (string, error)
}

// StripeGateway implements PaymentGateway with Stripe Checkout Sessions.
type StripeGateway struct {
	Logger *zap.Logger
}

// NewStripeGateway builds the gateway. stripe.Key is set once in main.
func NewStripeGateway(logger *zap.Logger) *StripeGateway {
	return &StripeGateway{Logger: logger}
}

// CreateCheckout opens a checkout session for the consultation fee. The
// appointment ID travels as the client reference so the webhook can
// finalize the right record.
func (g *StripeGateway) CreateCheckout(ctx context.Context, appt *models.Appointment) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(appt.ID),
		SuccessURL:        stripe.String(config.AppConfig.PaymentSuccessURL),
		CancelURL:         stripe.String(config.AppConfig.PaymentCancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(int64(appt.Fee * 100)), // cents
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Mentoring consultation on %s at %s", appt.Date, appt.Time)),
					},
				},
			},
		},
	}
	params.Context = ctx

	sess, err := checkoutSession.New(params)
	if err != nil {
		g.Logger.Error("stripe checkout session creation failed",
			zap.String("appointmentID", appt.ID), zap.Error(err))
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	if sess.URL == "" {
		return "", ErrPaymentInit
	}
	return sess.URL, nil
}
