package handlers

import (
	userRepoPkg "mentorhub/database/repository/user"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Auth         *AuthHandler
	Users        *UserHandler
	Fields       *FieldHandler
	Mentors      *MentorHandler
	Applications *ApplicationHandler
	Booking      *BookingHandler
	Appointments *AppointmentHandler
	Reviews      *ReviewHandler
	Webhook      *StripeWebhookHandler
}
