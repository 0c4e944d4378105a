package routes

import (
	"net/http"
	"time"

	"mentorhub/handlers"
	"mentorhub/middleware"
	"mentorhub/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Role sets per route group. MEMBER routes also admit plain USERs: the
// first successful booking is what promotes them.
var (
	memberRoles = []models.Role{models.RoleUser, models.RoleMember, models.RoleAdmin}
	mentorRoles = []models.Role{models.RoleMentor, models.RoleAdmin}
	adminRoles  = []models.Role{models.RoleAdmin}
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/sign-in", hb.Auth.SignIn)

		protected := api.Group("")
		protected.Use(middleware.RequireRoles())
		protected.POST("/sign-out", hb.Auth.SignOut)
		protected.GET("/me", hb.Auth.Me)
	}
}

// RegisterUserRoutes registers profile endpoints for any signed-in account.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.RequireRoles())
		api.PUT("/me", hb.Users.UpdateProfile)
		api.GET("/me/notifications", hb.Users.Notifications)
	}
}

// RegisterCatalogueRoutes registers the public browsing surface: fields,
// mentors, their reviews and their open slots.
func RegisterCatalogueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	fields := r.Group("/api/fields")
	{
		fields.GET("", hb.Fields.List)
		fields.GET("/:id", hb.Fields.Get)
	}

	mentors := r.Group("/api/mentors")
	{
		mentors.GET("", hb.Mentors.Search)
		mentors.GET("/:id", hb.Mentors.Get)
		mentors.GET("/:id/reviews", hb.Mentors.ListReviews)
		mentors.GET("/:id/slots", hb.Booking.Slots)

		reviews := mentors.Group("")
		reviews.Use(middleware.RequireRoles(memberRoles...))
		reviews.POST("/:id/reviews", hb.Reviews.Create)
	}
}

// RegisterApplicationRoutes registers the become-a-mentor pipeline for
// applicants.
func RegisterApplicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/applications")
	{
		api.Use(middleware.RequireRoles())
		api.POST("", hb.Applications.Apply)
		api.GET("/mine", hb.Applications.MyApplications)
	}
}

// RegisterBookingRoutes sets up the booking wizard endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.RequireRoles(memberRoles...))
		bookingGroup.POST("/sessions", hb.Booking.StartSession)
		bookingGroup.GET("/sessions/:id", hb.Booking.GetSession)
		bookingGroup.PUT("/sessions/:id", hb.Booking.UpdateSession)
		bookingGroup.POST("/sessions/:id/submit", hb.Booking.Submit)
		bookingGroup.DELETE("/sessions/:id", hb.Booking.CancelSession)
	}

	appts := r.Group("/api/appointments")
	{
		appts.Use(middleware.RequireRoles(memberRoles...))
		appts.GET("/mine", hb.Appointments.Mine)
		appts.POST("/:id/cancel", hb.Appointments.Cancel)
	}
}

// RegisterMentorRoutes sets up endpoints for the mentor dashboard.
func RegisterMentorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/mentor")
	{
		api.Use(middleware.RequireRoles(mentorRoles...))
		api.GET("/profile", hb.Mentors.MyProfile)
		api.PUT("/schedule", hb.Mentors.UpdateSchedule)
		api.GET("/appointments", hb.Appointments.MentorList)
		api.PATCH("/appointments/:id/status", hb.Appointments.UpdateStatus)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.RequireRoles(adminRoles...))
		adminGroup.GET("/users", hb.Users.ListUsers)
		adminGroup.DELETE("/users/:id", hb.Users.DeleteUser)

		adminGroup.POST("/fields", hb.Fields.Create)
		adminGroup.PUT("/fields/:id", hb.Fields.Update)
		adminGroup.DELETE("/fields/:id", hb.Fields.Delete)

		adminGroup.GET("/applications", hb.Applications.List)
		adminGroup.POST("/applications/:id/approve", hb.Applications.Approve)
		adminGroup.POST("/applications/:id/reject", hb.Applications.Reject)

		adminGroup.DELETE("/mentors/:id", hb.Mentors.DeleteMentor)

		adminGroup.GET("/appointments", hb.Appointments.AdminList)
		adminGroup.PATCH("/appointments/:id/status", hb.Appointments.AdminUpdateStatus)
	}
}

// RegisterWebhookRoutes registers gateway callbacks. Signature checks
// replace bearer auth here.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.Webhook.Handle)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm MentorHub"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.ResolveIdentity(hb.UserRepo))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterCatalogueRoutes(r, hb)
	RegisterApplicationRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterMentorRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
}
