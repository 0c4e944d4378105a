package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorhub/config"
	"mentorhub/cron"
	"mentorhub/database"
	applicationRepoPkg "mentorhub/database/repository/application"
	appointmentRepoPkg "mentorhub/database/repository/appointment"
	fieldRepoPkg "mentorhub/database/repository/field"
	memberRepoPkg "mentorhub/database/repository/member"
	mentorRepoPkg "mentorhub/database/repository/mentor"
	reviewRepoPkg "mentorhub/database/repository/review"
	userRepoPkg "mentorhub/database/repository/user"
	"mentorhub/handlers"
	"mentorhub/routes"
	appointmentSvc "mentorhub/services/appointment"
	"mentorhub/services/booking"
	fieldSvc "mentorhub/services/field"
	mentorSvc "mentorhub/services/mentor"
	reviewSvc "mentorhub/services/review"
	"mentorhub/services/storage"
	"mentorhub/services/tasks"
	userSvc "mentorhub/services/user"
	"mentorhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	var storageService storage.StorageService
	if svc, err := storage.NewCloudinaryStorage(); err != nil {
		logger.Sugar().Warnf("main: cloudinary disabled: %v", err)
	} else {
		storageService = svc
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	memberRepo := memberRepoPkg.NewMongoMemberRepo()
	mentorRepo := mentorRepoPkg.NewMongoMentorRepo()
	fieldRepo := fieldRepoPkg.NewMongoFieldRepo()
	applicationRepo := applicationRepoPkg.NewMongoApplicationRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()

	// services.
	userService := &userSvc.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	fieldService := &fieldSvc.DefaultFieldService{
		Repo:   fieldRepo,
		Logger: logger,
	}
	mentorService := &mentorSvc.DefaultMentorService{
		MentorRepo: mentorRepo,
		AppRepo:    applicationRepo,
		FieldRepo:  fieldRepo,
		UserRepo:   userRepo,
		Storage:    storageService,
		Logger:     logger,
	}
	reviewService := &reviewSvc.DefaultReviewService{
		ReviewRepo: reviewRepo,
		MemberRepo: memberRepo,
		MentorRepo: mentorRepo,
		ApptRepo:   appointmentRepo,
		Logger:     logger,
	}
	appointmentService := &appointmentSvc.DefaultAppointmentService{
		ApptRepo:   appointmentRepo,
		MemberRepo: memberRepo,
		MentorRepo: mentorRepo,
		UserRepo:   userRepo,
		Logger:     logger,
	}

	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		MentorRepo: mentorRepo,
		MemberRepo: memberRepo,
		UserRepo:   userRepo,
		ApptRepo:   appointmentRepo,
		Sessions:   booking.NewRedisSessionStore(utils.GetBookingCacheClient()),
		Gateway:    booking.NewStripeGateway(logger),
		Reminders:  reminderScheduler,
		Logger:     logger,
	}

	// Reminder delivery worker.
	cron.InitReminderWorker(userRepo, mentorRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Auth:         &handlers.AuthHandler{Users: userService, Logger: logger},
		Users:        &handlers.UserHandler{Users: userService, Logger: logger},
		Fields:       &handlers.FieldHandler{Fields: fieldService, Logger: logger},
		Mentors:      &handlers.MentorHandler{Mentors: mentorService, Reviews: reviewService, Logger: logger},
		Applications: &handlers.ApplicationHandler{Mentors: mentorService, Logger: logger},
		Booking:      &handlers.BookingHandler{Booking: bookingService, Logger: logger},
		Appointments: &handlers.AppointmentHandler{Appointments: appointmentService, Logger: logger},
		Reviews:      &handlers.ReviewHandler{Reviews: reviewService, Logger: logger},
		Webhook:      &handlers.StripeWebhookHandler{Appointments: appointmentService, Logger: logger},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
