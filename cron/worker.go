package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"mentorhub/config"
	mentorRepo "mentorhub/database/repository/mentor"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
	"mentorhub/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(users userRepo.UserRepository, mentors mentorRepo.MentorRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(users, mentors))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask delivers an upcoming-consultation reminder to the
// member and to the mentor's own account.
func handleReminderTask(users userRepo.UserRepository, mentors mentorRepo.MentorRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] reminder for appointment %s (%s %s)", p.AppointmentID, p.Date, p.Time)

		data := map[string]any{
			"appointmentId": p.AppointmentID,
			"date":          p.Date,
			"time":          p.Time,
		}

		memberNote := models.Notification{
			ID:        uuid.New().String(),
			Type:      "appointment_reminder",
			Message:   fmt.Sprintf("Reminder: your consultation with %s starts at %s on %s.", p.MentorName, p.Time, p.Date),
			Data:      data,
			CreatedAt: time.Now(),
		}
		if err := users.PushNotification(p.MemberUserID, memberNote); err != nil {
			log.Printf("[ReminderHandler] failed to notify member %s: %v", p.MemberUserID, err)
			return err
		}

		// Mentor reminder is best effort; a missing mentor record must not
		// requeue the member's already-delivered notification.
		mentor, err := mentors.GetByID(p.MentorID)
		if err != nil || mentor == nil {
			log.Printf("[ReminderHandler] mentor %s unavailable for reminder: %v", p.MentorID, err)
			return nil
		}
		mentorNote := models.Notification{
			ID:        uuid.New().String(),
			Type:      "appointment_reminder",
			Message:   fmt.Sprintf("Reminder: you have a consultation at %s on %s.", p.Time, p.Date),
			Data:      data,
			CreatedAt: time.Now(),
		}
		if err := users.PushNotification(mentor.UserID, mentorNote); err != nil {
			log.Printf("[ReminderHandler] failed to notify mentor %s: %v", mentor.UserID, err)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
