package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/services/notification"
	"slotwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the async notification worker in background.
func InitNotificationWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(notification.TypeBookingConfirm, handleNotificationTask("confirmation"))
	mux.HandleFunc(notification.TypeBookingReminder, handleNotificationTask("reminder"))

	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleNotificationTask delivers a queued notification. Delivery here is a
// structured log; email and push transports hang off this same handler.
func handleNotificationTask(kind string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}

		utils.GetLogger().Info("delivering booking notification",
			zap.String("kind", kind),
			zap.String("bookingID", p.BookingID),
			zap.String("userID", p.UserID),
			zap.String("title", p.Title),
			zap.String("body", p.Body))
		return nil
	}
}
