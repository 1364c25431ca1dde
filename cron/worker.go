package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stayhaven/config"
	"stayhaven/models"
	"stayhaven/services/notification"
	"stayhaven/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async push-delivery worker in background.
func InitNotificationWorker(notifSvc notification.NotificationService) {
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
	mux.HandleFunc(tasks.TypeUserPush, handleUserPushTask(notifSvc))

	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

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

func handleUserPushTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}

		if err := notifSvc.SendUserPush(ctx, p.UserID, p.Title, p.Body, p.Data); err != nil {
			log.Printf("[NotificationWorker] failed to send notification: %v", err)
			return err
		}
		return nil
	}
}

// NewQueueClient creates the asynq client producers use to enqueue pushes.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}
