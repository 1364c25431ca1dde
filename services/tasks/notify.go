package tasks

import (
	"encoding/json"

	"stayhaven/models"

	"github.com/hibiken/asynq"
)

const TypeUserPush = "notify:user_push"

// NewUserPushTask wraps a push payload for the notification worker.
func NewUserPushTask(payload models.PushPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeUserPush, b, asynq.MaxRetry(3)), nil
}
