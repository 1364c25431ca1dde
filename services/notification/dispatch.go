package notification

import (
	"context"

	"stayhaven/models"
	"stayhaven/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// AsynqDispatcher queues pushes for the background worker instead of
// delivering inline, so confirmation requests never block on FCM.
type AsynqDispatcher struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// DispatchUserPush enqueues the payload. Failures are logged only;
// dropping a push must never fail the operation that triggered it.
func (d *AsynqDispatcher) DispatchUserPush(ctx context.Context, payload models.PushPayload) {
	task, err := tasks.NewUserPushTask(payload)
	if err != nil {
		d.Logger.Error("failed to build push task", zap.Error(err))
		return
	}
	if _, err := d.Client.EnqueueContext(ctx, task); err != nil {
		d.Logger.Error("failed to enqueue push task",
			zap.String("userId", payload.UserID),
			zap.Error(err))
	}
}
