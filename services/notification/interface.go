package notification

import "context"

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	// SendUserPush delivers a push to every device token registered for
	// the user. Delivery is at-least-once with possible silent failure;
	// invalid tokens are pruned as a side effect.
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
}
