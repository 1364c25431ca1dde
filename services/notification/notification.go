package notification

import (
	"context"
	"fmt"

	userRepo "stayhaven/database/repository/user"
	"stayhaven/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users  userRepo.UserRepository
	Logger *zap.Logger
}

// SendUserPush looks up the user's FCM tokens and sends a multicast
// push. Tokens the provider reports as unregistered are removed so the
// token set stays clean.
func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	tokens, err := s.Users.GetFCMTokens(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not load tokens for user %s: %w", userID, err)
	}
	if len(tokens) == 0 {
		// Nothing registered; silently dropping is the contract here.
		return nil
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = "user"
	}

	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	resp, err := utils.FCMClient.SendEachForMulticast(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendUserPush: failed to send FCM message: %w", err)
	}

	s.Logger.Info("push notifications sent",
		zap.String("userId", userID),
		zap.Int("success", resp.SuccessCount),
		zap.Int("failure", resp.FailureCount))

	if resp.FailureCount > 0 {
		for idx, r := range resp.Responses {
			if r.Success || r.Error == nil {
				continue
			}
			if messaging.IsUnregistered(r.Error) {
				badToken := tokens[idx]
				if err := s.Users.RemoveFCMToken(ctx, badToken); err != nil {
					s.Logger.Warn("failed to prune invalid FCM token", zap.Error(err))
				}
			}
		}
	}
	return nil
}
