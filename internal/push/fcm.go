package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"nexgenhealth/config"
)

// FCMSender sends notifications through Firebase Cloud Messaging.
type FCMSender struct {
	client *messaging.Client
	logger *zap.Logger
}

func NewFCMSender(ctx context.Context, cfg config.FirebaseConfig, logger *zap.Logger) (*FCMSender, error) {
	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации Firebase: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации FCM клиента: %w", err)
	}

	return &FCMSender{
		client: client,
		logger: logger,
	}, nil
}

func (s *FCMSender) Send(ctx context.Context, token, title, body string) error {
	msg := &messaging.Message{
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Token: token,
	}

	id, err := s.client.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("ошибка отправки FCM уведомления: %w", err)
	}

	s.logger.Debug("FCM уведомление отправлено", zap.String("message_id", id))
	return nil
}
