package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"nexgenhealth/internal/domain"
	"nexgenhealth/internal/push"
	"nexgenhealth/internal/repository"
)

const pushTimeout = 10 * time.Second

type NotificationServiceImpl struct {
	repo     repository.NotificationRepository
	userRepo repository.UserRepository
	push     push.Sender
	logger   *zap.Logger
}

func NewNotificationService(repo repository.NotificationRepository, userRepo repository.UserRepository, sender push.Sender, logger *zap.Logger) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		repo:     repo,
		userRepo: userRepo,
		push:     sender,
		logger:   logger,
	}
}

// Notify stores the notification and, if the user has a device token,
// pushes it in the background. Delivery failures are logged only.
func (s *NotificationServiceImpl) Notify(ctx context.Context, userID int64, message string, kind domain.NotificationType, fcmToken string) {
	notification := domain.Notification{
		UserID:  userID,
		Message: message,
		Type:    kind,
	}

	if _, err := s.repo.Create(ctx, notification); err != nil {
		s.logger.Error("ошибка сохранения уведомления",
			zap.Int64("userId", userID),
			zap.Error(err),
		)
	}

	if fcmToken == "" || s.push == nil {
		return
	}

	title := pushTitle(kind)
	go func() {
		pushCtx, cancel := context.WithTimeout(context.Background(), pushTimeout)
		defer cancel()

		if err := s.push.Send(pushCtx, fcmToken, title, message); err != nil {
			s.logger.Warn("ошибка отправки push-уведомления",
				zap.Int64("userId", userID),
				zap.Error(err),
			)
		}
	}()
}

// NotifyAdmins fans the message out to every accepted administrator.
func (s *NotificationServiceImpl) NotifyAdmins(ctx context.Context, message string, kind domain.NotificationType) {
	admins, err := s.userRepo.ListByRoleAndStatus(ctx, domain.UserRoleAdmin, domain.UserStatusAccepted)
	if err != nil {
		s.logger.Error("ошибка получения списка администраторов", zap.Error(err))
		return
	}

	for _, admin := range admins {
		s.Notify(ctx, admin.ID, message, kind, admin.FCMToken)
	}
}

func (s *NotificationServiceImpl) ListByUser(ctx context.Context, userID int64) ([]domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// pushTitle turns a notification type into a human-readable push title,
// e.g. "ticket_assigned" -> "New Ticket Assigned".
func pushTitle(kind domain.NotificationType) string {
	words := strings.Split(string(kind), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return fmt.Sprintf("New %s", strings.Join(words, " "))
}
