package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/push"
	"github.com/sirupsen/logrus"
)

const defaultNotificationLimit = 50

// Notifier - точка выхода событий ядра. delivered=false или ошибка не должны ломать вызывающую операцию.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind models.NotificationType, title, message string, data map[string]string) (bool, error)
}

// NotificationService хранит уведомления, ставит их в очередь доставки и ведёт токены устройств
type NotificationService interface {
	Notifier
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	RegisterDeviceToken(ctx context.Context, token *models.DeviceToken) error
	PruneNotifications(ctx context.Context, olderThan time.Duration) (int64, error)
	PruneDeviceTokens(ctx context.Context, olderThan time.Duration) (int64, error)
}

type notificationService struct {
	notifications NotificationRepository
	tokens        DeviceTokenRepository
	publisher     push.Publisher
	logger        *logrus.Logger
	cfg           *config.Config
	now           func() time.Time
}

func NewNotificationService(notifications NotificationRepository, tokens DeviceTokenRepository, publisher push.Publisher, logger *logrus.Logger, cfg *config.Config) NotificationService {
	return &notificationService{
		notifications: notifications,
		tokens:        tokens,
		publisher:     publisher,
		logger:        logger,
		cfg:           cfg,
		now:           time.Now,
	}
}

// Notify синхронно сохраняет уведомление и ставит событие в очередь доставки.
// Возвращает false, если у пользователя нет активных устройств.
func (s *notificationService) Notify(ctx context.Context, userID uuid.UUID, kind models.NotificationType, title, message string, data map[string]string) (bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notifications",
		"method":  "Notify",
		"user_id": userID,
		"type":    kind,
	})

	if data == nil {
		data = map[string]string{}
	}
	data["type"] = string(kind)

	notification := &models.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      kind,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: s.now().UTC(),
	}
	if err := s.notifications.CreateNotification(ctx, notification); err != nil {
		log.WithError(err).Error("Failed to store notification")
		return false, fmt.Errorf("service: could not store notification: %w", err)
	}

	tokens, err := s.tokens.ListActiveTokens(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("Failed to list device tokens")
		return false, fmt.Errorf("service: could not list device tokens: %w", err)
	}
	if len(tokens) == 0 {
		log.Debug("No active devices, notification stored only")
		return false, nil
	}

	event := push.Event{
		NotificationID: notification.ID,
		UserID:         userID,
		Type:           kind,
		Title:          title,
		Message:        message,
		Data:           data,
		Tokens:         tokens,
		CreatedAt:      notification.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to enqueue push event")
		return false, fmt.Errorf("service: could not enqueue push event: %w", err)
	}

	log.WithField("notification_id", notification.ID).Debug("Notification enqueued")
	return true, nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*models.Notification, error) {
	items, err := s.notifications.ListNotifications(ctx, userID, unreadOnly, defaultNotificationLimit)
	if err != nil {
		return nil, fmt.Errorf("service: could not list notifications: %w", err)
	}
	return items, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.notifications.MarkNotificationRead(ctx, userID, id); err != nil {
		return fmt.Errorf("service: could not mark notification read: %w", err)
	}
	return nil
}

// RegisterDeviceToken создаёт или реактивирует токен устройства пользователя
func (s *notificationService) RegisterDeviceToken(ctx context.Context, token *models.DeviceToken) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notifications",
		"method":  "RegisterDeviceToken",
		"user_id": token.UserID,
	})

	token.Token = strings.TrimSpace(token.Token)
	if token.Token == "" || len(token.Token) > 255 {
		return fmt.Errorf("%w: token must be 1-255 characters", models.ErrInvalidInput)
	}
	if !token.DeviceType.Valid() {
		return fmt.Errorf("%w: unknown device type %q", models.ErrInvalidInput, token.DeviceType)
	}

	now := s.now().UTC()
	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.IsActive = true
	token.CreatedAt = now
	token.LastUsed = now

	if err := s.tokens.UpsertDeviceToken(ctx, token); err != nil {
		log.WithError(err).Error("Failed to register device token")
		return fmt.Errorf("service: could not register device token: %w", err)
	}
	log.Info("Device token registered")
	return nil
}

func (s *notificationService) PruneNotifications(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := s.notifications.DeleteNotificationsBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("service: could not prune notifications: %w", err)
	}
	return n, nil
}

func (s *notificationService) PruneDeviceTokens(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := s.tokens.DeleteInactiveTokensBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("service: could not prune device tokens: %w", err)
	}
	return n, nil
}

// dispatch отправляет уведомление по принципу best-effort: сбой только логируется
func dispatch(ctx context.Context, notifier Notifier, log *logrus.Entry, userID uuid.UUID, kind models.NotificationType, title, message string, data map[string]string) bool {
	if notifier == nil {
		return false
	}
	delivered, err := notifier.Notify(ctx, userID, kind, title, message, data)
	if err != nil {
		log.WithError(err).WithField("recipient_id", userID).Warn("Notification dispatch failed")
		return false
	}
	return delivered
}
