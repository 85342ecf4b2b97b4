package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/push"
	"github.com/shenikar/nightlife_presence/internal/service"
)

var (
	_ service.NotificationRepository = (*NotificationRepository)(nil)
	_ service.DeviceTokenRepository  = (*NotificationRepository)(nil)
	_ push.DeliveryStore             = (*NotificationRepository)(nil)
)

// NotificationRepository хранит уведомления и токены устройств.
// Реализует также push.DeliveryStore для воркера доставки.
type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, data, is_read, is_sent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query,
		n.ID,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
		n.Data,
		n.IsRead,
		n.IsSent,
		n.CreatedAt,
	)
	if err != nil {
		return mapError("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, data, is_read, is_sent, created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR NOT is_read)
		ORDER BY created_at DESC
		LIMIT $3;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, userID, unreadOnly, limit)
	if err != nil {
		return nil, mapError("failed to list notifications", err)
	}
	defer rows.Close()

	items := make([]*models.Notification, 0)
	for rows.Next() {
		n := &models.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Data, &n.IsRead, &n.IsSent, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListNotifications", err)
	}
	return items, nil
}

// MarkNotificationRead; чужое уведомление не найдено
func (r *NotificationRepository) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return mapError("failed to mark notification read", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("notification %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *NotificationRepository) MarkNotificationSent(ctx context.Context, id uuid.UUID) error {
	if _, err := conn(ctx, r.db).Exec(ctx, `UPDATE notifications SET is_sent = TRUE WHERE id = $1;`, id); err != nil {
		return mapError("failed to mark notification sent", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteNotificationsBefore(ctx context.Context, before time.Time) (int64, error) {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM notifications WHERE created_at < $1;`, before)
	if err != nil {
		return 0, mapError("failed to delete old notifications", err)
	}
	return cmdTag.RowsAffected(), nil
}

// UpsertDeviceToken перепривязывает существующий токен и снова активирует его
func (r *NotificationRepository) UpsertDeviceToken(ctx context.Context, token *models.DeviceToken) error {
	query := `
		INSERT INTO device_tokens (id, user_id, token, device_type, is_active, created_at, last_used)
		VALUES ($1, $2, $3, $4, TRUE, $5, $6)
		ON CONFLICT (token) DO UPDATE SET
			user_id = EXCLUDED.user_id,
			device_type = EXCLUDED.device_type,
			is_active = TRUE,
			last_used = EXCLUDED.last_used
		RETURNING id, created_at;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		token.ID,
		token.UserID,
		token.Token,
		token.DeviceType,
		token.CreatedAt,
		token.LastUsed,
	).Scan(&token.ID, &token.CreatedAt)
	if err != nil {
		return mapError("failed to upsert device token", err)
	}
	return nil
}

func (r *NotificationRepository) ListActiveTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT token FROM device_tokens WHERE user_id = $1 AND is_active ORDER BY last_used DESC;`, userID)
	if err != nil {
		return nil, mapError("failed to list device tokens", err)
	}
	defer rows.Close()

	tokens := make([]string, 0)
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan device token: %w", err)
		}
		tokens = append(tokens, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListActiveTokens", err)
	}
	return tokens, nil
}

func (r *NotificationRepository) DeactivateTokens(ctx context.Context, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	if _, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE device_tokens SET is_active = FALSE WHERE token = ANY($1);`, tokens); err != nil {
		return mapError("failed to deactivate device tokens", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteInactiveTokensBefore(ctx context.Context, before time.Time) (int64, error) {
	cmdTag, err := conn(ctx, r.db).Exec(ctx,
		`DELETE FROM device_tokens WHERE NOT is_active AND last_used < $1;`, before)
	if err != nil {
		return 0, mapError("failed to delete inactive device tokens", err)
	}
	return cmdTag.RowsAffected(), nil
}
