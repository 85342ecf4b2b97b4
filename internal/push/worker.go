package push

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/sirupsen/logrus"
)

// DeliveryStore фиксирует результат доставки
type DeliveryStore interface {
	MarkNotificationSent(ctx context.Context, id uuid.UUID) error
	DeactivateTokens(ctx context.Context, tokens []string) error
}

// gatewayResponse - ответ push-шлюза; failed_tokens больше не принимают уведомления
type gatewayResponse struct {
	SuccessCount int      `json:"success_count"`
	FailedTokens []string `json:"failed_tokens"`
}

// Worker - структура для обработки очереди и отправки в push-шлюз
type Worker struct {
	redisClient *redis.Client
	store       DeliveryStore
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
	sleep       func(time.Duration)
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, store DeliveryStore, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		store:       store,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.PushTimeout,
		},
		sleep: time.Sleep,
	}
}

// Start запускает горутину для обработки очереди
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting push worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping push worker.")
				return
			default:
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, pushQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop push event from Redis")
					w.sleep(w.cfg.PushTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal push event from Redis")
					continue
				}

				w.Deliver(ctx, event, payload)
			}
		}
	}()
}

// Deliver отправляет событие в шлюз с экспоненциальной задержкой между попытками.
// Возвращает true, если шлюз принял событие.
func (w *Worker) Deliver(ctx context.Context, event Event, rawPayload string) bool {
	log := w.logger.WithFields(logrus.Fields{
		"notification_id": event.NotificationID,
		"user_id":         event.UserID,
		"type":            event.Type,
	})
	log.Debug("Processing push event...")

	if w.cfg.PushGatewayURL == "" {
		log.Warn("Push gateway URL is not configured. Skipping delivery.")
		return false
	}

	maxRetries := w.cfg.PushMaxRetries
	delay := w.cfg.PushBaseDelay

	for i := 0; i < maxRetries; i++ {
		resp, err := w.send(ctx, rawPayload)
		if err == nil {
			w.recordDelivery(ctx, log, event, resp)
			log.Info("Push event delivered successfully.")
			return true
		}

		log.WithError(err).Warnf("Push delivery failed. Retries left: %d", maxRetries-1-i)
		if i < maxRetries-1 {
			w.sleep(delay)
			delay *= 2
		}
	}

	log.Errorf("Failed to deliver push event after %d retries.", maxRetries)
	return false
}

func (w *Worker) send(ctx context.Context, rawPayload string) (*gatewayResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.PushGatewayURL, bytes.NewBufferString(rawPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// HMAC подпись, если PUSH_SECRET задан
	if w.cfg.PushSecret != "" {
		req.Header.Set("X-Push-Signature", generateHMACSHA256(rawPayload, w.cfg.PushSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("push gateway responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read push gateway response: %w", err)
	}
	out := &gatewayResponse{}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return nil, fmt.Errorf("failed to decode push gateway response: %w", err)
		}
	}
	return out, nil
}

func (w *Worker) recordDelivery(ctx context.Context, log *logrus.Entry, event Event, resp *gatewayResponse) {
	if len(resp.FailedTokens) > 0 {
		if err := w.store.DeactivateTokens(ctx, resp.FailedTokens); err != nil {
			log.WithError(err).Warn("Failed to deactivate rejected device tokens")
		} else {
			log.WithField("count", len(resp.FailedTokens)).Info("Deactivated rejected device tokens")
		}
	}
	if err := w.store.MarkNotificationSent(ctx, event.NotificationID); err != nil {
		log.WithError(err).Warn("Failed to mark notification as sent")
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
