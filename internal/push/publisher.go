package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/nightlife_presence/internal/models"
)

const (
	pushQueueKey = "push_events"
)

// Event - уведомление, поставленное в очередь на доставку в push-шлюз
type Event struct {
	NotificationID uuid.UUID               `json:"notification_id"`
	UserID         uuid.UUID               `json:"user_id"`
	Type           models.NotificationType `json:"type"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	Data           map[string]string       `json:"data,omitempty"`
	Tokens         []string                `json:"tokens"`
	CreatedAt      time.Time               `json:"created_at"`
}

// Publisher - интерфейс для публикации push-событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal push event: %w", err)
	}

	// LPUSH в левую часть, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, pushQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish push event to Redis: %w", err)
	}
	return nil
}

// DirectPublisher передаёт события воркеру без очереди, каждое в своей горутине.
// Используется, когда Redis отключён; при остановке процесса недоставленные события теряются.
type DirectPublisher struct {
	ctx    context.Context
	worker *Worker
}

// NewDirectPublisher создает DirectPublisher; ctx ограничивает время жизни доставок
func NewDirectPublisher(ctx context.Context, worker *Worker) *DirectPublisher {
	return &DirectPublisher{
		ctx:    ctx,
		worker: worker,
	}
}

// Publish не ждёт доставки: контекст запроса к этому моменту может быть уже отменён
func (p *DirectPublisher) Publish(_ context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal push event: %w", err)
	}
	go p.worker.Deliver(p.ctx, event, string(payload))
	return nil
}
