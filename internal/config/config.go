package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	StorageBackendPostgres = "postgres"
	StorageBackendMemory   = "memory"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL"`
	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"postgres"`
	HTTPPort       string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`

	// Postgres pool
	DBMaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`

	// Redis Config
	RedisEnabled bool   `env:"REDIS_ENABLED" envDefault:"true"`
	RedisAddr    string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass    string `env:"REDIS_PASSWORD"`
	RedisDB      int    `env:"REDIS_DB" envDefault:"0"`

	// Vibe Config
	VibeWindow   time.Duration `env:"VIBE_WINDOW" envDefault:"2h"`
	VibeCacheTTL time.Duration `env:"VIBE_CACHE_TTL" envDefault:"5m"`

	// Social Config
	FriendCountCacheTTL       time.Duration `env:"FRIEND_COUNT_CACHE_TTL" envDefault:"1h"`
	NearbyAlertRadiusMeters   float64       `env:"NEARBY_ALERT_RADIUS_METERS" envDefault:"5000"`
	DefaultNearbyRadiusMeters float64       `env:"DEFAULT_NEARBY_RADIUS_METERS" envDefault:"1000"`
	DefaultVenueRadiusMeters  float64       `env:"DEFAULT_VENUE_RADIUS_METERS" envDefault:"5000"`
	MeetupPingTTL             time.Duration `env:"MEETUP_PING_TTL" envDefault:"2h"`
	PopularityWindow          time.Duration `env:"POPULARITY_WINDOW" envDefault:"24h"`

	// Sweep Config
	SweepInterval         time.Duration `env:"SWEEP_INTERVAL" envDefault:"5m"`
	NotificationRetention time.Duration `env:"NOTIFICATION_RETENTION" envDefault:"720h"`
	DeviceTokenRetention  time.Duration `env:"DEVICE_TOKEN_RETENTION" envDefault:"720h"`
	CheckInRetention      time.Duration `env:"CHECKIN_RETENTION" envDefault:"24h"`

	// Push Config
	PushGatewayURL string        `env:"PUSH_GATEWAY_URL"`
	PushSecret     string        `env:"PUSH_SECRET"`
	PushTimeout    time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushMaxRetries int           `env:"PUSH_MAX_RETRIES" envDefault:"3"`
	PushBaseDelay  time.Duration `env:"PUSH_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS" envSeparator:","`

	// CORS
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
	case StorageBackendMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}

	if c.NearbyAlertRadiusMeters < 0 || c.DefaultNearbyRadiusMeters < 0 || c.DefaultVenueRadiusMeters < 0 {
		return fmt.Errorf("radius settings must not be negative")
	}
	if c.PushMaxRetries < 1 {
		return fmt.Errorf("PUSH_MAX_RETRIES must be at least 1, got %d", c.PushMaxRetries)
	}
	// Чекины внутри окна атмосферы не должны удаляться очисткой
	if c.CheckInRetention < c.VibeWindow {
		return fmt.Errorf("CHECKIN_RETENTION (%s) must not be shorter than VIBE_WINDOW (%s)", c.CheckInRetention, c.VibeWindow)
	}
	return nil
}
