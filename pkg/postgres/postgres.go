package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/nightlife_presence/internal/config"
)

// poolConfig разбирает DATABASE_URL и применяет размеры пула из конфигурации
func poolConfig(appCfg *config.Config) (*pgxpool.Config, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	if appCfg.DBMaxConns > 0 {
		cfgPool.MaxConns = appCfg.DBMaxConns
	}
	if appCfg.DBMaxConnIdleTime > 0 {
		cfgPool.MaxConnIdleTime = appCfg.DBMaxConnIdleTime
	}
	return cfgPool, nil
}

// NewPostgresDB создает пул соединений и проверяет, что в базе доступен PostGIS
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := poolConfig(appCfg)
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	// Геозапросы заведений и друзей опираются на geography-функции PostGIS
	var version string
	if err := dbpool.QueryRow(pingCtx, "SELECT PostGIS_Lib_Version();").Scan(&version); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("postgis is not available: %w", err)
	}

	return dbpool, nil
}
