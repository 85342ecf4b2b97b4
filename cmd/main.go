package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shenikar/nightlife_presence/internal/cache"
	"github.com/shenikar/nightlife_presence/internal/config"
	v1 "github.com/shenikar/nightlife_presence/internal/handler/http/v1"
	"github.com/shenikar/nightlife_presence/internal/push"
	"github.com/shenikar/nightlife_presence/internal/repository"
	"github.com/shenikar/nightlife_presence/internal/repository/memory"
	"github.com/shenikar/nightlife_presence/internal/service"
	"github.com/shenikar/nightlife_presence/internal/sweeper"
	"github.com/shenikar/nightlife_presence/pkg/logger"
	"github.com/shenikar/nightlife_presence/pkg/postgres"
	redisclient "github.com/shenikar/nightlife_presence/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/nightlife_presence/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Nightlife Presence API
// @version 1.0
// @description Venues, check-ins, friends nearby and invitations for a night out.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// repositories - реализации контрактов хранилища для выбранного бэкенда
type repositories struct {
	tx            service.Transactor
	profiles      service.ProfileRepository
	friendships   service.FriendshipRepository
	venues        service.VenueRepository
	checkins      service.CheckInRepository
	ratings       service.RatingRepository
	invitations   service.InvitationRepository
	notifications service.NotificationRepository
	tokens        service.DeviceTokenRepository
	delivery      push.DeliveryStore
}

// openStorage подключает хранилище; close освобождает ресурсы
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*repositories, func(), error) {
	if cfg.StorageBackend == config.StorageBackendMemory {
		log.Warn("Using in-memory storage. Data is lost on restart.")
		store := memory.NewStore()
		return &repositories{
			tx:            store,
			profiles:      store,
			friendships:   store,
			venues:        store,
			checkins:      store,
			ratings:       store,
			invitations:   store,
			notifications: store,
			tokens:        store,
			delivery:      store,
		}, func() {}, nil
	}

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return nil, nil, err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("Successfully connected to PostgreSQL")

	notifications := repository.NewNotificationRepository(dbpool)
	return &repositories{
		tx:            repository.NewTransactor(dbpool),
		profiles:      repository.NewProfileRepository(dbpool),
		friendships:   repository.NewFriendshipRepository(dbpool),
		venues:        repository.NewVenueRepository(dbpool),
		checkins:      repository.NewCheckInRepository(dbpool),
		ratings:       repository.NewRatingRepository(dbpool),
		invitations:   repository.NewInvitationRepository(dbpool),
		notifications: notifications,
		tokens:        notifications,
		delivery:      notifications,
	}, dbpool.Close, nil
}

func newCORS(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-User-ID"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(cfg.CORSAllowOrigins) == 0 || slices.Contains(cfg.CORSAllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowOrigins
		corsCfg.AllowCredentials = true
	}
	return cors.New(corsCfg)
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer closeStorage()

	// Кэш и очередь push-событий: Redis или локальные заменители
	var (
		appCache  cache.Cache
		publisher push.Publisher
		redisConn *goredis.Client
	)
	if cfg.RedisEnabled {
		redisConn, err = redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisConn.Close()
		log.Info("Successfully connected to Redis")

		appCache = cache.NewRedisCache(redisConn, "nightlife")
		publisher = push.NewRedisPublisher(redisConn)
	}

	// Инициализация и запуск воркера доставки
	pushWorker := push.NewWorker(redisConn, repos.delivery, log, cfg)
	if cfg.RedisEnabled {
		pushWorker.Start(ctx)
	} else {
		log.Warn("Redis disabled. Using in-process cache and direct push delivery.")
		appCache = cache.NewMemoryCache()
		publisher = push.NewDirectPublisher(ctx, pushWorker)
	}

	// Инициализация сервисов
	notifications := service.NewNotificationService(repos.notifications, repos.tokens, publisher, log, cfg)
	social := service.NewSocialGraph(repos.friendships, appCache, log, cfg)
	vibe := service.NewVibeService(repos.venues, repos.checkins, appCache, log, cfg)
	proximity := service.NewProximityService(social, repos.profiles, notifications, log, cfg)
	services := v1.Services{
		Accounts:      service.NewAccountService(repos.tx, repos.profiles, log),
		Social:        social,
		Vibe:          vibe,
		Invitations:   service.NewInvitationService(repos.tx, repos.invitations, repos.profiles, repos.venues, social, notifications, log, cfg),
		Proximity:     proximity,
		CheckIns:      service.NewCheckInService(repos.checkins, repos.venues, social, vibe, proximity, log, cfg),
		Venues:        service.NewVenueService(repos.tx, repos.venues, repos.ratings, repos.checkins, log, cfg),
		Notifications: notifications,
	}

	// Периодическое обслуживание
	sweeper.New(services.Invitations, services.Notifications, services.CheckIns, log, cfg).Start(ctx)

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), newCORS(cfg))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
	// Останавливаем воркер и sweeper
	cancel()

	log.Info("Server gracefully stopped")
}
