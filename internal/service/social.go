package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/cache"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
)

// SocialGraph определяет контракт для симметричного отношения дружбы
type SocialGraph interface {
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	FriendCount(ctx context.Context, userID uuid.UUID) (int, error)
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.UserProfile, error)
	AddFriendship(ctx context.Context, a, b uuid.UUID) error
	RemoveFriendship(ctx context.Context, a, b uuid.UUID) error
	InvalidateFriendCounts(ctx context.Context, userIDs ...uuid.UUID)
}

type socialGraph struct {
	repo   FriendshipRepository
	cache  cache.Cache
	logger *logrus.Logger
	cfg    *config.Config
}

func NewSocialGraph(repo FriendshipRepository, c cache.Cache, logger *logrus.Logger, cfg *config.Config) SocialGraph {
	return &socialGraph{
		repo:   repo,
		cache:  c,
		logger: logger,
		cfg:    cfg,
	}
}

func friendCountKey(userID uuid.UUID) string {
	return fmt.Sprintf("user_friend_count:%s", userID)
}

func (s *socialGraph) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	if a == b {
		return false, nil
	}
	ok, err := s.repo.AreFriends(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("service: could not check friendship: %w", err)
	}
	return ok, nil
}

// FriendCount отдаёт число друзей из кэша, при промахе считает по хранилищу
func (s *socialGraph) FriendCount(ctx context.Context, userID uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "social",
		"method":  "FriendCount",
		"user_id": userID,
	})

	var count int
	hit, err := s.cache.Get(ctx, friendCountKey(userID), &count)
	if err != nil {
		log.WithError(err).Warn("Failed to read friend count from cache")
	}
	if hit {
		return count, nil
	}

	count, err = s.repo.CountFriends(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to count friends in repository")
		return 0, fmt.Errorf("service: could not count friends: %w", err)
	}

	if err := s.cache.Set(ctx, friendCountKey(userID), count, s.cfg.FriendCountCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache friend count")
	}
	return count, nil
}

func (s *socialGraph) ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.UserProfile, error) {
	friends, err := s.repo.ListFriends(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list friends: %w", err)
	}
	for _, f := range friends {
		f.Normalize()
	}
	return friends, nil
}

// AddFriendship добавляет оба направления; повторный вызов ничего не меняет
func (s *socialGraph) AddFriendship(ctx context.Context, a, b uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "social",
		"method":  "AddFriendship",
		"user_a":  a,
		"user_b":  b,
	})
	if a == b {
		return fmt.Errorf("%w: cannot befriend yourself", models.ErrInvalidInput)
	}

	if err := s.repo.AddFriendship(ctx, a, b); err != nil {
		log.WithError(err).Error("Failed to add friendship in repository")
		return fmt.Errorf("service: could not add friendship: %w", err)
	}
	s.InvalidateFriendCounts(ctx, a, b)

	log.Info("Friendship added")
	return nil
}

func (s *socialGraph) RemoveFriendship(ctx context.Context, a, b uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "social",
		"method":  "RemoveFriendship",
		"user_a":  a,
		"user_b":  b,
	})
	if a == b {
		return fmt.Errorf("%w: cannot unfriend yourself", models.ErrInvalidInput)
	}

	if err := s.repo.RemoveFriendship(ctx, a, b); err != nil {
		log.WithError(err).Error("Failed to remove friendship in repository")
		return fmt.Errorf("service: could not remove friendship: %w", err)
	}
	s.InvalidateFriendCounts(ctx, a, b)

	log.Info("Friendship removed")
	return nil
}

// InvalidateFriendCounts сбрасывает закэшированные счётчики; ошибки кэша не фатальны
func (s *socialGraph) InvalidateFriendCounts(ctx context.Context, userIDs ...uuid.UUID) {
	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = friendCountKey(id)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate friend count cache")
	}
}
