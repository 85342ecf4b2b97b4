package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultFeedLimit = 50
	maxFeedLimit     = 200
)

// CheckInService создаёт чекины и отдаёт их с учётом видимости
type CheckInService interface {
	CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error
	GetCheckIn(ctx context.Context, viewerID, id uuid.UUID) (*models.CheckIn, error)
	ListFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*models.CheckIn, error)
	DeleteCheckIn(ctx context.Context, actorID, id uuid.UUID) error
	PruneCheckIns(ctx context.Context, olderThan time.Duration) (int64, error)
}

type checkInService struct {
	repo      CheckInRepository
	venues    VenueRepository
	social    SocialGraph
	vibe      VibeService
	proximity ProximityService
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewCheckInService(
	repo CheckInRepository,
	venues VenueRepository,
	social SocialGraph,
	vibe VibeService,
	proximity ProximityService,
	logger *logrus.Logger,
	cfg *config.Config,
) CheckInService {
	return &checkInService{
		repo:      repo,
		venues:    venues,
		social:    social,
		vibe:      vibe,
		proximity: proximity,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CreateCheckIn сохраняет чекин, сбрасывает кэш атмосферы заведения и оповещает друзей рядом.
// Сбой оповещения не отменяет чекин.
func (s *checkInService) CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "checkins",
		"method":   "CreateCheckIn",
		"user_id":  checkIn.UserID,
		"venue_id": checkIn.VenueID,
	})
	log.Info("Attempting to create check-in")

	if !checkIn.VibeRating.Valid() {
		return fmt.Errorf("%w: unknown vibe rating %q", models.ErrInvalidInput, checkIn.VibeRating)
	}
	if checkIn.Visibility == "" {
		checkIn.Visibility = models.VisibilityPublic
	}
	if !checkIn.Visibility.Valid() {
		return fmt.Errorf("%w: unknown visibility %q", models.ErrInvalidInput, checkIn.Visibility)
	}

	venue, err := s.venues.GetVenue(ctx, checkIn.VenueID)
	if err != nil {
		log.WithError(err).Warn("Failed to get venue for check-in")
		return fmt.Errorf("service: could not get venue: %w", err)
	}

	checkIn.ID = uuid.New()
	checkIn.Timestamp = s.now().UTC()
	if err := s.repo.CreateCheckIn(ctx, checkIn); err != nil {
		log.WithError(err).Error("Failed to create check-in in repository")
		return fmt.Errorf("service: could not create check-in: %w", err)
	}

	if err := s.vibe.Invalidate(ctx, checkIn.VenueID); err != nil {
		log.WithError(err).Warn("Failed to invalidate vibe cache")
	}

	if _, err := s.proximity.NotifyNearbyFriends(ctx, checkIn, venue); err != nil {
		log.WithError(err).Warn("Failed to notify nearby friends")
	}

	log.WithField("checkin_id", checkIn.ID).Info("Check-in created successfully")
	return nil
}

// GetCheckIn маскирует невидимый чекин под ErrNotFound
func (s *checkInService) GetCheckIn(ctx context.Context, viewerID, id uuid.UUID) (*models.CheckIn, error) {
	checkIn, err := s.repo.GetCheckIn(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get check-in: %w", err)
	}
	ok, err := s.proximity.CanView(ctx, viewerID, checkIn)
	if err != nil {
		return nil, fmt.Errorf("service: could not check visibility: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("service: could not get check-in %s: %w", id, models.ErrNotFound)
	}
	return checkIn, nil
}

// ListFeed - собственные чекины зрителя и не приватные чекины его друзей, новые первыми
func (s *checkInService) ListFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*models.CheckIn, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkins",
		"method":  "ListFeed",
		"user_id": viewerID,
	})
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}

	friends, err := s.social.ListFriends(ctx, viewerID)
	if err != nil {
		log.WithError(err).Error("Failed to list friends for feed")
		return nil, err
	}
	friendIDs := make([]uuid.UUID, 0, len(friends))
	for _, f := range friends {
		friendIDs = append(friendIDs, f.UserID)
	}

	feed, err := s.repo.ListFeed(ctx, viewerID, friendIDs, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins")
		return nil, fmt.Errorf("service: could not list check-ins: %w", err)
	}
	return feed, nil
}

// DeleteCheckIn удаляет чекин владельца; чужой чекин неотличим от отсутствующего
func (s *checkInService) DeleteCheckIn(ctx context.Context, actorID, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "checkins",
		"method":     "DeleteCheckIn",
		"checkin_id": id,
		"user_id":    actorID,
	})

	checkIn, err := s.repo.GetCheckIn(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get check-in: %w", err)
	}
	if checkIn.UserID != actorID {
		log.Warn("Attempted to delete a foreign check-in")
		return fmt.Errorf("service: could not delete check-in %s: %w", id, models.ErrNotFound)
	}

	if err := s.repo.DeleteCheckIn(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			log.WithError(err).Error("Failed to delete check-in in repository")
		}
		return fmt.Errorf("service: could not delete check-in: %w", err)
	}

	if err := s.vibe.Invalidate(ctx, checkIn.VenueID); err != nil {
		log.WithError(err).Warn("Failed to invalidate vibe cache")
	}
	log.Info("Check-in deleted successfully")
	return nil
}

func (s *checkInService) PruneCheckIns(ctx context.Context, olderThan time.Duration) (int64, error) {
	n, err := s.repo.DeleteCheckInsBefore(ctx, s.now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("service: could not prune check-ins: %w", err)
	}
	return n, nil
}
