package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/geo"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
)

// ProximityService отвечает на вопрос "кто из друзей рядом" с учётом приватности
type ProximityService interface {
	NearbyFriends(ctx context.Context, userID uuid.UUID, center models.Location, radiusMeters float64) ([]models.NearbyFriend, error)
	// NotifyNearbyFriends оповещает друзей автора, находящихся рядом с заведением чекина.
	// Возвращает число отправленных событий.
	NotifyNearbyFriends(ctx context.Context, checkIn *models.CheckIn, venue *models.Venue) (int, error)
	CanView(ctx context.Context, viewerID uuid.UUID, checkIn *models.CheckIn) (bool, error)
}

type proximityService struct {
	social   SocialGraph
	profiles ProfileRepository
	notifier Notifier
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewProximityService(social SocialGraph, profiles ProfileRepository, notifier Notifier, logger *logrus.Logger, cfg *config.Config) ProximityService {
	return &proximityService{
		social:   social,
		profiles: profiles,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
	}
}

func (s *proximityService) NearbyFriends(ctx context.Context, userID uuid.UUID, center models.Location, radiusMeters float64) ([]models.NearbyFriend, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "NearbyFriends",
		"user_id": userID,
		"radius":  radiusMeters,
	})

	if err := geo.Validate(center); err != nil {
		return nil, err
	}

	friends, err := s.social.ListFriends(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to list friends")
		return nil, err
	}

	candidates := make([]*models.UserProfile, 0, len(friends))
	for _, f := range friends {
		if f.UserID != userID {
			candidates = append(candidates, f)
		}
	}

	hits, err := geo.Query(center, radiusMeters, candidates, (*models.UserProfile).SharedLocation)
	if err != nil {
		return nil, err
	}

	result := make([]models.NearbyFriend, len(hits))
	for i, h := range hits {
		result[i] = models.NearbyFriend{Profile: h.Entity, DistanceMeters: h.DistanceMeters}
	}
	log.WithField("count", len(result)).Debug("Nearby friends resolved")
	return result, nil
}

func (s *proximityService) NotifyNearbyFriends(ctx context.Context, checkIn *models.CheckIn, venue *models.Venue) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "proximity",
		"method":     "NotifyNearbyFriends",
		"checkin_id": checkIn.ID,
		"user_id":    checkIn.UserID,
		"venue_id":   venue.ID,
	})

	friends, err := s.social.ListFriends(ctx, checkIn.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to list friends")
		return 0, err
	}

	hits, err := geo.Query(venue.Location, s.cfg.NearbyAlertRadiusMeters, friends, (*models.UserProfile).SharedLocation)
	if err != nil {
		return 0, fmt.Errorf("service: could not query nearby friends: %w", err)
	}

	authorName := "Your friend"
	if author, err := s.profiles.GetProfile(ctx, checkIn.UserID); err == nil && author.Username != "" {
		authorName = author.Username
	}

	sent := 0
	for _, h := range hits {
		if h.Entity.UserID == checkIn.UserID {
			continue
		}
		dispatch(ctx, s.notifier, log, h.Entity.UserID, models.NotificationNearbyFriend,
			"Friend Nearby!",
			fmt.Sprintf("%s is at %s", authorName, venue.Name),
			map[string]string{
				"friend_id": checkIn.UserID.String(),
				"venue_id":  venue.ID.String(),
			})
		sent++
	}

	log.WithField("notified", sent).Info("Nearby friends notified")
	return sent, nil
}

// CanView: автор видит всегда, public - все, friends - только друзья автора, private - никто кроме автора.
func (s *proximityService) CanView(ctx context.Context, viewerID uuid.UUID, checkIn *models.CheckIn) (bool, error) {
	if viewerID == checkIn.UserID {
		return true, nil
	}
	switch checkIn.Visibility {
	case models.VisibilityPublic:
		return true, nil
	case models.VisibilityFriends:
		return s.social.AreFriends(ctx, viewerID, checkIn.UserID)
	default:
		return false, nil
	}
}
