package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/geo"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
	maxReviewLength = 1000
)

// VenueService управляет заведениями и их оценками
type VenueService interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	GetVenue(ctx context.Context, id uuid.UUID) (*models.Venue, error)
	// UpdateVenue меняет описательные поля всегда, а координаты и категорию - только до первого чекина
	UpdateVenue(ctx context.Context, id uuid.UUID, update models.VenueUpdate) (*models.Venue, error)
	ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.VenueDistance, error)
	// PopularityScore = 0.7 * чекины за окно популярности + 0.3 * средняя оценка
	PopularityScore(ctx context.Context, venueID uuid.UUID) (float64, error)
	CreateRating(ctx context.Context, rating *models.VenueRating) error
	UpsertRating(ctx context.Context, rating *models.VenueRating) error
	ListRatings(ctx context.Context, venueID uuid.UUID) ([]*models.VenueRating, error)
}

type venueService struct {
	tx       Transactor
	venues   VenueRepository
	ratings  RatingRepository
	checkins CheckInRepository
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

func NewVenueService(tx Transactor, venues VenueRepository, ratings RatingRepository, checkins CheckInRepository, logger *logrus.Logger, cfg *config.Config) VenueService {
	return &venueService{
		tx:       tx,
		venues:   venues,
		ratings:  ratings,
		checkins: checkins,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

// CreateVenue создает заведение
func (s *venueService) CreateVenue(ctx context.Context, venue *models.Venue) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "venues",
		"method":  "CreateVenue",
		"name":    venue.Name,
	})
	log.Info("Attempting to create a new venue")

	venue.Name = strings.TrimSpace(venue.Name)
	if venue.Name == "" {
		return fmt.Errorf("%w: venue name is required", models.ErrInvalidInput)
	}
	if !venue.Category.Valid() {
		return fmt.Errorf("%w: unknown venue category %q", models.ErrInvalidInput, venue.Category)
	}
	if err := geo.Validate(venue.Location); err != nil {
		return err
	}

	now := s.now().UTC()
	venue.ID = uuid.New()
	venue.CreatedAt = now
	venue.UpdatedAt = now
	if err := s.venues.CreateVenue(ctx, venue); err != nil {
		log.WithError(err).Error("Failed to create venue in repository")
		return fmt.Errorf("service: could not create venue: %w", err)
	}

	log.WithField("venue_id", venue.ID).Info("Venue created successfully")
	return nil
}

func (s *venueService) GetVenue(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	venue, err := s.venues.GetVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get venue: %w", err)
	}
	return venue, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, id uuid.UUID, update models.VenueUpdate) (*models.Venue, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "venues",
		"method":   "UpdateVenue",
		"venue_id": id,
	})
	log.Info("Attempting to update venue")

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: venue name is required", models.ErrInvalidInput)
		}
		update.Name = &name
	}
	if update.Category != nil && !update.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown venue category %q", models.ErrInvalidInput, *update.Category)
	}
	if update.Location != nil {
		if err := geo.Validate(*update.Location); err != nil {
			return nil, err
		}
	}

	var venue *models.Venue
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.venues.GetVenueForUpdate(ctx, id)
		if err != nil {
			return err
		}

		locationChanged := update.Location != nil && *update.Location != current.Location
		categoryChanged := update.Category != nil && *update.Category != current.Category
		if locationChanged || categoryChanged {
			referenced, err := s.checkins.CountCheckInsSince(ctx, id, time.Time{})
			if err != nil {
				return err
			}
			if referenced > 0 {
				return fmt.Errorf("%w: location and category are fixed once the venue has check-ins", models.ErrConflict)
			}
		}

		if update.Name != nil {
			current.Name = *update.Name
		}
		if update.Address != nil {
			current.Address = strings.TrimSpace(*update.Address)
		}
		if update.City != nil {
			current.City = strings.TrimSpace(*update.City)
		}
		if update.Description != nil {
			current.Description = *update.Description
		}
		if update.Location != nil {
			current.Location = *update.Location
		}
		if update.Category != nil {
			current.Category = *update.Category
		}
		current.UpdatedAt = s.now().UTC()

		if err := s.venues.UpdateVenue(ctx, current); err != nil {
			return err
		}
		venue = current
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update venue")
		return nil, fmt.Errorf("service: could not update venue: %w", err)
	}

	log.Info("Venue updated successfully")
	return venue, nil
}

// ListVenues возвращает страницу заведений; с центром - в радиусе и по возрастанию расстояния
func (s *venueService) ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.VenueDistance, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "venues",
		"method":  "ListVenues",
	})

	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.PageSize <= 0 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown venue category %q", models.ErrInvalidInput, filter.Category)
	}
	if filter.Center != nil {
		if err := geo.Validate(*filter.Center); err != nil {
			return nil, err
		}
		if filter.RadiusMeters == nil {
			radius := s.cfg.DefaultVenueRadiusMeters
			filter.RadiusMeters = &radius
		}
		if *filter.RadiusMeters < 0 {
			return nil, fmt.Errorf("%w: radius must not be negative", models.ErrInvalidInput)
		}
	}

	venues, err := s.venues.ListVenues(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list venues in repository")
		return nil, fmt.Errorf("service: could not list venues: %w", err)
	}
	return venues, nil
}

func (s *venueService) PopularityScore(ctx context.Context, venueID uuid.UUID) (float64, error) {
	if _, err := s.venues.GetVenue(ctx, venueID); err != nil {
		return 0, fmt.Errorf("service: could not get venue: %w", err)
	}
	recent, err := s.checkins.CountCheckInsSince(ctx, venueID, s.now().Add(-s.cfg.PopularityWindow))
	if err != nil {
		return 0, fmt.Errorf("service: could not count check-ins: %w", err)
	}
	avg, err := s.ratings.AverageRating(ctx, venueID)
	if err != nil {
		return 0, fmt.Errorf("service: could not get average rating: %w", err)
	}
	return PopularityScore(recent, avg), nil
}

// PopularityScore округляет результат до двух знаков
func PopularityScore(recentCheckIns int, averageRating float64) float64 {
	score := 0.7*float64(recentCheckIns) + 0.3*averageRating
	return math.Round(score*100) / 100
}

// CreateRating отклоняет повторную оценку той же пары (user, venue) с ErrConflict
func (s *venueService) CreateRating(ctx context.Context, rating *models.VenueRating) error {
	return s.saveRating(ctx, "CreateRating", rating, s.ratings.CreateRating)
}

// UpsertRating создаёт оценку или обновляет существующую
func (s *venueService) UpsertRating(ctx context.Context, rating *models.VenueRating) error {
	return s.saveRating(ctx, "UpsertRating", rating, s.ratings.UpsertRating)
}

func (s *venueService) saveRating(ctx context.Context, method string, rating *models.VenueRating, save func(context.Context, *models.VenueRating) error) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "venues",
		"method":   method,
		"user_id":  rating.UserID,
		"venue_id": rating.VenueID,
	})

	if rating.Rating < models.MinRating || rating.Rating > models.MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d", models.ErrInvalidInput, models.MinRating, models.MaxRating)
	}
	if len([]rune(rating.Review)) > maxReviewLength {
		return fmt.Errorf("%w: review must be at most %d characters", models.ErrInvalidInput, maxReviewLength)
	}
	if _, err := s.venues.GetVenue(ctx, rating.VenueID); err != nil {
		return fmt.Errorf("service: could not get venue: %w", err)
	}

	now := s.now().UTC()
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	rating.CreatedAt = now
	rating.UpdatedAt = now
	if err := save(ctx, rating); err != nil {
		log.WithError(err).Warn("Failed to save rating")
		return fmt.Errorf("service: could not save rating: %w", err)
	}

	log.WithField("rating_id", rating.ID).Info("Rating saved successfully")
	return nil
}

func (s *venueService) ListRatings(ctx context.Context, venueID uuid.UUID) ([]*models.VenueRating, error) {
	if _, err := s.venues.GetVenue(ctx, venueID); err != nil {
		return nil, fmt.Errorf("service: could not get venue: %w", err)
	}
	items, err := s.ratings.ListRatings(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list ratings: %w", err)
	}
	return items, nil
}
