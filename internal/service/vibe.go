package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/cache"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// VibeService отвечает на вопрос "какая сейчас атмосфера в заведении"
type VibeService interface {
	GetCurrentVibe(ctx context.Context, venueID uuid.UUID) (*models.VenueVibe, error)
	// Invalidate сбрасывает кэш сразу после нового или удалённого чекина
	Invalidate(ctx context.Context, venueID uuid.UUID) error
}

type vibeService struct {
	venues   VenueRepository
	checkins CheckInRepository
	cache    cache.Cache
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time

	group singleflight.Group
	slots sync.Map // uuid.UUID -> *vibeSlot
}

// vibeSlot сериализует запись и инвалидацию кэша одного заведения.
// Поколение растёт при каждой инвалидации; результат старого поколения в кэш не пишется.
type vibeSlot struct {
	mu  sync.Mutex
	gen uint64
}

func NewVibeService(venues VenueRepository, checkins CheckInRepository, c cache.Cache, logger *logrus.Logger, cfg *config.Config) VibeService {
	return &vibeService{
		venues:   venues,
		checkins: checkins,
		cache:    c,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

func venueVibeKey(venueID uuid.UUID) string {
	return fmt.Sprintf("venue_vibe:%s", venueID)
}

func (s *vibeService) slot(venueID uuid.UUID) *vibeSlot {
	v, _ := s.slots.LoadOrStore(venueID, &vibeSlot{})
	return v.(*vibeSlot)
}

func (s *vibeSlot) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *vibeService) GetCurrentVibe(ctx context.Context, venueID uuid.UUID) (*models.VenueVibe, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "vibe",
		"method":   "GetCurrentVibe",
		"venue_id": venueID,
	})

	slot := s.slot(venueID)
	gen := slot.generation()

	var cached models.VenueVibe
	hit, err := s.cache.Get(ctx, venueVibeKey(venueID), &cached)
	if err != nil {
		log.WithError(err).Warn("Failed to read vibe from cache")
	}
	if hit {
		log.Debug("Vibe served from cache")
		return &cached, nil
	}

	// Одновременные промахи одного поколения считаются один раз.
	// Общий расчёт не зависит от отмены контекста первого вызывающего.
	key := fmt.Sprintf("%s#%d", venueVibeKey(venueID), gen)
	ch := s.group.DoChan(key, func() (any, error) {
		computeCtx := context.WithoutCancel(ctx)
		if s.cfg.RequestTimeout > 0 {
			var cancel context.CancelFunc
			computeCtx, cancel = context.WithTimeout(computeCtx, s.cfg.RequestTimeout)
			defer cancel()
		}
		return s.compute(computeCtx, log, venueID, slot, gen)
	})

	select {
	case <-ctx.Done():
		log.WithError(ctx.Err()).Warn("Vibe request cancelled while waiting for computation")
		return nil, fmt.Errorf("service: could not get vibe: %w", models.ErrTimeout)
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		vibe := res.Val.(models.VenueVibe)
		return &vibe, nil
	}
}

func (s *vibeService) compute(ctx context.Context, log *logrus.Entry, venueID uuid.UUID, slot *vibeSlot, gen uint64) (models.VenueVibe, error) {
	if _, err := s.venues.GetVenue(ctx, venueID); err != nil {
		log.WithError(err).Warn("Failed to get venue for vibe")
		return models.VenueVibe{}, fmt.Errorf("service: could not get venue: %w", err)
	}

	since := s.now().Add(-s.cfg.VibeWindow)
	samples, err := s.checkins.ListVibeSamples(ctx, venueID, since)
	if err != nil {
		log.WithError(err).Error("Failed to list recent check-ins")
		return models.VenueVibe{}, fmt.Errorf("service: could not list recent check-ins: %w", err)
	}

	vibe := AggregateVibe(samples)

	slot.mu.Lock()
	if slot.gen == gen {
		if err := s.cache.Set(ctx, venueVibeKey(venueID), vibe, s.cfg.VibeCacheTTL); err != nil {
			log.WithError(err).Warn("Failed to cache vibe")
		}
	} else {
		log.Debug("Vibe invalidated during computation, skipping cache write")
	}
	slot.mu.Unlock()

	log.WithFields(logrus.Fields{"vibe": vibe.Rating, "count": vibe.CheckInsCount}).Info("Vibe computed")
	return vibe, nil
}

func (s *vibeService) Invalidate(ctx context.Context, venueID uuid.UUID) error {
	slot := s.slot(venueID)
	slot.mu.Lock()
	defer slot.mu.Unlock()

	slot.gen++
	if err := s.cache.Delete(ctx, venueVibeKey(venueID)); err != nil {
		return fmt.Errorf("service: could not invalidate vibe cache: %w", err)
	}
	return nil
}

// AggregateVibe выбирает самую частую оценку. При равенстве побеждает оценка
// с самым свежим чекином, затем порядок models.VibeRatings.
func AggregateVibe(samples []models.VibeSample) models.VenueVibe {
	type tally struct {
		count  int
		latest time.Time
	}

	tallies := make(map[models.VibeRating]*tally)
	total := 0
	for _, s := range samples {
		if !s.Rating.Valid() {
			continue
		}
		total++
		t, ok := tallies[s.Rating]
		if !ok {
			t = &tally{}
			tallies[s.Rating] = t
		}
		t.count++
		if s.Timestamp.After(t.latest) {
			t.latest = s.Timestamp
		}
	}

	if total == 0 {
		return models.VenueVibe{Rating: models.VibeUnknown, CheckInsCount: 0}
	}

	var (
		best      models.VibeRating
		bestTally *tally
	)
	for _, rating := range models.VibeRatings {
		t, ok := tallies[rating]
		if !ok {
			continue
		}
		if bestTally == nil ||
			t.count > bestTally.count ||
			(t.count == bestTally.count && t.latest.After(bestTally.latest)) {
			best, bestTally = rating, t
		}
	}

	return models.VenueVibe{Rating: best, CheckInsCount: total}
}
