package service

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/cache"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/repository/memory"
	"github.com/shenikar/nightlife_presence/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testClock - управляемые часы, общие для всех сервисов фикстуры
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fixture собирает сервисы поверх хранилища в памяти
type fixture struct {
	t        *testing.T
	ctx      context.Context
	clock    *testClock
	cfg      *config.Config
	logger   *logrus.Logger
	store    *memory.Store
	cache    *cache.MemoryCache
	notifier *mocks.MockNotifier

	accounts    *accountService
	social      *socialGraph
	vibe        *vibeService
	invitations *invitationService
	proximity   *proximityService
	checkins    *checkInService
	venues      *venueService
}

func testConfig() *config.Config {
	return &config.Config{
		VibeWindow:                2 * time.Hour,
		VibeCacheTTL:              5 * time.Minute,
		FriendCountCacheTTL:       time.Hour,
		NearbyAlertRadiusMeters:   5000,
		DefaultNearbyRadiusMeters: 1000,
		DefaultVenueRadiusMeters:  5000,
		MeetupPingTTL:             2 * time.Hour,
		PopularityWindow:          24 * time.Hour,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	clock := &testClock{now: time.Date(2024, 6, 14, 22, 30, 0, 0, time.UTC)}
	cfg := testConfig()
	store := memory.NewStore()
	c := cache.NewMemoryCache().WithClock(clock.Now)
	notifier := mocks.NewMockNotifier(ctrl)

	f := &fixture{
		t:        t,
		ctx:      context.Background(),
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
		store:    store,
		cache:    c,
		notifier: notifier,
	}
	f.wire(notifier)
	return f
}

// wire пересобирает сервисы с заданным Notifier
func (f *fixture) wire(notifier Notifier) {
	f.accounts = NewAccountService(f.store, f.store, f.logger).(*accountService)
	f.accounts.now = f.clock.Now

	f.social = NewSocialGraph(f.store, f.cache, f.logger, f.cfg).(*socialGraph)

	f.vibe = NewVibeService(f.store, f.store, f.cache, f.logger, f.cfg).(*vibeService)
	f.vibe.now = f.clock.Now

	f.invitations = NewInvitationService(f.store, f.store, f.store, f.store, f.social, notifier, f.logger, f.cfg).(*invitationService)
	f.invitations.now = f.clock.Now

	f.proximity = NewProximityService(f.social, f.store, notifier, f.logger, f.cfg).(*proximityService)

	f.checkins = NewCheckInService(f.store, f.store, f.social, f.vibe, f.proximity, f.logger, f.cfg).(*checkInService)
	f.checkins.now = f.clock.Now

	f.venues = NewVenueService(f.store, f.store, f.store, f.store, f.logger, f.cfg).(*venueService)
	f.venues.now = f.clock.Now
}

// allowNotifications разрешает любые уведомления, когда тест их не проверяет
func (f *fixture) allowNotifications() {
	f.notifier.EXPECT().
		Notify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil).
		AnyTimes()
}

func (f *fixture) user(name string) uuid.UUID {
	f.t.Helper()
	account, _, err := f.accounts.CreateAccount(f.ctx, name, name+"@example.com")
	require.NoError(f.t, err)
	return account.ID
}

// userAt создает пользователя, делящегося координатами
func (f *fixture) userAt(name string, loc models.Location) uuid.UUID {
	f.t.Helper()
	id := f.user(name)
	sharing := true
	_, err := f.accounts.UpdateProfile(f.ctx, id, models.ProfileUpdate{LocationSharing: &sharing, Location: &loc})
	require.NoError(f.t, err)
	return id
}

func (f *fixture) befriend(a, b uuid.UUID) {
	f.t.Helper()
	require.NoError(f.t, f.store.AddFriendship(f.ctx, a, b))
}

func (f *fixture) venue(name string, loc models.Location) *models.Venue {
	f.t.Helper()
	v := &models.Venue{Name: name, Category: models.VenueCategoryBar, Location: loc}
	require.NoError(f.t, f.venues.CreateVenue(f.ctx, v))
	return v
}

// checkIn пишет чекин напрямую в хранилище с текущим временем часов
func (f *fixture) checkIn(userID, venueID uuid.UUID, rating models.VibeRating, visibility models.Visibility) *models.CheckIn {
	f.t.Helper()
	c := &models.CheckIn{
		ID:         uuid.New(),
		UserID:     userID,
		VenueID:    venueID,
		VibeRating: rating,
		Visibility: visibility,
		Timestamp:  f.clock.Now(),
	}
	require.NoError(f.t, f.store.CreateCheckIn(f.ctx, c))
	return c
}
