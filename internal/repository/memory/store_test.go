package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/push"
	"github.com/shenikar/nightlife_presence/internal/repository/memory"
	"github.com/shenikar/nightlife_presence/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ service.Transactor             = (*memory.Store)(nil)
	_ service.ProfileRepository      = (*memory.Store)(nil)
	_ service.FriendshipRepository   = (*memory.Store)(nil)
	_ service.VenueRepository        = (*memory.Store)(nil)
	_ service.CheckInRepository      = (*memory.Store)(nil)
	_ service.RatingRepository       = (*memory.Store)(nil)
	_ service.InvitationRepository   = (*memory.Store)(nil)
	_ service.NotificationRepository = (*memory.Store)(nil)
	_ service.DeviceTokenRepository  = (*memory.Store)(nil)
	_ push.DeliveryStore             = (*memory.Store)(nil)
)

func createUser(t *testing.T, s *memory.Store, name string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()
	require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: id, Username: name}))
	require.NoError(t, s.CreateProfile(ctx, &models.UserProfile{UserID: id}))
	return id
}

func TestStore_WithinTxRollsBackOnError(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		id := uuid.New()
		require.NoError(t, s.CreateAccount(ctx, &models.Account{ID: id, Username: "ghost"}))
		require.NoError(t, s.CreateProfile(ctx, &models.UserProfile{UserID: id}))
		return boom
	})

	require.ErrorIs(t, err, boom)
	// имя снова свободно: аккаунт откатился
	createUser(t, s, "ghost")
}

func TestStore_NestedTxReusesOuter(t *testing.T) {
	s := memory.NewStore()
	a := createUser(t, s, "alice")
	b := createUser(t, s, "bob")
	ctx := context.Background()

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		return s.WithinTx(ctx, func(ctx context.Context) error {
			return s.AddFriendship(ctx, a, b)
		})
	})
	require.NoError(t, err)

	ok, err := s.AreFriends(ctx, b, a)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_ProfileKeepsPrivacyInvariant(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	id := createUser(t, s, "alice")

	err := s.UpdateProfile(ctx, &models.UserProfile{
		UserID:          id,
		LocationSharing: false,
		Location:        &models.Location{Latitude: 40.7, Longitude: -74},
	})
	require.NoError(t, err)

	p, err := s.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, p.Location)
	assert.Equal(t, "alice", p.Username)
}

func TestStore_DuplicateUsername(t *testing.T) {
	s := memory.NewStore()
	createUser(t, s, "alice")

	err := s.CreateAccount(context.Background(), &models.Account{ID: uuid.New(), Username: "Alice"})
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestStore_FriendshipSymmetricAndIdempotent(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	a := createUser(t, s, "alice")
	b := createUser(t, s, "bob")

	require.NoError(t, s.AddFriendship(ctx, a, b))
	require.NoError(t, s.AddFriendship(ctx, b, a))

	countA, _ := s.CountFriends(ctx, a)
	countB, _ := s.CountFriends(ctx, b)
	assert.Equal(t, 1, countA)
	assert.Equal(t, 1, countB)

	require.NoError(t, s.RemoveFriendship(ctx, b, a))
	ok, _ := s.AreFriends(ctx, a, b)
	assert.False(t, ok)
	ok, _ = s.AreFriends(ctx, b, a)
	assert.False(t, ok)
}

func TestStore_RatingCreateAndUpsert(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	user := createUser(t, s, "alice")
	venueID := uuid.New()

	first := &models.VenueRating{ID: uuid.New(), UserID: user, VenueID: venueID, Rating: 4}
	require.NoError(t, s.CreateRating(ctx, first))

	err := s.CreateRating(ctx, &models.VenueRating{ID: uuid.New(), UserID: user, VenueID: venueID, Rating: 2})
	assert.ErrorIs(t, err, models.ErrConflict)

	update := &models.VenueRating{ID: uuid.New(), UserID: user, VenueID: venueID, Rating: 2}
	require.NoError(t, s.UpsertRating(ctx, update))
	assert.Equal(t, first.ID, update.ID)

	avg, err := s.AverageRating(ctx, venueID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, avg)
}

func TestStore_PendingFriendRequestUnique(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	a := createUser(t, s, "alice")
	b := createUser(t, s, "bob")

	newRequest := func(from, to uuid.UUID) *models.Invitation {
		return &models.Invitation{
			ID: uuid.New(), Kind: models.InvitationFriendRequest,
			SenderID: from, ReceiverID: to, Status: models.InvitationPending,
		}
	}

	require.NoError(t, s.CreateInvitation(ctx, newRequest(a, b)))
	assert.ErrorIs(t, s.CreateInvitation(ctx, newRequest(a, b)), models.ErrConflict)
	// обратное направление - отдельное приглашение
	assert.NoError(t, s.CreateInvitation(ctx, newRequest(b, a)))
}

func TestStore_ExpireOverdue(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	a := createUser(t, s, "alice")
	b := createUser(t, s, "bob")
	now := time.Now().UTC()
	past := now.Add(-time.Minute)
	future := now.Add(time.Hour)

	overdue := &models.Invitation{ID: uuid.New(), Kind: models.InvitationMeetupPing, SenderID: a, ReceiverID: b,
		Status: models.InvitationPending, ExpiresAt: &past}
	fresh := &models.Invitation{ID: uuid.New(), Kind: models.InvitationMeetupPing, SenderID: a, ReceiverID: b,
		Status: models.InvitationPending, ExpiresAt: &future}
	require.NoError(t, s.CreateInvitation(ctx, overdue))
	require.NoError(t, s.CreateInvitation(ctx, fresh))

	n, err := s.ExpireOverdue(ctx, now, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, _ := s.GetInvitation(ctx, overdue.ID)
	assert.Equal(t, models.InvitationExpired, got.Status)
	got, _ = s.GetInvitation(ctx, fresh.ID)
	assert.Equal(t, models.InvitationPending, got.Status)

	n, err = s.ExpireOverdue(ctx, now, nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_ListVenuesByDistance(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	center := models.Location{Latitude: 40.7128, Longitude: -74.0060}

	near := &models.Venue{ID: uuid.New(), Name: "near", Category: models.VenueCategoryBar,
		Location: models.Location{Latitude: 40.7130, Longitude: -74.0062}}
	far := &models.Venue{ID: uuid.New(), Name: "far", Category: models.VenueCategoryBar,
		Location: models.Location{Latitude: 40.80, Longitude: -74.0060}}
	club := &models.Venue{ID: uuid.New(), Name: "club", Category: models.VenueCategoryClub,
		Location: center}
	for _, v := range []*models.Venue{near, far, club} {
		require.NoError(t, s.CreateVenue(ctx, v))
	}

	radius := 5000.0
	items, err := s.ListVenues(ctx, models.VenueFilter{
		Category:     models.VenueCategoryBar,
		Center:       &center,
		RadiusMeters: &radius,
		Page:         1,
		PageSize:     10,
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, near.ID, items[0].Venue.ID)
	assert.InDelta(t, 27.9, items[0].DistanceMeters, 1)
}

func TestStore_FeedHidesFriendsPrivateCheckIns(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	viewer := createUser(t, s, "alice")
	friend := createUser(t, s, "bob")
	venue := &models.Venue{ID: uuid.New(), Name: "bar", Category: models.VenueCategoryBar}
	require.NoError(t, s.CreateVenue(ctx, venue))

	base := time.Now().UTC()
	checkIns := []*models.CheckIn{
		{ID: uuid.New(), UserID: viewer, VenueID: venue.ID, VibeRating: models.VibeChill, Visibility: models.VisibilityPrivate, Timestamp: base},
		{ID: uuid.New(), UserID: friend, VenueID: venue.ID, VibeRating: models.VibeLively, Visibility: models.VisibilityFriends, Timestamp: base.Add(time.Minute)},
		{ID: uuid.New(), UserID: friend, VenueID: venue.ID, VibeRating: models.VibeEmpty, Visibility: models.VisibilityPrivate, Timestamp: base.Add(2 * time.Minute)},
	}
	for _, c := range checkIns {
		require.NoError(t, s.CreateCheckIn(ctx, c))
	}

	feed, err := s.ListFeed(ctx, viewer, []uuid.UUID{friend}, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, checkIns[1].ID, feed[0].ID)
	assert.Equal(t, checkIns[0].ID, feed[1].ID)
}

func TestStore_DeviceTokens(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	user := createUser(t, s, "alice")
	old := time.Now().Add(-48 * time.Hour)

	tok := &models.DeviceToken{ID: uuid.New(), UserID: user, Token: "tok-1", DeviceType: models.DeviceIOS, LastUsed: old}
	require.NoError(t, s.UpsertDeviceToken(ctx, tok))

	tokens, err := s.ListActiveTokens(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-1"}, tokens)

	require.NoError(t, s.DeactivateTokens(ctx, []string{"tok-1"}))
	tokens, _ = s.ListActiveTokens(ctx, user)
	assert.Empty(t, tokens)

	n, err := s.DeleteInactiveTokensBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestStore_ExpiredContextReturnsTimeout(t *testing.T) {
	s := memory.NewStore()
	id := createUser(t, s, "alice")

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	<-ctx.Done()

	_, err := s.GetProfile(ctx, id)
	assert.ErrorIs(t, err, models.ErrTimeout)

	err = s.AddFriendship(ctx, id, uuid.New())
	assert.ErrorIs(t, err, models.ErrTimeout)

	friends, err := s.CountFriends(context.Background(), id)
	require.NoError(t, err)
	assert.Zero(t, friends)
}

func TestStore_TimeoutInsideTxRollsBack(t *testing.T) {
	s := memory.NewStore()
	a := createUser(t, s, "alice")
	b := createUser(t, s, "bob")

	ctx, cancel := context.WithCancel(context.Background())
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.AddFriendship(ctx, a, b); err != nil {
			return err
		}
		cancel()
		_, err := s.GetProfile(ctx, a)
		return err
	})
	assert.ErrorIs(t, err, models.ErrTimeout)

	ok, err := s.AreFriends(context.Background(), a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}
