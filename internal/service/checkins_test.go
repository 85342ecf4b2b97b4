package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateCheckIn_Success(t *testing.T) {
	f := newFixture(t)
	user := f.user("alice")
	venue := f.venue("Blue Note", locA)

	checkIn := &models.CheckIn{UserID: user, VenueID: venue.ID, VibeRating: models.VibeChill}
	err := f.checkins.CreateCheckIn(f.ctx, checkIn)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, checkIn.ID)
	assert.Equal(t, models.VisibilityPublic, checkIn.Visibility)
	assert.Equal(t, f.clock.Now(), checkIn.Timestamp)

	stored, err := f.checkins.GetCheckIn(f.ctx, user, checkIn.ID)
	require.NoError(t, err)
	assert.Equal(t, *checkIn, *stored)
}

func TestCreateCheckIn_InvalidatesVibeCache(t *testing.T) {
	f := newFixture(t)
	user := f.user("alice")
	venue := f.venue("Blue Note", locA)

	vibe, err := f.vibe.GetCurrentVibe(f.ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VibeUnknown, vibe.Rating)

	require.NoError(t, f.checkins.CreateCheckIn(f.ctx, &models.CheckIn{
		UserID: user, VenueID: venue.ID, VibeRating: models.VibeCrowded,
	}))

	vibe, err = f.vibe.GetCurrentVibe(f.ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VenueVibe{Rating: models.VibeCrowded, CheckInsCount: 1}, *vibe)
}

func TestCreateCheckIn_Validation(t *testing.T) {
	f := newFixture(t)
	user := f.user("alice")
	venue := f.venue("Blue Note", locA)

	tests := []struct {
		name    string
		checkIn models.CheckIn
		wantErr error
	}{
		{
			name:    "unknown vibe rating",
			checkIn: models.CheckIn{UserID: user, VenueID: venue.ID, VibeRating: "Loud"},
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "unknown rating placeholder",
			checkIn: models.CheckIn{UserID: user, VenueID: venue.ID, VibeRating: models.VibeUnknown},
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "unknown visibility",
			checkIn: models.CheckIn{UserID: user, VenueID: venue.ID, VibeRating: models.VibeChill, Visibility: "everyone"},
			wantErr: models.ErrInvalidInput,
		},
		{
			name:    "unknown venue",
			checkIn: models.CheckIn{UserID: user, VenueID: uuid.New(), VibeRating: models.VibeChill},
			wantErr: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.checkIn
			err := f.checkins.CreateCheckIn(f.ctx, &c)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	feed, err := f.checkins.ListFeed(f.ctx, user, 0)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestCreateCheckIn_NotifierFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	a := f.userAt("alice", locA)
	b := f.userAt("bob", locB)
	f.befriend(a, b)
	venue := f.venue("Blue Note", locA)

	f.notifier.EXPECT().
		Notify(gomock.Any(), b, models.NotificationNearbyFriend, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("push gateway down")).
		Times(1)

	checkIn := &models.CheckIn{UserID: a, VenueID: venue.ID, VibeRating: models.VibeLively}
	require.NoError(t, f.checkins.CreateCheckIn(f.ctx, checkIn))

	_, err := f.checkins.GetCheckIn(f.ctx, a, checkIn.ID)
	assert.NoError(t, err)
}

func TestGetCheckIn_PrivateHiddenFromFriend(t *testing.T) {
	f := newFixture(t)
	author := f.user("alice")
	friend := f.user("bob")
	f.befriend(author, friend)
	venue := f.venue("Blue Note", locA)

	private := f.checkIn(author, venue.ID, models.VibeChill, models.VisibilityPrivate)
	friendsOnly := f.checkIn(author, venue.ID, models.VibeChill, models.VisibilityFriends)

	_, err := f.checkins.GetCheckIn(f.ctx, friend, private.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	got, err := f.checkins.GetCheckIn(f.ctx, friend, friendsOnly.ID)
	require.NoError(t, err)
	assert.Equal(t, friendsOnly.ID, got.ID)

	got, err = f.checkins.GetCheckIn(f.ctx, author, private.ID)
	require.NoError(t, err)
	assert.Equal(t, private.ID, got.ID)
}

func TestListFeed_VisibilityAndOrder(t *testing.T) {
	f := newFixture(t)
	viewer := f.user("alice")
	friend := f.user("bob")
	stranger := f.user("carol")
	f.befriend(viewer, friend)
	venue := f.venue("Blue Note", locA)

	own := f.checkIn(viewer, venue.ID, models.VibeChill, models.VisibilityPrivate)
	f.clock.Advance(time.Minute)
	friendPublic := f.checkIn(friend, venue.ID, models.VibeLively, models.VisibilityPublic)
	f.clock.Advance(time.Minute)
	f.checkIn(friend, venue.ID, models.VibeLively, models.VisibilityPrivate)
	f.clock.Advance(time.Minute)
	friendFriends := f.checkIn(friend, venue.ID, models.VibeCrowded, models.VisibilityFriends)
	f.clock.Advance(time.Minute)
	f.checkIn(stranger, venue.ID, models.VibeEmpty, models.VisibilityPublic)

	feed, err := f.checkins.ListFeed(f.ctx, viewer, 0)
	require.NoError(t, err)

	ids := make([]uuid.UUID, len(feed))
	for i, c := range feed {
		ids[i] = c.ID
	}
	assert.Equal(t, []uuid.UUID{friendFriends.ID, friendPublic.ID, own.ID}, ids)

	feed, err = f.checkins.ListFeed(f.ctx, viewer, 2)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestDeleteCheckIn(t *testing.T) {
	f := newFixture(t)
	owner := f.user("alice")
	other := f.user("bob")
	venue := f.venue("Blue Note", locA)

	checkIn := &models.CheckIn{UserID: owner, VenueID: venue.ID, VibeRating: models.VibeLively}
	require.NoError(t, f.checkins.CreateCheckIn(f.ctx, checkIn))

	vibe, err := f.vibe.GetCurrentVibe(f.ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, vibe.CheckInsCount)

	// Чужой чекин неотличим от отсутствующего
	err = f.checkins.DeleteCheckIn(f.ctx, other, checkIn.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, f.checkins.DeleteCheckIn(f.ctx, owner, checkIn.ID))

	_, err = f.checkins.GetCheckIn(f.ctx, owner, checkIn.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	vibe, err = f.vibe.GetCurrentVibe(f.ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, models.VenueVibe{Rating: models.VibeUnknown, CheckInsCount: 0}, *vibe)

	err = f.checkins.DeleteCheckIn(f.ctx, owner, checkIn.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPruneCheckIns(t *testing.T) {
	f := newFixture(t)
	user := f.user("alice")
	venue := f.venue("Blue Note", locA)

	old := f.checkIn(user, venue.ID, models.VibeChill, models.VisibilityPublic)
	f.clock.Advance(48 * time.Hour)
	fresh := f.checkIn(user, venue.ID, models.VibeChill, models.VisibilityPublic)

	n, err := f.checkins.PruneCheckIns(f.ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = f.checkins.GetCheckIn(f.ctx, user, old.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = f.checkins.GetCheckIn(f.ctx, user, fresh.ID)
	assert.NoError(t, err)
}
