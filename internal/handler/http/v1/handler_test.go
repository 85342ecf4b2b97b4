package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	accounts      *mocks.MockAccountService
	social        *mocks.MockSocialGraph
	vibe          *mocks.MockVibeService
	invitations   *mocks.MockInvitationService
	proximity     *mocks.MockProximityService
	checkins      *mocks.MockCheckInService
	venues        *mocks.MockVenueService
	notifications *mocks.MockNotificationService
}

// newTestHandler создает Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		accounts:      mocks.NewMockAccountService(ctrl),
		social:        mocks.NewMockSocialGraph(ctrl),
		vibe:          mocks.NewMockVibeService(ctrl),
		invitations:   mocks.NewMockInvitationService(ctrl),
		proximity:     mocks.NewMockProximityService(ctrl),
		checkins:      mocks.NewMockCheckInService(ctrl),
		venues:        mocks.NewMockVenueService(ctrl),
		notifications: mocks.NewMockNotificationService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                   []string{"test-api-key"},
		RequestTimeout:            time.Second,
		DefaultNearbyRadiusMeters: 1000,
	}

	handler := NewHandler(Services{
		Accounts:      m.accounts,
		Social:        m.social,
		Vibe:          m.vibe,
		Invitations:   m.invitations,
		Proximity:     m.proximity,
		CheckIns:      m.checkins,
		Venues:        m.venues,
		Notifications: m.notifications,
	}, logger, cfg)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeaders(userID uuid.UUID) map[string]string {
	return map[string]string{"X-API-Key": "test-api-key", "X-User-ID": userID.String()}
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrInvalidLocation, http.StatusBadRequest},
		{models.ErrInvalidInvitation, http.StatusBadRequest},
		{models.ErrInvalidInput, http.StatusBadRequest},
		{models.ErrExpired, http.StatusGone},
		{models.ErrForbidden, http.StatusForbidden},
		{models.ErrNotFound, http.StatusNotFound},
		{models.ErrConflict, http.StatusConflict},
		{models.ErrAlreadyProcessed, http.StatusConflict},
		{models.ErrTimeout, http.StatusGatewayTimeout},
		{fmt.Errorf("service: could not get venue: %w", models.ErrNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFor(tt.err), "err=%v", tt.err)
	}
}

func TestHealthCheck_NoAuth(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuth_MissingOrInvalidAPIKey(t *testing.T) {
	_, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/profile", nil, map[string]string{"X-User-ID": uuid.NewString()})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")

	w = makeRequest(router, http.MethodGet, "/api/v1/profile", nil, map[string]string{
		"Authorization": "Bearer wrong-key",
		"X-User-ID":     uuid.NewString(),
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAuth_UserIdentityRequired(t *testing.T) {
	m, router := newTestHandler(t)
	m.accounts.EXPECT().GetProfile(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/profile", nil, map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/profile", nil, map[string]string{
		"X-API-Key": "test-api-key",
		"X-User-ID": "not-a-uuid",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid user identity")
}

func TestCreateAccount_Success(t *testing.T) {
	m, router := newTestHandler(t)
	id := uuid.New()

	m.accounts.EXPECT().
		CreateAccount(gomock.Any(), "alice", "alice@example.com").
		Return(&models.Account{ID: id, Username: "alice", Email: "alice@example.com"},
			&models.UserProfile{UserID: id, Username: "alice"}, nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts",
		jsonBody(t, CreateAccountRequest{Username: "alice", Email: "alice@example.com"}),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp AccountResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, id, resp.Profile.UserID)
	assert.False(t, resp.Profile.LocationSharing)
	assert.Nil(t, resp.Profile.Location)
}

func TestCreateAccount_Conflict(t *testing.T) {
	m, router := newTestHandler(t)

	m.accounts.EXPECT().
		CreateAccount(gomock.Any(), "alice", "").
		Return(nil, nil, fmt.Errorf("service: could not create account: %w", models.ErrConflict))

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts",
		jsonBody(t, CreateAccountRequest{Username: "alice"}),
		map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateAccount_InvalidBody(t *testing.T) {
	m, router := newTestHandler(t)
	m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, http.MethodPost, "/api/v1/accounts", bytes.NewBufferString(`{"username": "a"`),
		map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")

	w = makeRequest(router, http.MethodPost, "/api/v1/accounts", jsonBody(t, CreateAccountRequest{Username: "a", Email: "nope"}),
		map[string]string{"X-API-Key": "test-api-key"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLocation_ForbiddenWhenNotSharing(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	lat, lng := 40.7128, -74.0060

	m.accounts.EXPECT().
		UpdateLocation(gomock.Any(), userID, models.Location{Latitude: lat, Longitude: lng}).
		Return(nil, fmt.Errorf("%w: location sharing is disabled", models.ErrForbidden))

	w := makeRequest(router, http.MethodPut, "/api/v1/profile/location",
		jsonBody(t, UpdateLocationRequest{Latitude: &lat, Longitude: &lng}), authHeaders(userID))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateProfile_PassesPartialUpdate(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()

	m.accounts.EXPECT().
		UpdateProfile(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, u models.ProfileUpdate) (*models.UserProfile, error) {
			require.NotNil(t, u.LocationSharing)
			assert.False(t, *u.LocationSharing)
			assert.Nil(t, u.Bio)
			assert.Nil(t, u.Location)
			return &models.UserProfile{UserID: userID, Username: "alice"}, nil
		})

	w := makeRequest(router, http.MethodPatch, "/api/v1/profile",
		bytes.NewBufferString(`{"location_sharing": false}`), authHeaders(userID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"location"`)
}

func TestNearbyFriends_QueryParams(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	friendID := uuid.New()
	center := models.Location{Latitude: 40.7128, Longitude: -74.006}

	m.proximity.EXPECT().
		NearbyFriends(gomock.Any(), userID, center, 1000.0).
		Return([]models.NearbyFriend{{
			Profile: &models.UserProfile{
				UserID: friendID, Username: "bob", LocationSharing: true,
				Location: &models.Location{Latitude: 40.713, Longitude: -74.0062},
			},
			DistanceMeters: 27.9,
		}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/friends/nearby?latitude=40.7128&longitude=-74.006", nil, authHeaders(userID))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []NearbyFriendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, friendID, resp[0].UserID)
	assert.Equal(t, 27.9, resp[0].DistanceMeters)
	require.NotNil(t, resp[0].Location)
}

func TestNearbyFriends_FallsBackToOwnLocation(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	own := models.Location{Latitude: 52.52, Longitude: 13.405}

	gomock.InOrder(
		m.accounts.EXPECT().
			GetProfile(gomock.Any(), userID).
			Return(&models.UserProfile{UserID: userID, LocationSharing: true, Location: &own}, nil),
		m.proximity.EXPECT().
			NearbyFriends(gomock.Any(), userID, own, 250.0).
			Return([]models.NearbyFriend{}, nil),
	)

	w := makeRequest(router, http.MethodGet, "/api/v1/friends/nearby?radius=250", nil, authHeaders(userID))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestNearbyFriends_BadInput(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	m.proximity.EXPECT().NearbyFriends(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, "/api/v1/friends/nearby?latitude=abc&longitude=1", nil, authHeaders(userID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/friends/nearby?latitude=1", nil, authHeaders(userID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	m.accounts.EXPECT().GetProfile(gomock.Any(), userID).Return(&models.UserProfile{UserID: userID}, nil)
	w = makeRequest(router, http.MethodGet, "/api/v1/friends/nearby", nil, authHeaders(userID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListFriends(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	friend := &models.UserProfile{UserID: uuid.New(), Username: "bob", Location: &models.Location{Latitude: 1, Longitude: 2}}

	m.social.EXPECT().ListFriends(gomock.Any(), userID).Return([]*models.UserProfile{friend}, nil)
	m.social.EXPECT().FriendCount(gomock.Any(), userID).Return(1, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/friends", nil, authHeaders(userID))

	require.Equal(t, http.StatusOK, w.Code)
	var resp FriendsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Friends, 1)
	// Координаты без включённого шеринга наружу не попадают
	assert.Nil(t, resp.Friends[0].Location)
}

func TestRemoveFriend(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	friendID := uuid.New()

	m.social.EXPECT().RemoveFriendship(gomock.Any(), userID, friendID).Return(nil)

	w := makeRequest(router, http.MethodDelete, "/api/v1/friends/"+friendID.String(), nil, authHeaders(userID))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodDelete, "/api/v1/friends/nope", nil, authHeaders(userID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateInvitation_FriendRequest(t *testing.T) {
	m, router := newTestHandler(t)
	sender := uuid.New()
	receiver := uuid.New()
	invID := uuid.New()

	m.invitations.EXPECT().
		CreateFriendRequest(gomock.Any(), sender, receiver).
		Return(&models.Invitation{
			ID: invID, Kind: models.InvitationFriendRequest, SenderID: sender, ReceiverID: receiver,
			Status: models.InvitationPending,
		}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/invitations/friend-request",
		jsonBody(t, CreateInvitationRequest{ReceiverID: receiver}), authHeaders(sender))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp InvitationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, invID, resp.ID)
	assert.Equal(t, "friend-request", resp.Kind)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateInvitation_MeetupPing(t *testing.T) {
	m, router := newTestHandler(t)
	sender := uuid.New()
	receiver := uuid.New()
	venueID := uuid.New()

	m.invitations.EXPECT().
		CreateMeetupPing(gomock.Any(), sender, models.MeetupPingRequest{
			ReceiverID: receiver, VenueID: venueID, Message: "join us",
		}).
		Return(&models.Invitation{ID: uuid.New(), Kind: models.InvitationMeetupPing, VenueID: &venueID}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/invitations/meetup-ping",
		jsonBody(t, CreateInvitationRequest{ReceiverID: receiver, VenueID: &venueID, Message: "join us"}), authHeaders(sender))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateInvitation_BadInput(t *testing.T) {
	m, router := newTestHandler(t)
	sender := uuid.New()
	m.invitations.EXPECT().CreateFriendRequest(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.invitations.EXPECT().CreateMeetupPing(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodPost, "/api/v1/invitations/poke",
		jsonBody(t, CreateInvitationRequest{ReceiverID: uuid.New()}), authHeaders(sender))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/invitations/meetup-ping",
		jsonBody(t, CreateInvitationRequest{ReceiverID: uuid.New()}), authHeaders(sender))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/invitations/friend-request",
		bytes.NewBufferString(`{}`), authHeaders(sender))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvitationActions_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"expired", models.ErrExpired, http.StatusGone},
		{"already processed", models.ErrAlreadyProcessed, http.StatusConflict},
		{"wrong actor", models.ErrForbidden, http.StatusForbidden},
		{"not a participant", models.ErrNotFound, http.StatusNotFound},
		{"store timeout", models.ErrTimeout, http.StatusGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, router := newTestHandler(t)
			actor := uuid.New()
			id := uuid.New()

			m.invitations.EXPECT().
				Accept(gomock.Any(), actor, id, "").
				Return(nil, fmt.Errorf("service: could not accept invitation: %w", tt.err))

			w := makeRequest(router, http.MethodPost, "/api/v1/invitations/"+id.String()+"/accept", nil, authHeaders(actor))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRejectInvitation_WithMessage(t *testing.T) {
	m, router := newTestHandler(t)
	actor := uuid.New()
	id := uuid.New()

	m.invitations.EXPECT().
		Reject(gomock.Any(), actor, id, "maybe next time").
		Return(&models.Invitation{ID: id, Status: models.InvitationDeclined, ResponseMessage: "maybe next time"}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/invitations/"+id.String()+"/reject",
		jsonBody(t, InvitationActionRequest{Message: "maybe next time"}), authHeaders(actor))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"declined"`)
}

func TestCancelAndGetInvitation(t *testing.T) {
	m, router := newTestHandler(t)
	actor := uuid.New()
	id := uuid.New()

	m.invitations.EXPECT().Cancel(gomock.Any(), actor, id).
		Return(&models.Invitation{ID: id, Status: models.InvitationCanceled}, nil)
	m.invitations.EXPECT().GetInvitation(gomock.Any(), actor, id).
		Return(&models.Invitation{ID: id, Status: models.InvitationCanceled}, nil)

	w := makeRequest(router, http.MethodPost, "/api/v1/invitations/"+id.String()+"/cancel", nil, authHeaders(actor))
	assert.Equal(t, http.StatusOK, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/invitations/"+id.String(), nil, authHeaders(actor))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"canceled"`)
}

func TestListInvitations_PassesFilter(t *testing.T) {
	m, router := newTestHandler(t)
	actor := uuid.New()

	m.invitations.EXPECT().
		ListInvitations(gomock.Any(), models.InvitationFilter{
			UserID: actor, Kind: models.InvitationMeetupPing, Status: models.InvitationPending,
		}).
		Return([]*models.Invitation{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/invitations?kind=meetup-ping&status=pending", nil, authHeaders(actor))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCurrentVibe(t *testing.T) {
	m, router := newTestHandler(t)
	venueID := uuid.New()

	m.vibe.EXPECT().GetCurrentVibe(gomock.Any(), venueID).
		Return(&models.VenueVibe{Rating: models.VibeLively, CheckInsCount: 3}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/venues/"+venueID.String()+"/current-vibe", nil, authHeaders(uuid.New()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"vibe":"Lively","checkins_count":3}`, w.Body.String())
}

func TestListVenues_WithCenter(t *testing.T) {
	m, router := newTestHandler(t)
	venue := &models.Venue{ID: uuid.New(), Name: "Blue Note", Category: models.VenueCategoryClub}

	m.venues.EXPECT().
		ListVenues(gomock.Any(), models.VenueFilter{
			Category: models.VenueCategoryClub,
			Center:   &models.Location{Latitude: 40.7, Longitude: -74},
			Page:     1,
			PageSize: 10,
		}).
		Return([]*models.VenueDistance{{Venue: venue, DistanceMeters: 120.5}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/venues?category=club&latitude=40.7&longitude=-74", nil, authHeaders(uuid.New()))

	require.Equal(t, http.StatusOK, w.Code)
	var resp []VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].DistanceMeters)
	assert.Equal(t, 120.5, *resp[0].DistanceMeters)
}

func TestListVenues_ExplicitZeroRadius(t *testing.T) {
	m, router := newTestHandler(t)
	zero := 0.0

	m.venues.EXPECT().
		ListVenues(gomock.Any(), models.VenueFilter{
			Center:       &models.Location{Latitude: 40.7, Longitude: -74},
			RadiusMeters: &zero,
			Page:         1,
			PageSize:     10,
		}).
		Return([]*models.VenueDistance{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/venues?latitude=40.7&longitude=-74&radius=0", nil, authHeaders(uuid.New()))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateVenue(t *testing.T) {
	m, router := newTestHandler(t)
	venueID := uuid.New()
	url := "/api/v1/venues/" + venueID.String()
	name := "Blue Note Jazz Club"

	m.venues.EXPECT().
		UpdateVenue(gomock.Any(), venueID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, update models.VenueUpdate) (*models.Venue, error) {
			require.NotNil(t, update.Name)
			assert.Equal(t, name, *update.Name)
			assert.Nil(t, update.Location)
			assert.Nil(t, update.Category)
			return &models.Venue{ID: venueID, Name: name, Category: models.VenueCategoryClub}, nil
		})

	w := makeRequest(router, http.MethodPatch, url, jsonBody(t, UpdateVenueRequest{Name: &name}), authHeaders(uuid.New()))

	require.Equal(t, http.StatusOK, w.Code)
	var resp VenueResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, name, resp.Name)
}

func TestUpdateVenue_Errors(t *testing.T) {
	m, router := newTestHandler(t)
	venueID := uuid.New()
	url := "/api/v1/venues/" + venueID.String()
	lat, lng := 40.74, -74.0

	m.venues.EXPECT().
		UpdateVenue(gomock.Any(), venueID, models.VenueUpdate{Location: &models.Location{Latitude: lat, Longitude: lng}}).
		Return(nil, fmt.Errorf("service: could not update venue: %w", models.ErrConflict))

	w := makeRequest(router, http.MethodPatch, url, jsonBody(t, UpdateVenueRequest{Latitude: &lat, Longitude: &lng}), authHeaders(uuid.New()))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Широта без долготы и неизвестная категория отклоняются валидацией
	w = makeRequest(router, http.MethodPatch, url, jsonBody(t, UpdateVenueRequest{Latitude: &lat}), authHeaders(uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	casino := "casino"
	w = makeRequest(router, http.MethodPatch, url, jsonBody(t, UpdateVenueRequest{Category: &casino}), authHeaders(uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = makeRequest(router, http.MethodPatch, "/api/v1/venues/not-a-uuid", jsonBody(t, UpdateVenueRequest{}), authHeaders(uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateVenue(t *testing.T) {
	m, router := newTestHandler(t)
	lat, lng := 40.73, -74.0

	m.venues.EXPECT().
		CreateVenue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Venue) error {
			assert.Equal(t, models.Location{Latitude: lat, Longitude: lng}, v.Location)
			v.ID = uuid.New()
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/venues", jsonBody(t, CreateVenueRequest{
		Name: "Blue Note", Category: "club", Latitude: &lat, Longitude: &lng,
	}), authHeaders(uuid.New()))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/venues", jsonBody(t, CreateVenueRequest{
		Name: "Blue Note", Category: "casino", Latitude: &lat, Longitude: &lng,
	}), authHeaders(uuid.New()))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRatings(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	venueID := uuid.New()
	url := "/api/v1/venues/" + venueID.String() + "/ratings"

	m.venues.EXPECT().
		CreateRating(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not save rating: %w", models.ErrConflict))
	m.venues.EXPECT().
		UpsertRating(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.VenueRating) error {
			assert.Equal(t, userID, r.UserID)
			assert.Equal(t, venueID, r.VenueID)
			assert.Equal(t, 5, r.Rating)
			return nil
		})

	w := makeRequest(router, http.MethodPost, url, jsonBody(t, RatingRequest{Rating: 4}), authHeaders(userID))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = makeRequest(router, http.MethodPut, url, jsonBody(t, RatingRequest{Rating: 5}), authHeaders(userID))
	assert.Equal(t, http.StatusOK, w.Code)

	// Вне диапазона - до сервиса не доходит
	w = makeRequest(router, http.MethodPost, url, jsonBody(t, RatingRequest{Rating: 6}), authHeaders(userID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVenuePopularity(t *testing.T) {
	m, router := newTestHandler(t)
	venueID := uuid.New()

	m.venues.EXPECT().PopularityScore(gomock.Any(), venueID).Return(3.45, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/venues/"+venueID.String()+"/popularity", nil, authHeaders(uuid.New()))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"venue_id":%q,"score":3.45}`, venueID), w.Body.String())
}

func TestCreateCheckIn(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	venueID := uuid.New()

	m.checkins.EXPECT().
		CreateCheckIn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.CheckIn) error {
			assert.Equal(t, userID, c.UserID)
			assert.Equal(t, models.VibeChill, c.VibeRating)
			c.ID = uuid.New()
			c.Visibility = models.VisibilityPublic
			return nil
		})

	w := makeRequest(router, http.MethodPost, "/api/v1/checkins",
		jsonBody(t, CreateCheckInRequest{VenueID: venueID, VibeRating: "Chill"}), authHeaders(userID))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"visibility":"public"`)

	w = makeRequest(router, http.MethodPost, "/api/v1/checkins",
		jsonBody(t, CreateCheckInRequest{VenueID: venueID, VibeRating: "Loud"}), authHeaders(userID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndDeleteCheckIn(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	id := uuid.New()

	m.checkins.EXPECT().GetCheckIn(gomock.Any(), userID, id).
		Return(nil, fmt.Errorf("service: could not get check-in: %w", models.ErrNotFound))
	m.checkins.EXPECT().DeleteCheckIn(gomock.Any(), userID, id).Return(nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/checkins/"+id.String(), nil, authHeaders(userID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = makeRequest(router, http.MethodDelete, "/api/v1/checkins/"+id.String(), nil, authHeaders(userID))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListFeed_InternalErrorHidden(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()

	m.checkins.EXPECT().ListFeed(gomock.Any(), userID, 20).Return(nil, errors.New("connection reset by peer"))

	w := makeRequest(router, http.MethodGet, "/api/v1/checkins?limit=20", nil, authHeaders(userID))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestNotifications(t *testing.T) {
	m, router := newTestHandler(t)
	userID := uuid.New()
	id := uuid.New()

	m.notifications.EXPECT().ListNotifications(gomock.Any(), userID, true).
		Return([]*models.Notification{{ID: id, Type: models.NotificationNearbyFriend, Title: "Friend Nearby!"}}, nil)
	m.notifications.EXPECT().MarkRead(gomock.Any(), userID, id).Return(nil)
	m.notifications.EXPECT().
		RegisterDeviceToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tok *models.DeviceToken) error {
			assert.Equal(t, models.DeviceAndroid, tok.DeviceType)
			assert.Equal(t, userID, tok.UserID)
			return nil
		})

	w := makeRequest(router, http.MethodGet, "/api/v1/notifications?unread=true", nil, authHeaders(userID))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"nearby_friend"`)

	w = makeRequest(router, http.MethodPost, "/api/v1/notifications/"+id.String()+"/read", nil, authHeaders(userID))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/device-tokens",
		jsonBody(t, DeviceTokenRequest{Token: "tok", DeviceType: "android"}), authHeaders(userID))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, http.MethodPost, "/api/v1/device-tokens",
		jsonBody(t, DeviceTokenRequest{Token: "tok", DeviceType: "pager"}), authHeaders(userID))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequestTimeoutMiddleware_SetsDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestTimeoutMiddleware(50 * time.Millisecond))
	router.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
