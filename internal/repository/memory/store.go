// Package memory - хранилище в памяти процесса с теми же контрактами, что и PostgreSQL-репозитории.
// Используется как dev-бэкенд и в тестах сервисов.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/geo"
	"github.com/shenikar/nightlife_presence/internal/models"
)

type ratingKey struct {
	userID  uuid.UUID
	venueID uuid.UUID
}

type state struct {
	accounts      map[uuid.UUID]models.Account
	profiles      map[uuid.UUID]models.UserProfile
	friendships   map[uuid.UUID]map[uuid.UUID]struct{}
	venues        map[uuid.UUID]models.Venue
	checkins      map[uuid.UUID]models.CheckIn
	ratings       map[ratingKey]models.VenueRating
	invitations   map[uuid.UUID]models.Invitation
	notifications map[uuid.UUID]models.Notification
	tokens        map[string]models.DeviceToken
}

func newState() *state {
	return &state{
		accounts:      make(map[uuid.UUID]models.Account),
		profiles:      make(map[uuid.UUID]models.UserProfile),
		friendships:   make(map[uuid.UUID]map[uuid.UUID]struct{}),
		venues:        make(map[uuid.UUID]models.Venue),
		checkins:      make(map[uuid.UUID]models.CheckIn),
		ratings:       make(map[ratingKey]models.VenueRating),
		invitations:   make(map[uuid.UUID]models.Invitation),
		notifications: make(map[uuid.UUID]models.Notification),
		tokens:        make(map[string]models.DeviceToken),
	}
}

// clone копирует карты; значения хранятся по значению и никогда не меняются на месте
func (s *state) clone() *state {
	c := newState()
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.profiles {
		c.profiles[k] = v
	}
	for k, set := range s.friendships {
		cs := make(map[uuid.UUID]struct{}, len(set))
		for f := range set {
			cs[f] = struct{}{}
		}
		c.friendships[k] = cs
	}
	for k, v := range s.venues {
		c.venues[k] = v
	}
	for k, v := range s.checkins {
		c.checkins[k] = v
	}
	for k, v := range s.ratings {
		c.ratings[k] = v
	}
	for k, v := range s.invitations {
		c.invitations[k] = v
	}
	for k, v := range s.notifications {
		c.notifications[k] = v
	}
	for k, v := range s.tokens {
		c.tokens[k] = v
	}
	return c
}

type txState struct {
	store  *Store
	active atomic.Bool
}

type txKey struct{}

// Store сериализует все операции одним мьютексом. Транзакция держит мьютекс
// до конца fn и при ошибке восстанавливает снимок состояния.
type Store struct {
	mu   sync.Mutex
	data *state
}

func NewStore() *Store {
	return &Store{data: newState()}
}

func (s *Store) inTx(ctx context.Context) bool {
	tx, ok := ctx.Value(txKey{}).(*txState)
	return ok && tx.store == s && tx.active.Load()
}

// lock захватывает мьютекс, если вызов не внутри транзакции этого же хранилища.
// Истёкший контекст отклоняется с ErrTimeout до любых изменений.
func (s *Store) lock(ctx context.Context) (func(), error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("memory store: %w: %w", models.ErrTimeout, err)
	}
	if s.inTx(ctx) {
		return func() {}, nil
	}
	s.mu.Lock()
	return s.mu.Unlock, nil
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to begin transaction: %w: %w", models.ErrTimeout, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	tx := &txState{store: s}
	tx.active.Store(true)
	defer tx.active.Store(false)

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func notFound(entity string, id any) error {
	return fmt.Errorf("%s %v: %w", entity, id, models.ErrNotFound)
}

// ---- профили ----

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, a := range s.data.accounts {
		if strings.EqualFold(a.Username, account.Username) {
			return fmt.Errorf("username %q: %w", account.Username, models.ErrConflict)
		}
	}
	if _, ok := s.data.accounts[account.ID]; ok {
		return fmt.Errorf("account %s: %w", account.ID, models.ErrConflict)
	}
	s.data.accounts[account.ID] = *account
	return nil
}

func (s *Store) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.data.accounts[profile.UserID]; !ok {
		return notFound("account", profile.UserID)
	}
	if _, ok := s.data.profiles[profile.UserID]; ok {
		return fmt.Errorf("profile %s: %w", profile.UserID, models.ErrConflict)
	}
	s.data.profiles[profile.UserID] = copyProfile(*profile)
	return nil
}

func (s *Store) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	return s.profile(userID)
}

func (s *Store) profile(userID uuid.UUID) (*models.UserProfile, error) {
	p, ok := s.data.profiles[userID]
	if !ok {
		return nil, notFound("profile", userID)
	}
	out := copyProfile(p)
	out.Username = s.data.accounts[userID].Username
	return &out, nil
}

func (s *Store) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.data.profiles[profile.UserID]; !ok {
		return notFound("profile", profile.UserID)
	}
	s.data.profiles[profile.UserID] = copyProfile(*profile)
	return nil
}

// copyProfile отвязывает координаты и восстанавливает инвариант приватности
func copyProfile(p models.UserProfile) models.UserProfile {
	if p.Location != nil {
		loc := *p.Location
		p.Location = &loc
	}
	p.Normalize()
	return p
}

// ---- дружба ----

func (s *Store) AddFriendship(ctx context.Context, a, b uuid.UUID) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if a == b {
		return fmt.Errorf("%w: self friendship", models.ErrInvalidInput)
	}
	for _, id := range []uuid.UUID{a, b} {
		if _, ok := s.data.accounts[id]; !ok {
			return notFound("account", id)
		}
	}
	s.link(a, b)
	s.link(b, a)
	return nil
}

func (s *Store) link(from, to uuid.UUID) {
	set, ok := s.data.friendships[from]
	if !ok {
		set = make(map[uuid.UUID]struct{})
		s.data.friendships[from] = set
	}
	set[to] = struct{}{}
}

func (s *Store) RemoveFriendship(ctx context.Context, a, b uuid.UUID) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	delete(s.data.friendships[a], b)
	delete(s.data.friendships[b], a)
	return nil
}

func (s *Store) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()
	_, ok := s.data.friendships[a][b]
	return ok, nil
}

func (s *Store) CountFriends(ctx context.Context, userID uuid.UUID) (int, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()
	return len(s.data.friendships[userID]), nil
}

func (s *Store) ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.UserProfile, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	friends := make([]*models.UserProfile, 0, len(s.data.friendships[userID]))
	for id := range s.data.friendships[userID] {
		p, err := s.profile(id)
		if err != nil {
			continue
		}
		friends = append(friends, p)
	}
	sort.Slice(friends, func(i, j int) bool {
		return friends[i].Username < friends[j].Username
	})
	return friends, nil
}

// ---- заведения ----

func (s *Store) CreateVenue(ctx context.Context, venue *models.Venue) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.data.venues[venue.ID]; ok {
		return fmt.Errorf("venue %s: %w", venue.ID, models.ErrConflict)
	}
	s.data.venues[venue.ID] = *venue
	return nil
}

func (s *Store) GetVenue(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	v, ok := s.data.venues[id]
	if !ok {
		return nil, notFound("venue", id)
	}
	return &v, nil
}

// GetVenueForUpdate: внутри транзакции запись уже защищена мьютексом хранилища
func (s *Store) GetVenueForUpdate(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	return s.GetVenue(ctx, id)
}

func (s *Store) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.data.venues[venue.ID]; !ok {
		return notFound("venue", venue.ID)
	}
	s.data.venues[venue.ID] = *venue
	return nil
}

func (s *Store) ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.VenueDistance, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	venues := make([]*models.Venue, 0, len(s.data.venues))
	for _, v := range s.data.venues {
		if filter.Category != "" && v.Category != filter.Category {
			continue
		}
		v := v
		venues = append(venues, &v)
	}

	var items []*models.VenueDistance
	if filter.Center != nil {
		sort.Slice(venues, func(i, j int) bool {
			return venues[i].ID.String() < venues[j].ID.String()
		})
		hits, err := geo.Query(*filter.Center, filter.Radius(), venues, func(v *models.Venue) (models.Location, bool) {
			return v.Location, true
		})
		if err != nil {
			return nil, err
		}
		items = make([]*models.VenueDistance, len(hits))
		for i, h := range hits {
			items[i] = &models.VenueDistance{Venue: h.Entity, DistanceMeters: h.DistanceMeters}
		}
	} else {
		sort.Slice(venues, func(i, j int) bool {
			return venues[i].CreatedAt.After(venues[j].CreatedAt)
		})
		items = make([]*models.VenueDistance, len(venues))
		for i, v := range venues {
			items[i] = &models.VenueDistance{Venue: v}
		}
	}
	return paginate(items, filter.Page, filter.PageSize), nil
}

func paginate[T any](items []T, page, pageSize int) []T {
	if page <= 0 || pageSize <= 0 {
		return items
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ---- чекины ----

func (s *Store) CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.data.accounts[checkIn.UserID]; !ok {
		return notFound("account", checkIn.UserID)
	}
	if _, ok := s.data.venues[checkIn.VenueID]; !ok {
		return notFound("venue", checkIn.VenueID)
	}
	s.data.checkins[checkIn.ID] = *checkIn
	return nil
}

func (s *Store) GetCheckIn(ctx context.Context, id uuid.UUID) (*models.CheckIn, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	c, ok := s.data.checkins[id]
	if !ok {
		return nil, notFound("check-in", id)
	}
	return &c, nil
}

func (s *Store) DeleteCheckIn(ctx context.Context, id uuid.UUID) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.data.checkins[id]; !ok {
		return notFound("check-in", id)
	}
	delete(s.data.checkins, id)
	return nil
}

func (s *Store) ListVibeSamples(ctx context.Context, venueID uuid.UUID, since time.Time) ([]models.VibeSample, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	samples := make([]models.VibeSample, 0)
	for _, c := range s.data.checkins {
		if c.VenueID == venueID && !c.Timestamp.Before(since) {
			samples = append(samples, models.VibeSample{Rating: c.VibeRating, Timestamp: c.Timestamp})
		}
	}
	return samples, nil
}

func (s *Store) CountCheckInsSince(ctx context.Context, venueID uuid.UUID, since time.Time) (int, error) {
	samples, err := s.ListVibeSamples(ctx, venueID, since)
	return len(samples), err
}

func (s *Store) ListFeed(ctx context.Context, viewerID uuid.UUID, friendIDs []uuid.UUID, limit int) ([]*models.CheckIn, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	friends := make(map[uuid.UUID]struct{}, len(friendIDs))
	for _, id := range friendIDs {
		friends[id] = struct{}{}
	}

	items := make([]*models.CheckIn, 0)
	for _, c := range s.data.checkins {
		_, isFriend := friends[c.UserID]
		if c.UserID == viewerID || (isFriend && c.Visibility != models.VisibilityPrivate) {
			c := c
			items = append(items, &c)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) DeleteCheckInsBefore(ctx context.Context, before time.Time) (int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for id, c := range s.data.checkins {
		if c.Timestamp.Before(before) {
			delete(s.data.checkins, id)
			n++
		}
	}
	return n, nil
}

// ---- оценки ----

func (s *Store) CreateRating(ctx context.Context, rating *models.VenueRating) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	key := ratingKey{userID: rating.UserID, venueID: rating.VenueID}
	if _, ok := s.data.ratings[key]; ok {
		return fmt.Errorf("rating for venue %s: %w", rating.VenueID, models.ErrConflict)
	}
	s.data.ratings[key] = *rating
	return nil
}

func (s *Store) UpsertRating(ctx context.Context, rating *models.VenueRating) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	key := ratingKey{userID: rating.UserID, venueID: rating.VenueID}
	if existing, ok := s.data.ratings[key]; ok {
		rating.ID = existing.ID
		rating.CreatedAt = existing.CreatedAt
	}
	s.data.ratings[key] = *rating
	return nil
}

func (s *Store) ListRatings(ctx context.Context, venueID uuid.UUID) ([]*models.VenueRating, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	items := make([]*models.VenueRating, 0)
	for _, r := range s.data.ratings {
		if r.VenueID == venueID {
			r := r
			items = append(items, &r)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) AverageRating(ctx context.Context, venueID uuid.UUID) (float64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()
	sum, n := 0, 0
	for _, r := range s.data.ratings {
		if r.VenueID == venueID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

// ---- приглашения ----

func (s *Store) CreateInvitation(ctx context.Context, inv *models.Invitation) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, id := range []uuid.UUID{inv.SenderID, inv.ReceiverID} {
		if _, ok := s.data.accounts[id]; !ok {
			return notFound("account", id)
		}
	}
	if inv.Kind == models.InvitationFriendRequest && s.hasPending(inv.Kind, inv.SenderID, inv.ReceiverID) {
		return fmt.Errorf("pending friend request: %w", models.ErrConflict)
	}
	s.data.invitations[inv.ID] = *inv
	return nil
}

func (s *Store) GetInvitation(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	inv, ok := s.data.invitations[id]
	if !ok {
		return nil, notFound("invitation", id)
	}
	return &inv, nil
}

// GetInvitationForUpdate: внутри транзакции запись уже защищена мьютексом хранилища
func (s *Store) GetInvitationForUpdate(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	return s.GetInvitation(ctx, id)
}

func (s *Store) UpdateInvitation(ctx context.Context, inv *models.Invitation) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	existing, ok := s.data.invitations[inv.ID]
	if !ok {
		return notFound("invitation", inv.ID)
	}
	existing.Status = inv.Status
	existing.ResponseMessage = inv.ResponseMessage
	existing.UpdatedAt = inv.UpdatedAt
	s.data.invitations[inv.ID] = existing
	return nil
}

func (s *Store) HasPendingInvitation(ctx context.Context, kind models.InvitationKind, senderID, receiverID uuid.UUID) (bool, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return false, err
	}
	defer unlock()
	return s.hasPending(kind, senderID, receiverID), nil
}

func (s *Store) hasPending(kind models.InvitationKind, senderID, receiverID uuid.UUID) bool {
	for _, inv := range s.data.invitations {
		if inv.Kind == kind && inv.SenderID == senderID && inv.ReceiverID == receiverID &&
			inv.Status == models.InvitationPending {
			return true
		}
	}
	return false
}

func (s *Store) ListInvitations(ctx context.Context, filter models.InvitationFilter) ([]*models.Invitation, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	items := make([]*models.Invitation, 0)
	for _, inv := range s.data.invitations {
		if !inv.Involves(filter.UserID) {
			continue
		}
		if filter.Kind != "" && inv.Kind != filter.Kind {
			continue
		}
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		inv := inv
		items = append(items, &inv)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) ExpireOverdue(ctx context.Context, now time.Time, userID *uuid.UUID) (int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for id, inv := range s.data.invitations {
		if inv.Status != models.InvitationPending || !inv.IsExpired(now) {
			continue
		}
		if userID != nil && !inv.Involves(*userID) {
			continue
		}
		inv.Status = models.InvitationExpired
		inv.UpdatedAt = now
		s.data.invitations[id] = inv
		n++
	}
	return n, nil
}

// ---- уведомления ----

func (s *Store) CreateNotification(ctx context.Context, n *models.Notification) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if _, ok := s.data.accounts[n.UserID]; !ok {
		return notFound("account", n.UserID)
	}
	stored := *n
	stored.Data = make(map[string]string, len(n.Data))
	for k, v := range n.Data {
		stored.Data[k] = v
	}
	s.data.notifications[n.ID] = stored
	return nil
}

func (s *Store) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*models.Notification, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	items := make([]*models.Notification, 0)
	for _, n := range s.data.notifications {
		if n.UserID != userID || (unreadOnly && n.IsRead) {
			continue
		}
		n := n
		items = append(items, &n)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	n, ok := s.data.notifications[id]
	if !ok || n.UserID != userID {
		return notFound("notification", id)
	}
	n.IsRead = true
	s.data.notifications[id] = n
	return nil
}

func (s *Store) MarkNotificationSent(ctx context.Context, id uuid.UUID) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if n, ok := s.data.notifications[id]; ok {
		n.IsSent = true
		s.data.notifications[id] = n
	}
	return nil
}

func (s *Store) DeleteNotificationsBefore(ctx context.Context, before time.Time) (int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()
	var count int64
	for id, n := range s.data.notifications {
		if n.CreatedAt.Before(before) {
			delete(s.data.notifications, id)
			count++
		}
	}
	return count, nil
}

// ---- токены устройств ----

func (s *Store) UpsertDeviceToken(ctx context.Context, token *models.DeviceToken) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	if existing, ok := s.data.tokens[token.Token]; ok {
		token.ID = existing.ID
		token.CreatedAt = existing.CreatedAt
	}
	token.IsActive = true
	s.data.tokens[token.Token] = *token
	return nil
}

func (s *Store) ListActiveTokens(ctx context.Context, userID uuid.UUID) ([]string, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()
	active := make([]models.DeviceToken, 0)
	for _, t := range s.data.tokens {
		if t.UserID == userID && t.IsActive {
			active = append(active, t)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].LastUsed.After(active[j].LastUsed)
	})
	tokens := make([]string, len(active))
	for i, t := range active {
		tokens[i] = t.Token
	}
	return tokens, nil
}

func (s *Store) DeactivateTokens(ctx context.Context, tokens []string) error {
	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	for _, tok := range tokens {
		if t, ok := s.data.tokens[tok]; ok {
			t.IsActive = false
			s.data.tokens[tok] = t
		}
	}
	return nil
}

func (s *Store) DeleteInactiveTokensBefore(ctx context.Context, before time.Time) (int64, error) {
	unlock, err := s.lock(ctx)
	if err != nil {
		return 0, err
	}
	defer unlock()
	var n int64
	for tok, t := range s.data.tokens {
		if !t.IsActive && t.LastUsed.Before(before) {
			delete(s.data.tokens, tok)
			n++
		}
	}
	return n, nil
}
