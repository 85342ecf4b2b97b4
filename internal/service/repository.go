package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/models"
)

// Transactor выполняет fn в одной транзакции. Репозитории, вызванные с ctx из fn,
// работают внутри неё; ошибка из fn откатывает все изменения.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ProfileRepository определяет контракт для работы с аккаунтами и профилями
type ProfileRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	CreateProfile(ctx context.Context, profile *models.UserProfile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *models.UserProfile) error
}

// FriendshipRepository хранит симметричное отношение дружбы.
// AddFriendship и RemoveFriendship меняют оба направления атомарно и идемпотентны.
type FriendshipRepository interface {
	AddFriendship(ctx context.Context, a, b uuid.UUID) error
	RemoveFriendship(ctx context.Context, a, b uuid.UUID) error
	AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error)
	CountFriends(ctx context.Context, userID uuid.UUID) (int, error)
	ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.UserProfile, error)
}

type VenueRepository interface {
	CreateVenue(ctx context.Context, venue *models.Venue) error
	GetVenue(ctx context.Context, id uuid.UUID) (*models.Venue, error)
	// GetVenueForUpdate блокирует строку до конца транзакции; новые чекины на заведение ждут её
	GetVenueForUpdate(ctx context.Context, id uuid.UUID) (*models.Venue, error)
	UpdateVenue(ctx context.Context, venue *models.Venue) error
	ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.VenueDistance, error)
}

type CheckInRepository interface {
	CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error
	GetCheckIn(ctx context.Context, id uuid.UUID) (*models.CheckIn, error)
	DeleteCheckIn(ctx context.Context, id uuid.UUID) error
	ListVibeSamples(ctx context.Context, venueID uuid.UUID, since time.Time) ([]models.VibeSample, error)
	CountCheckInsSince(ctx context.Context, venueID uuid.UUID, since time.Time) (int, error)
	// ListFeed возвращает чекины viewerID и не приватные чекины friendIDs, новые первыми
	ListFeed(ctx context.Context, viewerID uuid.UUID, friendIDs []uuid.UUID, limit int) ([]*models.CheckIn, error)
	DeleteCheckInsBefore(ctx context.Context, before time.Time) (int64, error)
}

// RatingRepository: CreateRating возвращает ErrConflict для существующей пары (user, venue),
// UpsertRating обновляет её.
type RatingRepository interface {
	CreateRating(ctx context.Context, rating *models.VenueRating) error
	UpsertRating(ctx context.Context, rating *models.VenueRating) error
	ListRatings(ctx context.Context, venueID uuid.UUID) ([]*models.VenueRating, error)
	AverageRating(ctx context.Context, venueID uuid.UUID) (float64, error)
}

type InvitationRepository interface {
	CreateInvitation(ctx context.Context, invitation *models.Invitation) error
	GetInvitation(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	// GetInvitationForUpdate блокирует запись до конца текущей транзакции
	GetInvitationForUpdate(ctx context.Context, id uuid.UUID) (*models.Invitation, error)
	UpdateInvitation(ctx context.Context, invitation *models.Invitation) error
	HasPendingInvitation(ctx context.Context, kind models.InvitationKind, senderID, receiverID uuid.UUID) (bool, error)
	ListInvitations(ctx context.Context, filter models.InvitationFilter) ([]*models.Invitation, error)
	// ExpireOverdue переводит просроченные pending-приглашения в expired;
	// userID ограничивает выборку приглашениями одного участника.
	ExpireOverdue(ctx context.Context, now time.Time, userID *uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) error
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error
	MarkNotificationSent(ctx context.Context, id uuid.UUID) error
	DeleteNotificationsBefore(ctx context.Context, before time.Time) (int64, error)
}

type DeviceTokenRepository interface {
	UpsertDeviceToken(ctx context.Context, token *models.DeviceToken) error
	ListActiveTokens(ctx context.Context, userID uuid.UUID) ([]string, error)
	DeactivateTokens(ctx context.Context, tokens []string) error
	DeleteInactiveTokensBefore(ctx context.Context, before time.Time) (int64, error)
}
