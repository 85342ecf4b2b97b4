package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAccountRequest DTO для регистрации
// @Description DTO для регистрации
type CreateAccountRequest struct {
	Username string `json:"username" validate:"required,min=2,max=150"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// LocationDTO - точка в порядке (latitude, longitude)
// @Description Точка WGS84
type LocationDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AccountResponse DTO ответа на регистрацию
// @Description Аккаунт вместе с созданным профилем
type AccountResponse struct {
	ID        uuid.UUID       `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Profile   ProfileResponse `json:"profile"`
}

// ProfileResponse DTO профиля
// @Description DTO профиля
type ProfileResponse struct {
	UserID          uuid.UUID    `json:"user_id"`
	Username        string       `json:"username"`
	Bio             string       `json:"bio"`
	LocationSharing bool         `json:"location_sharing"`
	Location        *LocationDTO `json:"location,omitempty"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// UpdateProfileRequest DTO частичного обновления профиля
// @Description Поля, равные null, не меняются
type UpdateProfileRequest struct {
	Bio             *string      `json:"bio" validate:"omitempty,max=500"`
	LocationSharing *bool        `json:"location_sharing"`
	Location        *LocationDTO `json:"location"`
}

// UpdateLocationRequest DTO обновления координат
// @Description DTO обновления координат
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// FriendResponse DTO друга
// @Description DTO друга
type FriendResponse struct {
	UserID   uuid.UUID    `json:"user_id"`
	Username string       `json:"username"`
	Bio      string       `json:"bio,omitempty"`
	Location *LocationDTO `json:"location,omitempty"`
}

// FriendsResponse DTO списка друзей
// @Description Список друзей и их количество
type FriendsResponse struct {
	Count   int              `json:"count"`
	Friends []FriendResponse `json:"friends"`
}

// NearbyFriendResponse DTO друга рядом
// @Description Друг в радиусе поиска
type NearbyFriendResponse struct {
	FriendResponse
	DistanceMeters float64 `json:"distance_meters"`
}

// CreateInvitationRequest DTO создания приглашения; venue_id и message - только для meetup-ping
// @Description DTO создания приглашения
type CreateInvitationRequest struct {
	ReceiverID uuid.UUID  `json:"receiver_id" validate:"required"`
	VenueID    *uuid.UUID `json:"venue_id"`
	Message    string     `json:"message" validate:"max=200"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

// InvitationActionRequest DTO ответа на приглашение
// @Description Необязательное сообщение к ответу
type InvitationActionRequest struct {
	Message string `json:"message" validate:"max=200"`
}

// InvitationResponse DTO приглашения
// @Description DTO приглашения
type InvitationResponse struct {
	ID              uuid.UUID  `json:"id"`
	Kind            string     `json:"kind"`
	SenderID        uuid.UUID  `json:"sender_id"`
	ReceiverID      uuid.UUID  `json:"receiver_id"`
	VenueID         *uuid.UUID `json:"venue_id,omitempty"`
	Message         string     `json:"message,omitempty"`
	ResponseMessage string     `json:"response_message,omitempty"`
	Status          string     `json:"status"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateVenueRequest DTO создания заведения
// @Description DTO создания заведения
type CreateVenueRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=200"`
	Address     string   `json:"address" validate:"max=255"`
	City        string   `json:"city" validate:"max=100"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required,oneof=bar club lounge pub"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
}

// UpdateVenueRequest DTO частичного обновления заведения
// @Description Поля, равные null, не меняются. Координаты и категория меняются только до первого чекина
type UpdateVenueRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Address     *string  `json:"address" validate:"omitempty,max=255"`
	City        *string  `json:"city" validate:"omitempty,max=100"`
	Description *string  `json:"description"`
	Category    *string  `json:"category" validate:"omitempty,oneof=bar club lounge pub"`
	Latitude    *float64 `json:"latitude" validate:"required_with=Longitude"`
	Longitude   *float64 `json:"longitude" validate:"required_with=Latitude"`
}

// VenueResponse DTO заведения
// @Description DTO заведения
type VenueResponse struct {
	ID             uuid.UUID   `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address,omitempty"`
	City           string      `json:"city,omitempty"`
	Description    string      `json:"description,omitempty"`
	Category       string      `json:"category"`
	Location       LocationDTO `json:"location"`
	DistanceMeters *float64    `json:"distance_meters,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// VibeResponse DTO текущей атмосферы
// @Description Текущая атмосфера заведения
type VibeResponse struct {
	Vibe          string `json:"vibe"`
	CheckInsCount int    `json:"checkins_count"`
}

// PopularityResponse DTO популярности заведения
// @Description Популярность заведения
type PopularityResponse struct {
	VenueID uuid.UUID `json:"venue_id"`
	Score   float64   `json:"score"`
}

// RatingRequest DTO оценки заведения
// @Description DTO оценки заведения
type RatingRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"max=1000"`
}

// RatingResponse DTO оценки
// @Description DTO оценки
type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	VenueID   uuid.UUID `json:"venue_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCheckInRequest DTO чекина
// @Description DTO чекина
type CreateCheckInRequest struct {
	VenueID    uuid.UUID `json:"venue_id" validate:"required"`
	VibeRating string    `json:"vibe_rating" validate:"required,oneof=Lively Chill Crowded Empty"`
	Visibility string    `json:"visibility" validate:"omitempty,oneof=public friends private"`
}

// CheckInResponse DTO чекина
// @Description DTO чекина
type CheckInResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	VenueID    uuid.UUID `json:"venue_id"`
	VibeRating string    `json:"vibe_rating"`
	Visibility string    `json:"visibility"`
	Timestamp  time.Time `json:"timestamp"`
}

// NotificationResponse DTO уведомления
// @Description DTO уведомления
type NotificationResponse struct {
	ID        uuid.UUID         `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data,omitempty"`
	IsRead    bool              `json:"is_read"`
	CreatedAt time.Time         `json:"created_at"`
}

// DeviceTokenRequest DTO регистрации устройства
// @Description DTO регистрации устройства
type DeviceTokenRequest struct {
	Token      string `json:"token" validate:"required,max=255"`
	DeviceType string `json:"device_type" validate:"required,oneof=ios android web"`
}
