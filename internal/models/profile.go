package models

import (
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserProfile создаётся вместе с аккаунтом и удаляется только каскадно с ним.
type UserProfile struct {
	UserID          uuid.UUID `json:"user_id"`
	Username        string    `json:"username"`
	Bio             string    `json:"bio"`
	LocationSharing bool      `json:"location_sharing"`
	Location        *Location `json:"location,omitempty"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SetLocationSharing переключает флаг; при выключении координаты стираются в той же записи.
func (p *UserProfile) SetLocationSharing(enabled bool) {
	p.LocationSharing = enabled
	if !enabled {
		p.Location = nil
	}
}

// Normalize восстанавливает инвариант location == nil при выключенном шеринге.
// Вызывается на каждом пути записи профиля.
func (p *UserProfile) Normalize() {
	if !p.LocationSharing {
		p.Location = nil
	}
}

// SharedLocation возвращает координаты, только если пользователь ими делится.
func (p *UserProfile) SharedLocation() (Location, bool) {
	if !p.LocationSharing || p.Location == nil {
		return Location{}, false
	}
	return *p.Location, true
}

// NearbyFriend - друг в радиусе поиска
type NearbyFriend struct {
	Profile        *UserProfile `json:"profile"`
	DistanceMeters float64      `json:"distance_meters"`
}

// ProfileUpdate - частичное обновление профиля; nil-поля не меняются
type ProfileUpdate struct {
	Bio             *string
	LocationSharing *bool
	Location        *Location
}
