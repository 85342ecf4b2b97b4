package models

import (
	"time"

	"github.com/google/uuid"
)

type VenueCategory string

const (
	VenueCategoryBar    VenueCategory = "bar"
	VenueCategoryClub   VenueCategory = "club"
	VenueCategoryLounge VenueCategory = "lounge"
	VenueCategoryPub    VenueCategory = "pub"
)

func (c VenueCategory) Valid() bool {
	switch c {
	case VenueCategoryBar, VenueCategoryClub, VenueCategoryLounge, VenueCategoryPub:
		return true
	}
	return false
}

type Venue struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	Description string        `json:"description"`
	Location    Location      `json:"location"`
	Category    VenueCategory `json:"category"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// VenueDistance - заведение с расстоянием до точки запроса
type VenueDistance struct {
	Venue          *Venue  `json:"venue"`
	DistanceMeters float64 `json:"distance_meters"`
}

// VenueFilter - параметры выборки заведений.
// RadiusMeters == nil означает радиус по умолчанию; 0 оставляет только точки, совпадающие с центром.
type VenueFilter struct {
	Category     VenueCategory
	Center       *Location
	RadiusMeters *float64
	Page         int
	PageSize     int
}

func (f VenueFilter) Radius() float64 {
	if f.RadiusMeters == nil {
		return 0
	}
	return *f.RadiusMeters
}

// VenueUpdate - частичное изменение заведения; nil поля не меняются.
// Location и Category меняются только пока на заведение нет чекинов.
type VenueUpdate struct {
	Name        *string
	Address     *string
	City        *string
	Description *string
	Location    *Location
	Category    *VenueCategory
}

type VenueRating struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	VenueID   uuid.UUID `json:"venue_id"`
	Rating    int       `json:"rating"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	MinRating = 1
	MaxRating = 5
)
