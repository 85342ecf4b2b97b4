package models

import (
	"time"

	"github.com/google/uuid"
)

type VibeRating string

const (
	VibeLively  VibeRating = "Lively"
	VibeChill   VibeRating = "Chill"
	VibeCrowded VibeRating = "Crowded"
	VibeEmpty   VibeRating = "Empty"
	// VibeUnknown - явный результат для заведения без свежих чекинов
	VibeUnknown VibeRating = "Unknown"
)

// VibeRatings перечисляет допустимые оценки в порядке, используемом при окончательном разрешении ничьей.
var VibeRatings = []VibeRating{VibeLively, VibeChill, VibeCrowded, VibeEmpty}

func (r VibeRating) Valid() bool {
	return r.rank() >= 0
}

func (r VibeRating) rank() int {
	for i, v := range VibeRatings {
		if v == r {
			return i
		}
	}
	return -1
}

// Less задаёт детерминированный порядок оценок
func (r VibeRating) Less(other VibeRating) bool {
	return r.rank() < other.rank()
}

type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityFriends Visibility = "friends"
	VisibilityPrivate Visibility = "private"
)

func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityFriends, VisibilityPrivate:
		return true
	}
	return false
}

// CheckIn не изменяется после создания: его можно только удалить.
type CheckIn struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	VenueID    uuid.UUID  `json:"venue_id"`
	VibeRating VibeRating `json:"vibe_rating"`
	Visibility Visibility `json:"visibility"`
	Timestamp  time.Time  `json:"timestamp"`
}

// VibeSample - минимальная проекция чекина для агрегации
type VibeSample struct {
	Rating    VibeRating
	Timestamp time.Time
}

// VenueVibe - текущая атмосфера заведения
type VenueVibe struct {
	Rating        VibeRating `json:"vibe"`
	CheckInsCount int        `json:"checkins_count"`
}
