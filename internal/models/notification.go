package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationFriendRequest  NotificationType = "friend_request"
	NotificationFriendAccepted NotificationType = "friend_accepted"
	NotificationMeetupPing     NotificationType = "meetup_ping"
	NotificationPingResponse   NotificationType = "ping_response"
	NotificationNearbyFriend   NotificationType = "nearby_friend"
	NotificationVenueAlert     NotificationType = "venue_alert"
)

type Notification struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Type      NotificationType  `json:"type"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Data      map[string]string `json:"data"`
	IsRead    bool              `json:"is_read"`
	IsSent    bool              `json:"is_sent"`
	CreatedAt time.Time         `json:"created_at"`
}

type DeviceType string

const (
	DeviceIOS     DeviceType = "ios"
	DeviceAndroid DeviceType = "android"
	DeviceWeb     DeviceType = "web"
)

func (d DeviceType) Valid() bool {
	switch d {
	case DeviceIOS, DeviceAndroid, DeviceWeb:
		return true
	}
	return false
}

type DeviceToken struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	Token      string     `json:"token"`
	DeviceType DeviceType `json:"device_type"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsed   time.Time  `json:"last_used"`
}
