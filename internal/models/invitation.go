package models

import (
	"time"

	"github.com/google/uuid"
)

type InvitationKind string

const (
	InvitationFriendRequest InvitationKind = "friend-request"
	InvitationMeetupPing    InvitationKind = "meetup-ping"
)

func (k InvitationKind) Valid() bool {
	return k == InvitationFriendRequest || k == InvitationMeetupPing
}

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
	InvitationDeclined InvitationStatus = "declined"
	InvitationExpired  InvitationStatus = "expired"
	InvitationCanceled InvitationStatus = "canceled"
)

func (s InvitationStatus) Terminal() bool {
	return s != InvitationPending
}

// Invitation - общее предложение с ограниченным сроком: заявка в друзья или пинг на встречу.
type Invitation struct {
	ID              uuid.UUID        `json:"id"`
	Kind            InvitationKind   `json:"kind"`
	SenderID        uuid.UUID        `json:"sender_id"`
	ReceiverID      uuid.UUID        `json:"receiver_id"`
	VenueID         *uuid.UUID       `json:"venue_id,omitempty"`
	Message         string           `json:"message,omitempty"`
	ResponseMessage string           `json:"response_message,omitempty"`
	Status          InvitationStatus `json:"status"`
	ExpiresAt       *time.Time       `json:"expires_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// IsExpired сообщает, истёк ли срок действия на момент now
func (i *Invitation) IsExpired(now time.Time) bool {
	return i.ExpiresAt != nil && !now.Before(*i.ExpiresAt)
}

// Involves сообщает, является ли пользователь участником приглашения
func (i *Invitation) Involves(userID uuid.UUID) bool {
	return i.SenderID == userID || i.ReceiverID == userID
}

// InvitationFilter - параметры выборки приглашений пользователя
type InvitationFilter struct {
	UserID uuid.UUID
	Kind   InvitationKind
	Status InvitationStatus
}

// MeetupPingRequest - параметры нового пинга на встречу; без ExpiresAt действует срок по умолчанию
type MeetupPingRequest struct {
	ReceiverID uuid.UUID
	VenueID    uuid.UUID
	Message    string
	ExpiresAt  *time.Time
}
