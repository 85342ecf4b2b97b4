package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
)

const maxInvitationMessageLength = 200

// InvitationService - общий конечный автомат для заявок в друзья и пингов на встречу.
// Просрочка применяется лениво: при любом чтении или действии над приглашением.
type InvitationService interface {
	CreateFriendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*models.Invitation, error)
	CreateMeetupPing(ctx context.Context, senderID uuid.UUID, req models.MeetupPingRequest) (*models.Invitation, error)
	Accept(ctx context.Context, actorID, id uuid.UUID, responseMessage string) (*models.Invitation, error)
	Reject(ctx context.Context, actorID, id uuid.UUID, responseMessage string) (*models.Invitation, error)
	Cancel(ctx context.Context, actorID, id uuid.UUID) (*models.Invitation, error)
	GetInvitation(ctx context.Context, actorID, id uuid.UUID) (*models.Invitation, error)
	ListInvitations(ctx context.Context, filter models.InvitationFilter) ([]*models.Invitation, error)
	ExpireOverdue(ctx context.Context) (int64, error)
}

type invitationService struct {
	tx       Transactor
	repo     InvitationRepository
	profiles ProfileRepository
	venues   VenueRepository
	social   SocialGraph
	notifier Notifier
	logger   *logrus.Logger
	cfg      *config.Config
	now      func() time.Time
}

func NewInvitationService(
	tx Transactor,
	repo InvitationRepository,
	profiles ProfileRepository,
	venues VenueRepository,
	social SocialGraph,
	notifier Notifier,
	logger *logrus.Logger,
	cfg *config.Config,
) InvitationService {
	return &invitationService{
		tx:       tx,
		repo:     repo,
		profiles: profiles,
		venues:   venues,
		social:   social,
		notifier: notifier,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
	}
}

type actorRole int

const (
	roleReceiver actorRole = iota
	roleSender
)

// transition описывает один переход из pending
type transition struct {
	name     string
	actor    actorRole
	kinds    []models.InvitationKind
	target   func(models.InvitationKind) models.InvitationStatus
	response string
}

func (t transition) allows(kind models.InvitationKind) bool {
	if len(t.kinds) == 0 {
		return true
	}
	for _, k := range t.kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (s *invitationService) CreateFriendRequest(ctx context.Context, senderID, receiverID uuid.UUID) (*models.Invitation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "invitations",
		"method":      "CreateFriendRequest",
		"sender_id":   senderID,
		"receiver_id": receiverID,
	})
	log.Info("Attempting to create friend request")

	if senderID == receiverID {
		return nil, fmt.Errorf("%w: cannot send friend request to yourself", models.ErrInvalidInvitation)
	}
	sender, err := s.profiles.GetProfile(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get sender profile: %w", err)
	}
	if _, err := s.profiles.GetProfile(ctx, receiverID); err != nil {
		return nil, fmt.Errorf("service: could not get receiver profile: %w", err)
	}

	friends, err := s.social.AreFriends(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if friends {
		return nil, fmt.Errorf("%w: users are already friends", models.ErrConflict)
	}

	pending, err := s.repo.HasPendingInvitation(ctx, models.InvitationFriendRequest, senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("service: could not check pending requests: %w", err)
	}
	if pending {
		return nil, fmt.Errorf("%w: a pending request already exists", models.ErrConflict)
	}

	now := s.now().UTC()
	invitation := &models.Invitation{
		ID:         uuid.New(),
		Kind:       models.InvitationFriendRequest,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.InvitationPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateInvitation(ctx, invitation); err != nil {
		log.WithError(err).Warn("Failed to create friend request in repository")
		return nil, fmt.Errorf("service: could not create friend request: %w", err)
	}

	dispatch(ctx, s.notifier, log, receiverID, models.NotificationFriendRequest,
		"New Friend Request",
		fmt.Sprintf("%s sent you a friend request", sender.Username),
		map[string]string{
			"invitation_id":   invitation.ID.String(),
			"sender_id":       senderID.String(),
			"sender_username": sender.Username,
		})

	log.WithField("invitation_id", invitation.ID).Info("Friend request created successfully")
	return invitation, nil
}

func (s *invitationService) CreateMeetupPing(ctx context.Context, senderID uuid.UUID, req models.MeetupPingRequest) (*models.Invitation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "invitations",
		"method":      "CreateMeetupPing",
		"sender_id":   senderID,
		"receiver_id": req.ReceiverID,
		"venue_id":    req.VenueID,
	})
	log.Info("Attempting to create meetup ping")

	if senderID == req.ReceiverID {
		return nil, fmt.Errorf("%w: cannot send ping to yourself", models.ErrInvalidInvitation)
	}
	if len([]rune(req.Message)) > maxInvitationMessageLength {
		return nil, fmt.Errorf("%w: message must be at most %d characters", models.ErrInvalidInput, maxInvitationMessageLength)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.cfg.MeetupPingTTL)
	if req.ExpiresAt != nil {
		if !req.ExpiresAt.After(now) {
			return nil, fmt.Errorf("%w: expiration time must be in the future", models.ErrInvalidInvitation)
		}
		expiresAt = req.ExpiresAt.UTC()
	}

	sender, err := s.profiles.GetProfile(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get sender profile: %w", err)
	}
	venue, err := s.venues.GetVenue(ctx, req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get venue: %w", err)
	}

	friends, err := s.social.AreFriends(ctx, senderID, req.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, fmt.Errorf("%w: can only send pings to friends", models.ErrInvalidInvitation)
	}

	venueID := venue.ID
	invitation := &models.Invitation{
		ID:         uuid.New(),
		Kind:       models.InvitationMeetupPing,
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		VenueID:    &venueID,
		Message:    req.Message,
		Status:     models.InvitationPending,
		ExpiresAt:  &expiresAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.CreateInvitation(ctx, invitation); err != nil {
		log.WithError(err).Warn("Failed to create meetup ping in repository")
		return nil, fmt.Errorf("service: could not create meetup ping: %w", err)
	}

	dispatch(ctx, s.notifier, log, req.ReceiverID, models.NotificationMeetupPing,
		"New Meetup Request",
		fmt.Sprintf("%s wants to meet at %s", sender.Username, venue.Name),
		map[string]string{
			"ping_id":   invitation.ID.String(),
			"sender_id": senderID.String(),
			"venue_id":  venue.ID.String(),
		})

	log.WithField("invitation_id", invitation.ID).Info("Meetup ping created successfully")
	return invitation, nil
}

func (s *invitationService) Accept(ctx context.Context, actorID, id uuid.UUID, responseMessage string) (*models.Invitation, error) {
	return s.apply(ctx, actorID, id, transition{
		name:  "accept",
		actor: roleReceiver,
		target: func(models.InvitationKind) models.InvitationStatus {
			return models.InvitationAccepted
		},
		response: responseMessage,
	})
}

func (s *invitationService) Reject(ctx context.Context, actorID, id uuid.UUID, responseMessage string) (*models.Invitation, error) {
	return s.apply(ctx, actorID, id, transition{
		name:  "reject",
		actor: roleReceiver,
		target: func(kind models.InvitationKind) models.InvitationStatus {
			if kind == models.InvitationMeetupPing {
				return models.InvitationDeclined
			}
			return models.InvitationRejected
		},
		response: responseMessage,
	})
}

func (s *invitationService) Cancel(ctx context.Context, actorID, id uuid.UUID) (*models.Invitation, error) {
	return s.apply(ctx, actorID, id, transition{
		name:  "cancel",
		actor: roleSender,
		kinds: []models.InvitationKind{models.InvitationFriendRequest},
		target: func(models.InvitationKind) models.InvitationStatus {
			return models.InvitationCanceled
		},
	})
}

// apply выполняет переход как атомарный read-modify-write над одной записью.
// Просроченное pending-приглашение сначала фиксируется как expired, и переход завершается ErrExpired.
func (s *invitationService) apply(ctx context.Context, actorID, id uuid.UUID, t transition) (*models.Invitation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "invitations",
		"method":        t.name,
		"invitation_id": id,
		"actor_id":      actorID,
	})
	log.Info("Attempting invitation transition")

	if len([]rune(t.response)) > maxInvitationMessageLength {
		return nil, fmt.Errorf("%w: message must be at most %d characters", models.ErrInvalidInput, maxInvitationMessageLength)
	}

	var (
		result  *models.Invitation
		expired bool
	)
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		inv, err := s.repo.GetInvitationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !inv.Involves(actorID) {
			return fmt.Errorf("invitation %s: %w", id, models.ErrNotFound)
		}

		// Ленивая просрочка применяется раньше проверок роли и вида приглашения
		now := s.now().UTC()
		if inv.Status == models.InvitationPending && inv.IsExpired(now) {
			inv.Status = models.InvitationExpired
			inv.UpdatedAt = now
			if err := s.repo.UpdateInvitation(ctx, inv); err != nil {
				return err
			}
			result, expired = inv, true
			return nil
		}

		if !t.allows(inv.Kind) {
			return fmt.Errorf("%w: %s is not supported for %s", models.ErrInvalidInvitation, t.name, inv.Kind)
		}
		if (t.actor == roleReceiver && actorID != inv.ReceiverID) || (t.actor == roleSender && actorID != inv.SenderID) {
			return fmt.Errorf("%w: only the %s can %s this invitation", models.ErrForbidden, t.actor, t.name)
		}
		if inv.Status == models.InvitationExpired {
			return fmt.Errorf("%w: invitation %s", models.ErrExpired, id)
		}
		if inv.Status.Terminal() {
			return fmt.Errorf("%w: invitation is %s", models.ErrAlreadyProcessed, inv.Status)
		}

		inv.Status = t.target(inv.Kind)
		if t.response != "" {
			inv.ResponseMessage = t.response
		}
		inv.UpdatedAt = now
		if err := s.repo.UpdateInvitation(ctx, inv); err != nil {
			return err
		}

		// Дружба пишется в той же транзакции, что и статус
		if inv.Kind == models.InvitationFriendRequest && inv.Status == models.InvitationAccepted {
			if err := s.social.AddFriendship(ctx, inv.SenderID, inv.ReceiverID); err != nil {
				return err
			}
		}
		result = inv
		return nil
	})
	if err != nil {
		if isCallerError(err) {
			log.WithError(err).Warn("Invitation transition rejected")
		} else {
			log.WithError(err).Error("Invitation transition failed")
		}
		return nil, fmt.Errorf("service: could not %s invitation: %w", t.name, err)
	}
	if expired {
		log.Info("Invitation expired before transition")
		return result, fmt.Errorf("service: could not %s invitation: %w", t.name, models.ErrExpired)
	}

	s.afterTransition(ctx, log, result)
	log.WithField("status", result.Status).Info("Invitation transition applied")
	return result, nil
}

func (r actorRole) String() string {
	if r == roleSender {
		return "sender"
	}
	return "receiver"
}

// afterTransition - побочные эффекты после фиксации транзакции
func (s *invitationService) afterTransition(ctx context.Context, log *logrus.Entry, inv *models.Invitation) {
	receiverName := s.displayName(ctx, inv.ReceiverID)

	switch {
	case inv.Kind == models.InvitationFriendRequest && inv.Status == models.InvitationAccepted:
		s.social.InvalidateFriendCounts(ctx, inv.SenderID, inv.ReceiverID)
		dispatch(ctx, s.notifier, log, inv.SenderID, models.NotificationFriendAccepted,
			"Friend Request Accepted",
			fmt.Sprintf("%s accepted your friend request", receiverName),
			map[string]string{
				"invitation_id": inv.ID.String(),
				"friend_id":     inv.ReceiverID.String(),
			})
	case inv.Kind == models.InvitationMeetupPing &&
		(inv.Status == models.InvitationAccepted || inv.Status == models.InvitationDeclined):
		data := map[string]string{
			"ping_id":     inv.ID.String(),
			"receiver_id": inv.ReceiverID.String(),
			"status":      string(inv.Status),
		}
		if inv.VenueID != nil {
			data["venue_id"] = inv.VenueID.String()
		}
		dispatch(ctx, s.notifier, log, inv.SenderID, models.NotificationPingResponse,
			"Meetup Response",
			fmt.Sprintf("%s %s your meetup request", receiverName, inv.Status),
			data)
	}
}

func (s *invitationService) displayName(ctx context.Context, userID uuid.UUID) string {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil || profile.Username == "" {
		return "Someone"
	}
	return profile.Username
}

// GetInvitation возвращает приглашение участнику; остальным - ErrNotFound
func (s *invitationService) GetInvitation(ctx context.Context, actorID, id uuid.UUID) (*models.Invitation, error) {
	inv, err := s.repo.GetInvitation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get invitation: %w", err)
	}
	if !inv.Involves(actorID) {
		return nil, fmt.Errorf("service: could not get invitation %s: %w", id, models.ErrNotFound)
	}
	if inv.Status != models.InvitationPending || !inv.IsExpired(s.now()) {
		return inv, nil
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		locked, err := s.repo.GetInvitationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		now := s.now().UTC()
		if locked.Status == models.InvitationPending && locked.IsExpired(now) {
			locked.Status = models.InvitationExpired
			locked.UpdatedAt = now
			if err := s.repo.UpdateInvitation(ctx, locked); err != nil {
				return err
			}
		}
		inv = locked
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not expire invitation: %w", err)
	}
	return inv, nil
}

func (s *invitationService) ListInvitations(ctx context.Context, filter models.InvitationFilter) ([]*models.Invitation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "invitations",
		"method":  "ListInvitations",
		"user_id": filter.UserID,
	})
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown invitation kind %q", models.ErrInvalidInput, filter.Kind)
	}

	userID := filter.UserID
	if _, err := s.repo.ExpireOverdue(ctx, s.now().UTC(), &userID); err != nil {
		log.WithError(err).Error("Failed to expire overdue invitations")
		return nil, fmt.Errorf("service: could not expire invitations: %w", err)
	}

	items, err := s.repo.ListInvitations(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list invitations")
		return nil, fmt.Errorf("service: could not list invitations: %w", err)
	}
	return items, nil
}

// ExpireOverdue - необязательная периодическая зачистка для внешних потребителей списков
func (s *invitationService) ExpireOverdue(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpireOverdue(ctx, s.now().UTC(), nil)
	if err != nil {
		return 0, fmt.Errorf("service: could not expire invitations: %w", err)
	}
	return n, nil
}

// isCallerError отличает ошибки запроса от сбоев инфраструктуры для уровня логирования
func isCallerError(err error) bool {
	for _, target := range []error{
		models.ErrInvalidInvitation, models.ErrInvalidInput, models.ErrInvalidLocation,
		models.ErrAlreadyProcessed, models.ErrExpired, models.ErrForbidden,
		models.ErrNotFound, models.ErrConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
