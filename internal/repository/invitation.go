package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/service"
)

type InvitationRepository struct {
	db *pgxpool.Pool
}

func NewInvitationRepository(db *pgxpool.Pool) service.InvitationRepository {
	return &InvitationRepository{db: db}
}

const invitationColumns = `
	id,
	kind,
	sender_id,
	receiver_id,
	venue_id,
	message,
	response_message,
	status,
	expires_at,
	created_at,
	updated_at`

// CreateInvitation; второй pending-запрос той же пары отсекается частичным уникальным индексом
func (r *InvitationRepository) CreateInvitation(ctx context.Context, inv *models.Invitation) error {
	query := `
		INSERT INTO invitations (id, kind, sender_id, receiver_id, venue_id, message, response_message, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query,
		inv.ID,
		inv.Kind,
		inv.SenderID,
		inv.ReceiverID,
		inv.VenueID,
		inv.Message,
		inv.ResponseMessage,
		inv.Status,
		inv.ExpiresAt,
		inv.CreatedAt,
		inv.UpdatedAt,
	)
	if err != nil {
		return mapError("failed to create invitation", err)
	}
	return nil
}

func (r *InvitationRepository) GetInvitation(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1;`
	inv, err := scanInvitation(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(fmt.Sprintf("failed to get invitation %s", id), err)
	}
	return inv, nil
}

// GetInvitationForUpdate берет строку под FOR UPDATE: конкурирующий переход ждет коммита
// и затем видит уже терминальный статус.
func (r *InvitationRepository) GetInvitationForUpdate(ctx context.Context, id uuid.UUID) (*models.Invitation, error) {
	query := `SELECT ` + invitationColumns + ` FROM invitations WHERE id = $1 FOR UPDATE;`
	inv, err := scanInvitation(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(fmt.Sprintf("failed to lock invitation %s", id), err)
	}
	return inv, nil
}

func (r *InvitationRepository) UpdateInvitation(ctx context.Context, inv *models.Invitation) error {
	query := `
		UPDATE invitations SET
			status = $2,
			response_message = $3,
			updated_at = $4
		WHERE id = $1;
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, inv.ID, inv.Status, inv.ResponseMessage, inv.UpdatedAt)
	if err != nil {
		return mapError("failed to update invitation", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("invitation %s: %w", inv.ID, models.ErrNotFound)
	}
	return nil
}

func (r *InvitationRepository) HasPendingInvitation(ctx context.Context, kind models.InvitationKind, senderID, receiverID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM invitations
			WHERE kind = $1 AND sender_id = $2 AND receiver_id = $3 AND status = 'pending'
		);
	`
	var ok bool
	if err := conn(ctx, r.db).QueryRow(ctx, query, kind, senderID, receiverID).Scan(&ok); err != nil {
		return false, mapError("failed to check pending invitation", err)
	}
	return ok, nil
}

// ListInvitations возвращает отправленные и полученные приглашения пользователя, новые первыми
func (r *InvitationRepository) ListInvitations(ctx context.Context, filter models.InvitationFilter) ([]*models.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations
		WHERE (sender_id = $1 OR receiver_id = $1)
			AND ($2 = '' OR kind = $2)
			AND ($3 = '' OR status = $3)
		ORDER BY created_at DESC;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, filter.UserID, string(filter.Kind), string(filter.Status))
	if err != nil {
		return nil, mapError("failed to list invitations", err)
	}
	defer rows.Close()

	items := make([]*models.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation row: %w", err)
		}
		items = append(items, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListInvitations", err)
	}
	return items, nil
}

func (r *InvitationRepository) ExpireOverdue(ctx context.Context, now time.Time, userID *uuid.UUID) (int64, error) {
	query := `
		UPDATE invitations SET
			status = 'expired',
			updated_at = $1
		WHERE status = 'pending'
			AND expires_at IS NOT NULL
			AND expires_at <= $1
			AND ($2::uuid IS NULL OR sender_id = $2 OR receiver_id = $2);
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, now, userID)
	if err != nil {
		return 0, mapError("failed to expire invitations", err)
	}
	return cmdTag.RowsAffected(), nil
}

func scanInvitation(row rowScanner) (*models.Invitation, error) {
	inv := &models.Invitation{}
	if err := row.Scan(
		&inv.ID,
		&inv.Kind,
		&inv.SenderID,
		&inv.ReceiverID,
		&inv.VenueID,
		&inv.Message,
		&inv.ResponseMessage,
		&inv.Status,
		&inv.ExpiresAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return inv, nil
}
