package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/service"
)

// FriendshipRepository хранит дружбу двумя строками, по одной на направление
type FriendshipRepository struct {
	db *pgxpool.Pool
}

func NewFriendshipRepository(db *pgxpool.Pool) service.FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// AddFriendship пишет оба направления одним запросом
func (r *FriendshipRepository) AddFriendship(ctx context.Context, a, b uuid.UUID) error {
	query := `
		INSERT INTO friendships (user_id, friend_id)
		VALUES ($1, $2), ($2, $1)
		ON CONFLICT (user_id, friend_id) DO NOTHING;
	`
	if _, err := conn(ctx, r.db).Exec(ctx, query, a, b); err != nil {
		return mapError("failed to add friendship", err)
	}
	return nil
}

func (r *FriendshipRepository) RemoveFriendship(ctx context.Context, a, b uuid.UUID) error {
	query := `
		DELETE FROM friendships
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1);
	`
	if _, err := conn(ctx, r.db).Exec(ctx, query, a, b); err != nil {
		return mapError("failed to remove friendship", err)
	}
	return nil
}

func (r *FriendshipRepository) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM friendships WHERE user_id = $1 AND friend_id = $2);`
	var ok bool
	if err := conn(ctx, r.db).QueryRow(ctx, query, a, b).Scan(&ok); err != nil {
		return false, mapError("failed to check friendship", err)
	}
	return ok, nil
}

func (r *FriendshipRepository) CountFriends(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM friendships WHERE user_id = $1;`
	var count int
	if err := conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, mapError("failed to count friends", err)
	}
	return count, nil
}

// ListFriends возвращает профили друзей пользователя
func (r *FriendshipRepository) ListFriends(ctx context.Context, userID uuid.UUID) ([]*models.UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM friendships f
		JOIN user_profiles p ON p.user_id = f.friend_id
		JOIN accounts a ON a.id = p.user_id
		WHERE f.user_id = $1
		ORDER BY a.username;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, mapError("failed to list friends", err)
	}
	defer rows.Close()

	friends := make([]*models.UserProfile, 0)
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan friend row: %w", err)
		}
		friends = append(friends, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListFriends", err)
	}
	return friends, nil
}
