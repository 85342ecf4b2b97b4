package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/service"
)

type RatingRepository struct {
	db *pgxpool.Pool
}

func NewRatingRepository(db *pgxpool.Pool) service.RatingRepository {
	return &RatingRepository{db: db}
}

// CreateRating полагается на уникальный ключ (user_id, venue_id): дубль дает ErrConflict
func (r *RatingRepository) CreateRating(ctx context.Context, rating *models.VenueRating) error {
	query := `
		INSERT INTO venue_ratings (id, user_id, venue_id, rating, review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query,
		rating.ID,
		rating.UserID,
		rating.VenueID,
		rating.Rating,
		rating.Review,
		rating.CreatedAt,
		rating.UpdatedAt,
	)
	if err != nil {
		return mapError("failed to create rating", err)
	}
	return nil
}

// UpsertRating сохраняет исходные id и created_at существующей оценки
func (r *RatingRepository) UpsertRating(ctx context.Context, rating *models.VenueRating) error {
	query := `
		INSERT INTO venue_ratings (id, user_id, venue_id, rating, review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, venue_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			review = EXCLUDED.review,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at;
	`
	err := conn(ctx, r.db).QueryRow(ctx, query,
		rating.ID,
		rating.UserID,
		rating.VenueID,
		rating.Rating,
		rating.Review,
		rating.CreatedAt,
		rating.UpdatedAt,
	).Scan(&rating.ID, &rating.CreatedAt)
	if err != nil {
		return mapError("failed to upsert rating", err)
	}
	return nil
}

func (r *RatingRepository) ListRatings(ctx context.Context, venueID uuid.UUID) ([]*models.VenueRating, error) {
	query := `
		SELECT id, user_id, venue_id, rating, review, created_at, updated_at
		FROM venue_ratings
		WHERE venue_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, venueID)
	if err != nil {
		return nil, mapError("failed to list ratings", err)
	}
	defer rows.Close()

	ratings := make([]*models.VenueRating, 0)
	for rows.Next() {
		rt := &models.VenueRating{}
		if err := rows.Scan(&rt.ID, &rt.UserID, &rt.VenueID, &rt.Rating, &rt.Review, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rating row: %w", err)
		}
		ratings = append(ratings, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListRatings", err)
	}
	return ratings, nil
}

// AverageRating возвращает 0 для заведения без оценок
func (r *RatingRepository) AverageRating(ctx context.Context, venueID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0)::float8 FROM venue_ratings WHERE venue_id = $1;`
	var avg float64
	if err := conn(ctx, r.db).QueryRow(ctx, query, venueID).Scan(&avg); err != nil {
		return 0, mapError("failed to get average rating", err)
	}
	return avg, nil
}
