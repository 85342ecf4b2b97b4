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

type CheckInRepository struct {
	db *pgxpool.Pool
}

func NewCheckInRepository(db *pgxpool.Pool) service.CheckInRepository {
	return &CheckInRepository{db: db}
}

const checkInColumns = `id, user_id, venue_id, vibe_rating, visibility, created_at`

func (r *CheckInRepository) CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error {
	query := `
		INSERT INTO checkins (id, user_id, venue_id, vibe_rating, visibility, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.VenueID,
		checkIn.VibeRating,
		checkIn.Visibility,
		checkIn.Timestamp,
	)
	if err != nil {
		return mapError("failed to create check-in", err)
	}
	return nil
}

func (r *CheckInRepository) GetCheckIn(ctx context.Context, id uuid.UUID) (*models.CheckIn, error) {
	query := `SELECT ` + checkInColumns + ` FROM checkins WHERE id = $1;`
	checkIn, err := scanCheckIn(conn(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError(fmt.Sprintf("failed to get check-in %s", id), err)
	}
	return checkIn, nil
}

func (r *CheckInRepository) DeleteCheckIn(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM checkins WHERE id = $1;`, id)
	if err != nil {
		return mapError("failed to delete check-in", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("check-in %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// ListVibeSamples возвращает оценки чекинов заведения начиная с since
func (r *CheckInRepository) ListVibeSamples(ctx context.Context, venueID uuid.UUID, since time.Time) ([]models.VibeSample, error) {
	query := `
		SELECT vibe_rating, created_at
		FROM checkins
		WHERE venue_id = $1 AND created_at >= $2;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, venueID, since)
	if err != nil {
		return nil, mapError("failed to list vibe samples", err)
	}
	defer rows.Close()

	samples := make([]models.VibeSample, 0)
	for rows.Next() {
		var s models.VibeSample
		if err := rows.Scan(&s.Rating, &s.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan vibe sample: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListVibeSamples", err)
	}
	return samples, nil
}

func (r *CheckInRepository) CountCheckInsSince(ctx context.Context, venueID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM checkins WHERE venue_id = $1 AND created_at >= $2;`
	var count int
	if err := conn(ctx, r.db).QueryRow(ctx, query, venueID, since).Scan(&count); err != nil {
		return 0, mapError("failed to count check-ins", err)
	}
	return count, nil
}

func (r *CheckInRepository) ListFeed(ctx context.Context, viewerID uuid.UUID, friendIDs []uuid.UUID, limit int) ([]*models.CheckIn, error) {
	query := `
		SELECT ` + checkInColumns + `
		FROM checkins
		WHERE user_id = $1
			OR (user_id = ANY($2) AND visibility <> 'private')
		ORDER BY created_at DESC
		LIMIT $3;
	`
	if friendIDs == nil {
		friendIDs = []uuid.UUID{}
	}
	rows, err := conn(ctx, r.db).Query(ctx, query, viewerID, friendIDs, limit)
	if err != nil {
		return nil, mapError("failed to list feed", err)
	}
	defer rows.Close()

	items := make([]*models.CheckIn, 0)
	for rows.Next() {
		checkIn, err := scanCheckIn(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		items = append(items, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListFeed", err)
	}
	return items, nil
}

func (r *CheckInRepository) DeleteCheckInsBefore(ctx context.Context, before time.Time) (int64, error) {
	cmdTag, err := conn(ctx, r.db).Exec(ctx, `DELETE FROM checkins WHERE created_at < $1;`, before)
	if err != nil {
		return 0, mapError("failed to delete old check-ins", err)
	}
	return cmdTag.RowsAffected(), nil
}

func scanCheckIn(row rowScanner) (*models.CheckIn, error) {
	c := &models.CheckIn{}
	if err := row.Scan(&c.ID, &c.UserID, &c.VenueID, &c.VibeRating, &c.Visibility, &c.Timestamp); err != nil {
		return nil, err
	}
	return c, nil
}
