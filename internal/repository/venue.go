package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/service"
)

type VenueRepository struct {
	db *pgxpool.Pool
}

func NewVenueRepository(db *pgxpool.Pool) service.VenueRepository {
	return &VenueRepository{db: db}
}

const venueColumns = `
	id,
	name,
	address,
	city,
	description,
	category,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	created_at,
	updated_at`

// CreateVenue создает новое заведение
func (r *VenueRepository) CreateVenue(ctx context.Context, venue *models.Venue) error {
	query := `
		INSERT INTO venues (id, name, address, city, description, category, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, ST_SetSRID(ST_MakePoint($7, $8), 4326), $9, $10);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Address,
		venue.City,
		venue.Description,
		venue.Category,
		venue.Location.Longitude,
		venue.Location.Latitude,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	if err != nil {
		return mapError("failed to create venue", err)
	}
	return nil
}

// GetVenue возвращает заведение по его UUID
func (r *VenueRepository) GetVenue(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1;`
	venue := &models.Venue{}
	if err := scanVenue(conn(ctx, r.db).QueryRow(ctx, query, id), venue); err != nil {
		return nil, mapError(fmt.Sprintf("failed to get venue %s", id), err)
	}
	return venue, nil
}

// GetVenueForUpdate берет строку под FOR UPDATE. Вставка чекина берет FOR KEY SHARE
// по внешнему ключу и ждет коммита.
func (r *VenueRepository) GetVenueForUpdate(ctx context.Context, id uuid.UUID) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1 FOR UPDATE;`
	venue := &models.Venue{}
	if err := scanVenue(conn(ctx, r.db).QueryRow(ctx, query, id), venue); err != nil {
		return nil, mapError(fmt.Sprintf("failed to lock venue %s", id), err)
	}
	return venue, nil
}

// UpdateVenue перезаписывает изменяемые поля заведения
func (r *VenueRepository) UpdateVenue(ctx context.Context, venue *models.Venue) error {
	query := `
		UPDATE venues SET
			name = $2,
			address = $3,
			city = $4,
			description = $5,
			category = $6,
			location = ST_SetSRID(ST_MakePoint($7, $8), 4326),
			updated_at = $9
		WHERE id = $1;
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.Address,
		venue.City,
		venue.Description,
		venue.Category,
		venue.Location.Longitude,
		venue.Location.Latitude,
		venue.UpdatedAt,
	)
	if err != nil {
		return mapError("failed to update venue", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("venue %s: %w", venue.ID, models.ErrNotFound)
	}
	return nil
}

// ListVenues возвращает страницу заведений. С центром фильтрует по ST_DWithin и сортирует по расстоянию.
func (r *VenueRepository) ListVenues(ctx context.Context, filter models.VenueFilter) ([]*models.VenueDistance, error) {
	offset := (filter.Page - 1) * filter.PageSize

	var (
		query string
		args  []any
	)
	if filter.Center != nil {
		query = `
			SELECT ` + venueColumns + `,
				ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance
			FROM venues
			WHERE ($3 = '' OR category = $3)
				AND ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $4)
			ORDER BY distance, id
			LIMIT $5 OFFSET $6;
		`
		args = []any{filter.Center.Longitude, filter.Center.Latitude, string(filter.Category), filter.Radius(), filter.PageSize, offset}
	} else {
		query = `
			SELECT ` + venueColumns + `, 0::float8 AS distance
			FROM venues
			WHERE ($1 = '' OR category = $1)
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3;
		`
		args = []any{string(filter.Category), filter.PageSize, offset}
	}

	rows, err := conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("failed to list venues", err)
	}
	defer rows.Close()

	venues := make([]*models.VenueDistance, 0)
	for rows.Next() {
		item := &models.VenueDistance{Venue: &models.Venue{}}
		if err := scanVenue(rows, item.Venue, &item.DistanceMeters); err != nil {
			return nil, fmt.Errorf("failed to scan venue row: %w", err)
		}
		venues = append(venues, item)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error list iteration in ListVenues", err)
	}
	return venues, nil
}

func scanVenue(row rowScanner, venue *models.Venue, extra ...any) error {
	dest := []any{
		&venue.ID,
		&venue.Name,
		&venue.Address,
		&venue.City,
		&venue.Description,
		&venue.Category,
		&venue.Location.Latitude,
		&venue.Location.Longitude,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}
