package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/shenikar/nightlife_presence/internal/service"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

// CreateAccount создает запись аккаунта
func (r *ProfileRepository) CreateAccount(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO accounts (id, username, email, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query, account.ID, account.Username, account.Email, account.CreatedAt)
	if err != nil {
		return mapError("failed to create account", err)
	}
	return nil
}

// CreateProfile создает профиль; координаты пишутся только при включенном шеринге
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.UserProfile) error {
	profile.Normalize()
	lon, lat := pointArgs(profile.Location)
	query := `
		INSERT INTO user_profiles (user_id, bio, location_sharing, location, updated_at)
		VALUES ($1, $2, $3, ` + nullablePoint + `, $6);
	`
	_, err := conn(ctx, r.db).Exec(ctx, query,
		profile.UserID,
		profile.Bio,
		profile.LocationSharing,
		lon,
		lat,
		profile.UpdatedAt,
	)
	if err != nil {
		return mapError("failed to create profile", err)
	}
	return nil
}

// GetProfile возвращает профиль вместе с именем пользователя
func (r *ProfileRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM user_profiles p
		JOIN accounts a ON a.id = p.user_id
		WHERE p.user_id = $1;
	`
	profile, err := scanProfile(conn(ctx, r.db).QueryRow(ctx, query, userID))
	if err != nil {
		return nil, mapError(fmt.Sprintf("failed to get profile %s", userID), err)
	}
	return profile, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *models.UserProfile) error {
	profile.Normalize()
	lon, lat := pointArgs(profile.Location)
	query := `
		UPDATE user_profiles SET
			bio = $2,
			location_sharing = $3,
			location = ` + nullablePoint + `,
			updated_at = $6
		WHERE user_id = $1;
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query,
		profile.UserID,
		profile.Bio,
		profile.LocationSharing,
		lon,
		lat,
		profile.UpdatedAt,
	)
	if err != nil {
		return mapError("failed to update profile", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", profile.UserID, models.ErrNotFound)
	}
	return nil
}

// nullablePoint строит точку из $4 (lon) и $5 (lat) или NULL
const nullablePoint = `CASE WHEN $4::float8 IS NULL THEN NULL ELSE ST_SetSRID(ST_MakePoint($4::float8, $5::float8), 4326)::geography END`

const profileColumns = `
	p.user_id,
	a.username,
	p.bio,
	p.location_sharing,
	ST_Y(p.location::geometry) AS latitude,
	ST_X(p.location::geometry) AS longitude,
	p.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.UserProfile, error) {
	profile := &models.UserProfile{}
	var lat, lon *float64
	if err := row.Scan(
		&profile.UserID,
		&profile.Username,
		&profile.Bio,
		&profile.LocationSharing,
		&lat,
		&lon,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if lat != nil && lon != nil {
		profile.Location = &models.Location{Latitude: *lat, Longitude: *lon}
	}
	profile.Normalize()
	return profile, nil
}

func pointArgs(loc *models.Location) (lon, lat *float64) {
	if loc == nil {
		return nil, nil
	}
	return &loc.Longitude, &loc.Latitude
}
