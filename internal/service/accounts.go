package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/nightlife_presence/internal/geo"
	"github.com/shenikar/nightlife_presence/internal/models"
	"github.com/sirupsen/logrus"
)

const maxBioLength = 500

// AccountService создаёт аккаунты вместе с профилем и управляет профилем владельца
type AccountService interface {
	CreateAccount(ctx context.Context, username, email string) (*models.Account, *models.UserProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.UserProfile, error)
	UpdateLocation(ctx context.Context, userID uuid.UUID, loc models.Location) (*models.UserProfile, error)
}

type accountService struct {
	tx     Transactor
	repo   ProfileRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewAccountService(tx Transactor, repo ProfileRepository, logger *logrus.Logger) AccountService {
	return &accountService{
		tx:     tx,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// CreateAccount создаёт аккаунт и его профиль в одной транзакции
func (s *accountService) CreateAccount(ctx context.Context, username, email string) (*models.Account, *models.UserProfile, error) {
	username = strings.TrimSpace(username)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "accounts",
		"method":   "CreateAccount",
		"username": username,
	})
	if username == "" {
		return nil, nil, fmt.Errorf("%w: username is required", models.ErrInvalidInput)
	}

	now := s.now().UTC()
	account := &models.Account{
		ID:        uuid.New(),
		Username:  username,
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
	}
	profile := &models.UserProfile{
		UserID:    account.ID,
		Username:  username,
		UpdatedAt: now,
	}

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.CreateAccount(ctx, account); err != nil {
			return err
		}
		return s.repo.CreateProfile(ctx, profile)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to create account")
		return nil, nil, fmt.Errorf("service: could not create account: %w", err)
	}

	log.WithField("user_id", account.ID).Info("Account created successfully")
	return account, profile, nil
}

func (s *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}
	profile.Normalize()
	return profile, nil
}

// UpdateProfile применяет изменения владельца. Координаты при выключенном шеринге отклоняются,
// выключение шеринга стирает координаты в той же записи.
func (s *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, update models.ProfileUpdate) (*models.UserProfile, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "accounts",
		"method":  "UpdateProfile",
		"user_id": userID,
	})

	if update.Bio != nil && len([]rune(*update.Bio)) > maxBioLength {
		return nil, fmt.Errorf("%w: bio must be at most %d characters", models.ErrInvalidInput, maxBioLength)
	}
	if update.Location != nil {
		if err := geo.Validate(*update.Location); err != nil {
			return nil, err
		}
	}

	var profile *models.UserProfile
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repo.GetProfile(ctx, userID)
		if err != nil {
			return err
		}

		if update.Bio != nil {
			profile.Bio = *update.Bio
		}
		if update.LocationSharing != nil {
			profile.SetLocationSharing(*update.LocationSharing)
		}
		if update.Location != nil {
			if !profile.LocationSharing {
				return fmt.Errorf("%w: location sharing is disabled", models.ErrForbidden)
			}
			loc := *update.Location
			profile.Location = &loc
		}

		profile.Normalize()
		profile.UpdatedAt = s.now().UTC()
		return s.repo.UpdateProfile(ctx, profile)
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update profile")
		return nil, fmt.Errorf("service: could not update profile: %w", err)
	}

	log.Info("Profile updated successfully")
	return profile, nil
}

func (s *accountService) UpdateLocation(ctx context.Context, userID uuid.UUID, loc models.Location) (*models.UserProfile, error) {
	return s.UpdateProfile(ctx, userID, models.ProfileUpdate{Location: &loc})
}
