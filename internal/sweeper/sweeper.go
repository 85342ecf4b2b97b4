// Package sweeper периодически переводит просроченные приглашения в expired
// и удаляет устаревшие уведомления, токены устройств и чекины.
package sweeper

import (
	"context"
	"time"

	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/service"
	"github.com/sirupsen/logrus"
)

// Result - итог одного прохода
type Result struct {
	ExpiredInvitations  int64
	PrunedNotifications int64
	PrunedDeviceTokens  int64
	PrunedCheckIns      int64
}

type Sweeper struct {
	invitations   service.InvitationService
	notifications service.NotificationService
	checkins      service.CheckInService
	logger        *logrus.Logger
	cfg           *config.Config
}

func New(invitations service.InvitationService, notifications service.NotificationService, checkins service.CheckInService, logger *logrus.Logger, cfg *config.Config) *Sweeper {
	return &Sweeper{
		invitations:   invitations,
		notifications: notifications,
		checkins:      checkins,
		logger:        logger,
		cfg:           cfg,
	}
}

// Start запускает горутину, выполняющую RunOnce каждые SweepInterval
func (s *Sweeper) Start(ctx context.Context) {
	if s.cfg.SweepInterval <= 0 {
		s.logger.Warn("Sweep interval is not positive. Sweeper disabled.")
		return
	}
	s.logger.WithField("interval", s.cfg.SweepInterval).Info("Starting sweeper...")
	go func() {
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping sweeper.")
				return
			case <-ticker.C:
				s.RunOnce(ctx)
			}
		}
	}()
}

// RunOnce выполняет все шаги очистки. Сбой одного шага не отменяет остальные.
func (s *Sweeper) RunOnce(ctx context.Context) Result {
	log := s.logger.WithField("component", "sweeper")
	var res Result

	steps := []struct {
		name string
		run  func(context.Context) (int64, error)
		dst  *int64
	}{
		{"expire invitations", s.invitations.ExpireOverdue, &res.ExpiredInvitations},
		{"prune notifications", func(ctx context.Context) (int64, error) {
			return s.notifications.PruneNotifications(ctx, s.cfg.NotificationRetention)
		}, &res.PrunedNotifications},
		{"prune device tokens", func(ctx context.Context) (int64, error) {
			return s.notifications.PruneDeviceTokens(ctx, s.cfg.DeviceTokenRetention)
		}, &res.PrunedDeviceTokens},
		{"prune check-ins", func(ctx context.Context) (int64, error) {
			return s.checkins.PruneCheckIns(ctx, s.cfg.CheckInRetention)
		}, &res.PrunedCheckIns},
	}

	for _, step := range steps {
		n, err := step.run(ctx)
		if err != nil {
			log.WithError(err).WithField("step", step.name).Error("Sweep step failed")
			continue
		}
		*step.dst = n
	}

	log.WithFields(logrus.Fields{
		"expired_invitations":  res.ExpiredInvitations,
		"pruned_notifications": res.PrunedNotifications,
		"pruned_device_tokens": res.PrunedDeviceTokens,
		"pruned_checkins":      res.PrunedCheckIns,
	}).Debug("Sweep completed")
	return res
}
