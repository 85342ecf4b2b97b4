package sweeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/nightlife_presence/internal/config"
	"github.com/shenikar/nightlife_presence/internal/service/mocks"
	"github.com/shenikar/nightlife_presence/internal/sweeper"
	"github.com/shenikar/nightlife_presence/pkg/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type sweeperMocks struct {
	invitations   *mocks.MockInvitationService
	notifications *mocks.MockNotificationService
	checkins      *mocks.MockCheckInService
}

func newTestSweeper(t *testing.T, interval time.Duration) (*sweeper.Sweeper, sweeperMocks) {
	ctrl := gomock.NewController(t)
	m := sweeperMocks{
		invitations:   mocks.NewMockInvitationService(ctrl),
		notifications: mocks.NewMockNotificationService(ctrl),
		checkins:      mocks.NewMockCheckInService(ctrl),
	}

	cfg := &config.Config{
		SweepInterval:         interval,
		NotificationRetention: 720 * time.Hour,
		DeviceTokenRetention:  360 * time.Hour,
		CheckInRetention:      24 * time.Hour,
	}
	return sweeper.New(m.invitations, m.notifications, m.checkins, logger.Discard(), cfg), m
}

func TestRunOnce(t *testing.T) {
	// Подготовка
	s, m := newTestSweeper(t, time.Minute)
	ctx := context.Background()

	// Ожидания
	gomock.InOrder(
		m.invitations.EXPECT().ExpireOverdue(ctx).Return(int64(2), nil),
		m.notifications.EXPECT().PruneNotifications(ctx, 720*time.Hour).Return(int64(5), nil),
		m.notifications.EXPECT().PruneDeviceTokens(ctx, 360*time.Hour).Return(int64(1), nil),
		m.checkins.EXPECT().PruneCheckIns(ctx, 24*time.Hour).Return(int64(7), nil),
	)

	// Действие
	res := s.RunOnce(ctx)

	// Проверки
	assert.Equal(t, sweeper.Result{
		ExpiredInvitations:  2,
		PrunedNotifications: 5,
		PrunedDeviceTokens:  1,
		PrunedCheckIns:      7,
	}, res)
}

func TestRunOnce_FailedStepDoesNotStopOthers(t *testing.T) {
	s, m := newTestSweeper(t, time.Minute)
	ctx := context.Background()

	m.invitations.EXPECT().ExpireOverdue(ctx).Return(int64(0), errors.New("db is down"))
	m.notifications.EXPECT().PruneNotifications(ctx, gomock.Any()).Return(int64(3), nil)
	m.notifications.EXPECT().PruneDeviceTokens(ctx, gomock.Any()).Return(int64(0), errors.New("db is down"))
	m.checkins.EXPECT().PruneCheckIns(ctx, gomock.Any()).Return(int64(4), nil)

	res := s.RunOnce(ctx)

	assert.Equal(t, sweeper.Result{PrunedNotifications: 3, PrunedCheckIns: 4}, res)
}

func TestStart_RunsOnTickerUntilCancelled(t *testing.T) {
	s, m := newTestSweeper(t, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	ran := make(chan struct{}, 1)
	m.invitations.EXPECT().ExpireOverdue(gomock.Any()).Return(int64(0), nil).MinTimes(1)
	m.notifications.EXPECT().PruneNotifications(gomock.Any(), gomock.Any()).Return(int64(0), nil).MinTimes(1)
	m.notifications.EXPECT().PruneDeviceTokens(gomock.Any(), gomock.Any()).Return(int64(0), nil).MinTimes(1)
	m.checkins.EXPECT().PruneCheckIns(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Duration) (int64, error) {
			select {
			case ran <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	s.Start(ctx)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not run")
	}
	cancel()
	// Даём горутине завершить текущий проход до проверки ожиданий
	time.Sleep(30 * time.Millisecond)
}

func TestStart_DisabledWithoutInterval(t *testing.T) {
	s, _ := newTestSweeper(t, 0)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)
	time.Sleep(20 * time.Millisecond)
}
