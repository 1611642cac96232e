package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/routemaker/internal/routemaker/metrics"
	"github.com/aussiebroadwan/routemaker/internal/routemaker/store"
)

// HousekeepingService periodically flips overdue pending invitations to
// expired so listings and counts stay accurate without a read.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start launches the background worker. Call Stop() to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker.
// Blocks until the worker has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup
	s.Sweep(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Sweep(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Sweep expires every overdue pending invitation and returns how many
// changed.
func (s *HousekeepingService) Sweep(ctx context.Context) int64 {
	n, err := s.Store.Invitations().ExpireOverdueInvitations(ctx, nowFrom(s.Now))
	if err != nil {
		s.Logger.Error("failed to expire overdue invitations", "error", err)
		return 0
	}

	metrics.RecordInvitations(metrics.InvitationExpired, n)
	if n > 0 {
		s.Logger.Info("expired overdue invitations", "count", n)
	} else {
		s.Logger.Debug("no overdue invitations")
	}
	return n
}
