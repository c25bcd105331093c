// Package scheduler drives the periodic lifecycle sweep. It owns the timer
// only; what a sweep does lives in the event service.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"eventhub/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OverdueSweeper
type OverdueSweeper interface {
	SweepOverdueEvents(now time.Time) (int64, error)
}

type Scheduler struct {
	log      *slog.Logger
	sweeper  OverdueSweeper
	interval time.Duration
}

func New(log *slog.Logger, sweeper OverdueSweeper, interval time.Duration) *Scheduler {
	return &Scheduler{
		log:      log,
		sweeper:  sweeper,
		interval: interval,
	}
}

// Start blocks, sweeping on every tick until the context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler started", slog.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.sweeper.SweepOverdueEvents(time.Now()); err != nil {
				s.log.Error("failed to sweep overdue events", sl.Err(err))
			}
		}
	}
}
