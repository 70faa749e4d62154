// Package housekeeping removes trashed todos after a retention period.
package housekeeping

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tiago154/fast-zero/internal/metrics"
	"github.com/tiago154/fast-zero/internal/repository"
)

type Purger struct {
	todos     repository.TodoRepository
	logger    *slog.Logger
	schedule  cron.Schedule
	retention time.Duration
	now       func() time.Time
}

// NewPurger parses spec as a standard 5-field cron expression and returns a
// purger that deletes todos left in the trash state longer than retention.
func NewPurger(todos repository.TodoRepository, logger *slog.Logger, spec string, retention time.Duration) (*Purger, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, err
	}
	return &Purger{
		todos:     todos,
		logger:    logger.With("component", "purger"),
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
	}, nil
}

// Start runs the purge loop until ctx is cancelled.
func (p *Purger) Start(ctx context.Context) {
	p.logger.Info("purger started", "retention", p.retention)

	for {
		next := p.schedule.Next(p.now())
		timer := time.NewTimer(next.Sub(p.now()))

		select {
		case <-ctx.Done():
			timer.Stop()
			p.logger.Info("purger shut down")
			return
		case <-timer.C:
			p.purge(ctx)
		}
	}
}

func (p *Purger) purge(ctx context.Context) {
	cutoff := p.now().Add(-p.retention)

	purged, err := p.todos.PurgeTrashed(ctx, cutoff)
	if err != nil {
		p.logger.Error("purge trashed todos", "error", err)
		return
	}
	if purged > 0 {
		metrics.TodosPurgedTotal.Add(float64(purged))
		p.logger.Info("purged trashed todos", "count", purged, "cutoff", cutoff)
	}
}
