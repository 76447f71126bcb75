package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"expense-bot/internal/repositories"
)

// PendingSweeper deletes pending amounts nobody picked a category for
type PendingSweeper struct {
	pendingRepo repositories.PendingAmountRepositoryInterface
	botLogger   BotLoggerInterface
	metrics     MetricsRecorderInterface
	ttl         time.Duration
	interval    time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

func NewPendingSweeper(
	pendingRepo repositories.PendingAmountRepositoryInterface,
	botLogger BotLoggerInterface,
	metrics MetricsRecorderInterface,
	ttl time.Duration,
	interval time.Duration,
) PendingSweeperInterface {
	return &PendingSweeper{
		pendingRepo: pendingRepo,
		botLogger:   botLogger,
		metrics:     metrics,
		ttl:         ttl,
		interval:    interval,
		logger:      slog.Default(),
		now:         time.Now,
	}
}

// Sweep removes slots last updated more than ttl ago and returns how many
func (s *PendingSweeper) Sweep(ctx context.Context) (int64, error) {
	cutoff := s.now().UTC().Add(-s.ttl)

	removed, err := s.pendingRepo.DeleteOlderThan(cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired pending amounts: %w", err)
	}

	remaining, err := s.pendingRepo.Count()
	if err != nil {
		return removed, fmt.Errorf("failed to count pending amounts: %w", err)
	}

	s.metrics.RecordGauge("pending.expired", float64(removed), nil)
	s.metrics.RecordGauge("pending.amounts", float64(remaining), nil)
	if removed > 0 {
		s.botLogger.LogPendingSweep(ctx, removed, remaining)
	}

	return removed, nil
}

// Start sweeps every interval until ctx is cancelled
func (s *PendingSweeper) Start(ctx context.Context) {
	s.logger.Info("starting pending amount sweeper",
		slog.Duration("ttl", s.ttl),
		slog.Duration("interval", s.interval),
	)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("pending amount sweeper stopped")
			return

		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("pending sweep failed",
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
