package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Recalculator sweeps all active cruise/category pairs, reprices them
// and records any movement in the price history
type Recalculator interface {
	RecalculateAll(ctx context.Context) (RecalculationResult, error)
}

// RecalculationResult summarizes one recalculation sweep
type RecalculationResult struct {
	PairsChecked int
	PriceChanges int
	Errors       int
}

// Config holds the recalculation scheduler settings
type Config struct {
	Interval   time.Duration
	JobTimeout time.Duration
}

// PriceRecalculationScheduler runs the recalculation sweep on a fixed
// interval. One sweep runs at a time; if a sweep overruns the interval
// the next tick is skipped rather than stacked.
type PriceRecalculationScheduler struct {
	config       Config
	recalculator Recalculator
	logger       *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
}

// NewPriceRecalculationScheduler creates a scheduler
func NewPriceRecalculationScheduler(config Config, recalculator Recalculator, logger *zap.Logger) *PriceRecalculationScheduler {
	return &PriceRecalculationScheduler{
		config:       config,
		recalculator: recalculator,
		logger:       logger,
	}
}

// Start starts the scheduler loop
func (s *PriceRecalculationScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = true
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("Price recalculation scheduler started",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("job_timeout", s.config.JobTimeout),
	)
	return nil
}

// Stop gracefully stops the scheduler
func (s *PriceRecalculationScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.isRunning {
		s.mu.Unlock()
		return nil
	}
	s.isRunning = false
	s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("Price recalculation scheduler stopped")
		return nil
	case <-ctx.Done():
		s.logger.Warn("Price recalculation scheduler stop timed out")
		return ctx.Err()
	}
}

// TriggerNow runs one sweep immediately, outside the ticker cadence.
// Used by the admin endpoint for manual recalculation.
func (s *PriceRecalculationScheduler) TriggerNow(ctx context.Context) (RecalculationResult, error) {
	return s.runSweep(ctx)
}

func (s *PriceRecalculationScheduler) loop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.runSweep(ctx); err != nil {
				s.logger.Error("Price recalculation sweep failed", zap.Error(err))
			}
		}
	}
}

func (s *PriceRecalculationScheduler) runSweep(ctx context.Context) (RecalculationResult, error) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.config.JobTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.recalculator.RecalculateAll(sweepCtx)
	if err != nil {
		return result, err
	}

	s.logger.Info("Price recalculation sweep completed",
		zap.Int("pairs_checked", result.PairsChecked),
		zap.Int("price_changes", result.PriceChanges),
		zap.Int("errors", result.Errors),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}
