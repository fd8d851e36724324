package workers

import (
	"context"
	"sync"
	"time"

	"resident-records-service/pkg/logger"
)

// ExpiredTokenPurger deletes QR tokens that expired more than olderThan ago.
type ExpiredTokenPurger interface {
	PurgeExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

// TokenSweeper periodically removes long expired QR tokens. Tokens that are
// expired but inside the retention window stay so verification still reports
// them as expired rather than unknown.
type TokenSweeper struct {
	Purger    ExpiredTokenPurger
	Interval  time.Duration
	Retention time.Duration

	wg sync.WaitGroup
}

func NewTokenSweeper(purger ExpiredTokenPurger, interval, retention time.Duration) *TokenSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	return &TokenSweeper{Purger: purger, Interval: interval, Retention: retention}
}

// Start runs Sweep now and then on every tick until ctx is cancelled.
func (s *TokenSweeper) Start(ctx context.Context) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		s.Sweep(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Wait blocks until the goroutine started by Start returns.
func (s *TokenSweeper) Wait() {
	s.wg.Wait()
}

// Sweep runs one purge and returns how many tokens were removed.
func (s *TokenSweeper) Sweep(ctx context.Context) int64 {
	deleted, err := s.Purger.PurgeExpired(ctx, s.Retention)
	if err != nil {
		if ctx.Err() == nil {
			logger.Error("token sweeper: %v", err)
		}
		return 0
	}
	if deleted > 0 {
		logger.Info("token sweeper: removed %d expired QR tokens", deleted)
	}
	return deleted
}
