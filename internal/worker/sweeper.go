package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SweepFacade exposes the subset of application functionality required by the sweeper.
type SweepFacade interface {
	SweepSessions(now time.Time) int
}

// Sweeper periodically evicts idle and completed sessions. It only ever
// deletes sessions; expiry transitions (handoff end, post-order reset) are
// handled inline by the conversation engine on the next inbound event.
type Sweeper struct {
	facade   SweepFacade
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSweeper constructs the background sweeper.
func NewSweeper(facade SweepFacade, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		facade:   facade,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the periodic sweep.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := s.facade.SweepSessions(time.Now()); evicted > 0 {
				s.logger.Info("idle sessions evicted", slog.Int("count", evicted))
			}
		}
	}
}
