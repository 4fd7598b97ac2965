package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Sender delivers a plain-text message to a customer.
type Sender interface {
	SendText(ctx context.Context, customerID, text string) error
}

// SessionChecker reports whether a customer still has a live session.
type SessionChecker interface {
	Has(customerID string) bool
}

// Scheduler fires one-shot deferred messages such as the simulated delivery
// status updates. Tasks hold only the customer id, never the session itself;
// existence is re-checked at fire time so a deleted session degrades to a
// skipped send.
type Scheduler struct {
	sender   Sender
	sessions SessionChecker
	logger   *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewScheduler constructs the deferred notifier.
func NewScheduler(sender Sender, sessions SessionChecker, logger *slog.Logger) *Scheduler {
	return &Scheduler{sender: sender, sessions: sessions, logger: logger}
}

// After schedules text to be sent to the customer once d elapses. The task is
// not cancelable; it no-ops if the session is gone or the scheduler closed by
// then.
func (s *Scheduler) After(d time.Duration, customerID, text string) {
	time.AfterFunc(d, func() {
		s.fire(customerID, text)
	})
}

func (s *Scheduler) fire(customerID, text string) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}

	if !s.sessions.Has(customerID) {
		s.logger.Debug("deferred notification skipped, session gone",
			slog.String("customer_id", customerID))
		return
	}
	if err := s.sender.SendText(context.Background(), customerID, text); err != nil {
		s.logger.Error("deferred notification send failed",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()))
	}
}

// Close drops any notification that fires afterwards. Used on shutdown so
// late timers do not hit a closed transport.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
