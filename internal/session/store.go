package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/burgerbot/internal/domain/errors"
	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/domain/repository"
)

// Directive tells the store what to do with the session after an event was
// handled.
type Directive struct {
	// Delete removes the session, as on explicit cancellation.
	Delete bool
}

type entry struct {
	mu   sync.Mutex
	sess *model.Session
}

// Store keeps per-customer sessions in memory and serializes all mutation per
// customer. Events for distinct customers run in parallel; two events for the
// same customer never interleave. An optional repository persists snapshots
// after every handled event.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	repo    repository.SessionRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewStore creates the store. repo may be nil for the purely in-memory setup.
func NewStore(repo repository.SessionRepository, logger *slog.Logger) *Store {
	return &Store{
		entries: make(map[string]*entry),
		repo:    repo,
		logger:  logger,
		now:     time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (s *Store) WithNow(now func() time.Time) *Store {
	s.now = now
	return s
}

// Do runs fn with exclusive access to the customer's session, creating it on
// first contact. firstContact is true only when the session did not exist in
// memory or in the snapshot repository. The session's last-activity timestamp
// is updated and the snapshot saved (or deleted, per the directive) before Do
// returns.
func (s *Store) Do(ctx context.Context, customerID, displayName string, fn func(sess *model.Session, firstContact bool) (Directive, error)) error {
	var (
		e            *entry
		firstContact bool
	)
	for {
		e, firstContact = s.acquire(ctx, customerID)
		e.mu.Lock()
		if s.live(customerID, e) {
			break
		}
		// The entry was evicted between acquire and lock; take a fresh one.
		e.mu.Unlock()
	}
	defer e.mu.Unlock()

	sess := e.sess
	if displayName != "" {
		sess.CustomerName = displayName
	}
	sess.LastActivityAt = s.now()

	directive, err := fn(sess, firstContact)
	if err != nil {
		return err
	}

	if directive.Delete {
		s.remove(ctx, customerID)
		return nil
	}

	s.persist(ctx, sess)
	return nil
}

func (s *Store) acquire(ctx context.Context, customerID string) (*entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[customerID]; ok {
		return e, false
	}

	if s.repo != nil {
		sess, err := s.repo.Load(ctx, customerID)
		if err == nil {
			e := &entry{sess: sess}
			s.entries[customerID] = e
			return e, false
		}
		if !errors.Is(err, domainErrors.ErrNotFound) {
			s.logger.Error("session snapshot load failed",
				slog.String("customer_id", customerID),
				slog.String("error", err.Error()))
		}
	}

	e := &entry{sess: model.NewSession(customerID, s.now())}
	s.entries[customerID] = e
	return e, true
}

// live reports whether e is still the entry registered for the customer.
// Holding both e.mu and s.mu here pins the entry: Sweep cannot evict it
// afterwards because its TryLock fails while the caller keeps e.mu.
func (s *Store) live(customerID string, e *entry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.entries[customerID]
	return ok && cur == e
}

// Has reports whether a session currently exists in memory. Used by the
// deferred notifier to re-validate before firing.
func (s *Store) Has(customerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[customerID]
	return ok
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Sweep removes idle sessions and completed sessions past the post-order
// grace window. Sessions whose event is in flight are skipped and picked up
// on the next sweep. Returns the number of evicted sessions.
func (s *Store) Sweep(now time.Time, idleThreshold, postOrderGrace time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		sess := e.sess
		expired := now.Sub(sess.LastActivityAt) > idleThreshold ||
			(sess.Completed() && now.Sub(sess.CompletedAt) > postOrderGrace)
		e.mu.Unlock()

		if !expired {
			continue
		}
		delete(s.entries, id)
		if s.repo != nil {
			if err := s.repo.Delete(context.Background(), id); err != nil {
				s.logger.Error("session snapshot delete failed",
					slog.String("customer_id", id),
					slog.String("error", err.Error()))
			}
		}
		evicted++
	}
	return evicted
}

func (s *Store) remove(ctx context.Context, customerID string) {
	s.mu.Lock()
	delete(s.entries, customerID)
	s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.Delete(ctx, customerID); err != nil {
			s.logger.Error("session snapshot delete failed",
				slog.String("customer_id", customerID),
				slog.String("error", err.Error()))
		}
	}
}

func (s *Store) persist(ctx context.Context, sess *model.Session) {
	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, sess.Clone()); err != nil {
		s.logger.Error("session snapshot save failed",
			slog.String("customer_id", sess.CustomerID),
			slog.String("error", err.Error()))
	}
}
