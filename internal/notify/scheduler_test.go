package notify

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"
)

type senderStub struct {
	mu    sync.Mutex
	texts []string
}

func (s *senderStub) SendText(_ context.Context, _ string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts = append(s.texts, text)
	return nil
}

func (s *senderStub) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.texts)
}

type checkerStub struct {
	mu    sync.Mutex
	alive map[string]bool
}

func (c *checkerStub) Has(customerID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alive[customerID]
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.After(500 * time.Millisecond)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for condition")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSchedulerFiresForLiveSession(t *testing.T) {
	sender := &senderStub{}
	checker := &checkerStub{alive: map[string]bool{"42": true}}
	sched := NewScheduler(sender, checker, testLogger())

	sched.After(10*time.Millisecond, "42", "saiu para entrega")

	waitFor(t, func() bool { return sender.count() == 1 })
	if sender.texts[0] != "saiu para entrega" {
		t.Fatalf("unexpected text: %q", sender.texts[0])
	}
}

func TestSchedulerSkipsDeletedSession(t *testing.T) {
	sender := &senderStub{}
	checker := &checkerStub{alive: map[string]bool{}}
	sched := NewScheduler(sender, checker, testLogger())

	sched.After(10*time.Millisecond, "42", "saiu para entrega")

	time.Sleep(50 * time.Millisecond)
	if sender.count() != 0 {
		t.Fatalf("expected no send for deleted session, got %d", sender.count())
	}
}

func TestSchedulerDropsAfterClose(t *testing.T) {
	sender := &senderStub{}
	checker := &checkerStub{alive: map[string]bool{"42": true}}
	sched := NewScheduler(sender, checker, testLogger())

	sched.After(20*time.Millisecond, "42", "em preparo")
	sched.Close()

	time.Sleep(60 * time.Millisecond)
	if sender.count() != 0 {
		t.Fatalf("expected closed scheduler to drop sends, got %d", sender.count())
	}
}
