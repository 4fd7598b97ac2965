package test

import (
	"context"
	"sync"
	"time"

	"github.com/polkiloo/burgerbot/internal/conversation"
	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// ChatFacadeStub provides controllable behaviour for the chat endpoint.
type ChatFacadeStub struct {
	HandleChatFn func(context.Context, model.InboundEvent) ([]conversation.Reply, error)
}

// HandleChat delegates to the provided function or echoes a default reply.
func (s ChatFacadeStub) HandleChat(ctx context.Context, ev model.InboundEvent) ([]conversation.Reply, error) {
	if s.HandleChatFn != nil {
		return s.HandleChatFn(ctx, ev)
	}
	return []conversation.Reply{{Text: "ok"}}, nil
}

// CatalogFacadeStub serves a predefined menu.
type CatalogFacadeStub struct {
	Items []model.CatalogItem
}

// CatalogItems returns the configured items.
func (s CatalogFacadeStub) CatalogItems() []model.CatalogItem {
	return s.Items
}

// BotFacadeStub aggregates the handler-facing stubs.
type BotFacadeStub struct {
	ChatFacadeStub
	CatalogFacadeStub
}

// InboundFacadeStub records events delivered by a messaging transport.
type InboundFacadeStub struct {
	HandleInboundFn func(context.Context, model.InboundEvent) error

	mu     sync.Mutex
	Events []model.InboundEvent
}

// HandleInbound records the event or delegates to the provided function.
func (s *InboundFacadeStub) HandleInbound(ctx context.Context, ev model.InboundEvent) error {
	if s.HandleInboundFn != nil {
		return s.HandleInboundFn(ctx, ev)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, ev)
	return nil
}

// EventCount reports how many events were recorded.
func (s *InboundFacadeStub) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Events)
}

// LastEvent returns the most recently recorded event.
func (s *InboundFacadeStub) LastEvent() model.InboundEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Events[len(s.Events)-1]
}

// SweepFacadeStub counts sweep invocations.
type SweepFacadeStub struct {
	Evicted int

	mu    sync.Mutex
	Calls []time.Time
}

// SweepSessions records the invocation and returns the configured count.
func (s *SweepFacadeStub) SweepSessions(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, now)
	return s.Evicted
}
