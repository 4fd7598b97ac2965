package app

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/polkiloo/burgerbot/internal/catalog"
	"github.com/polkiloo/burgerbot/internal/config"
	"github.com/polkiloo/burgerbot/internal/conversation"
	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/notify"
	"github.com/polkiloo/burgerbot/internal/session"
)

type senderRecorder struct {
	mu    sync.Mutex
	texts []string
	docs  []model.Document
}

func (r *senderRecorder) SendText(_ context.Context, _ string, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
	return nil
}

func (r *senderRecorder) SendDocument(_ context.Context, _ string, doc model.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, doc)
	return nil
}

type assetsStub struct{}

func (assetsStub) MenuDocument() (model.Document, error) {
	return model.Document{Path: "assets/cardapio.pdf", Caption: "cardápio"}, nil
}

func newTestFacade(t *testing.T) (*BotFacade, *senderRecorder) {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	cfg := &config.Config{
		StoreName:           "Hamburgueria Premium",
		HandoffWindow:       10 * time.Minute,
		IdleThreshold:       30 * time.Minute,
		PostOrderGrace:      5 * time.Minute,
		PrepNotifyDelay:     time.Hour,
		DispatchNotifyDelay: time.Hour,
	}

	outbound := &senderRecorder{}
	store := session.NewStore(nil, logger)
	scheduler := notify.NewScheduler(outbound, store, logger)
	cat := catalog.New()
	engine := conversation.NewEngine(store, cat, scheduler, assetsStub{}, conversation.Config{
		StoreName:           cfg.StoreName,
		HandoffWindow:       cfg.HandoffWindow,
		PrepNotifyDelay:     cfg.PrepNotifyDelay,
		DispatchNotifyDelay: cfg.DispatchNotifyDelay,
	}, logger)

	return NewBotFacade(engine, store, cat, outbound, cfg), outbound
}

func TestHandleChatReturnsRepliesWithoutPush(t *testing.T) {
	facade, outbound := newTestFacade(t)

	replies, err := facade.HandleChat(context.Background(), model.InboundEvent{CustomerID: "web-1", Text: "oi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(replies) == 0 {
		t.Fatal("expected welcome replies")
	}
	if !strings.Contains(replies[0].Text, "Hamburgueria Premium") {
		t.Fatalf("expected store name in welcome, got %q", replies[0].Text)
	}

	outbound.mu.Lock()
	defer outbound.mu.Unlock()
	if len(outbound.texts) != 0 {
		t.Fatalf("expected nothing pushed through outbound, got %v", outbound.texts)
	}
}

func TestHandleInboundPushesThroughOutbound(t *testing.T) {
	facade, outbound := newTestFacade(t)

	if err := facade.HandleInbound(context.Background(), model.InboundEvent{CustomerID: "42", Text: "oi", DisplayName: "Maria"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outbound.mu.Lock()
	defer outbound.mu.Unlock()
	if len(outbound.texts) == 0 {
		t.Fatal("expected welcome pushed through outbound")
	}
	if !strings.Contains(outbound.texts[0], "Maria") {
		t.Fatalf("expected display name in greeting, got %q", outbound.texts[0])
	}
}

func TestSweepSessionsEvictsIdle(t *testing.T) {
	facade, _ := newTestFacade(t)

	if _, err := facade.HandleChat(context.Background(), model.InboundEvent{CustomerID: "web-1", Text: "oi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if facade.ActiveSessions() != 1 {
		t.Fatalf("expected one active session, got %d", facade.ActiveSessions())
	}

	if evicted := facade.SweepSessions(time.Now()); evicted != 0 {
		t.Fatalf("expected fresh session to survive, got %d evicted", evicted)
	}
	if evicted := facade.SweepSessions(time.Now().Add(time.Hour)); evicted != 1 {
		t.Fatalf("expected one eviction, got %d", evicted)
	}
	if facade.ActiveSessions() != 0 {
		t.Fatalf("expected no active sessions, got %d", facade.ActiveSessions())
	}
}

func TestCatalogItemsExposesFullMenu(t *testing.T) {
	facade, _ := newTestFacade(t)
	items := facade.CatalogItems()
	if len(items) != 11 {
		t.Fatalf("expected 11 menu items, got %d", len(items))
	}
}
