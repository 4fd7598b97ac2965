package app

import (
	"context"
	"time"

	"github.com/polkiloo/burgerbot/internal/catalog"
	"github.com/polkiloo/burgerbot/internal/config"
	"github.com/polkiloo/burgerbot/internal/conversation"
	"github.com/polkiloo/burgerbot/internal/domain/model"
	"github.com/polkiloo/burgerbot/internal/session"
)

// BotFacade is the single entry point into the ordering dialogue for every
// transport and for the background workers.
type BotFacade struct {
	engine   *conversation.Engine
	store    *session.Store
	catalog  *catalog.Catalog
	outbound conversation.Sender
	cfg      *config.Config
}

// NewBotFacade constructs the facade.
func NewBotFacade(engine *conversation.Engine, store *session.Store, cat *catalog.Catalog, outbound conversation.Sender, cfg *config.Config) *BotFacade {
	return &BotFacade{
		engine:   engine,
		store:    store,
		catalog:  cat,
		outbound: outbound,
		cfg:      cfg,
	}
}

// HandleChat processes one web chat message and returns the replies for the
// widget to render. Nothing is pushed through the messaging transport.
func (f *BotFacade) HandleChat(ctx context.Context, ev model.InboundEvent) ([]conversation.Reply, error) {
	return f.engine.Handle(ctx, ev, conversation.NopSender{})
}

// HandleInbound processes one messaging transport event. Replies go out
// through the outbound sender.
func (f *BotFacade) HandleInbound(ctx context.Context, ev model.InboundEvent) error {
	_, err := f.engine.Handle(ctx, ev, f.outbound)
	return err
}

// SweepSessions evicts idle and expired sessions and returns the count.
func (f *BotFacade) SweepSessions(now time.Time) int {
	return f.store.Sweep(now, f.cfg.IdleThreshold, f.cfg.PostOrderGrace)
}

// CatalogItems returns the menu in display order.
func (f *BotFacade) CatalogItems() []model.CatalogItem {
	return f.catalog.All()
}

// ActiveSessions returns the number of live conversations.
func (f *BotFacade) ActiveSessions() int {
	return f.store.Len()
}
