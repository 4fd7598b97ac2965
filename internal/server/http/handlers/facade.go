package handlers

import (
	"context"

	"github.com/polkiloo/burgerbot/internal/conversation"
	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// ChatFacade exposes the ordering dialogue to the web chat endpoint.
type ChatFacade interface {
	HandleChat(ctx context.Context, ev model.InboundEvent) ([]conversation.Reply, error)
}

// CatalogFacade exposes the menu.
type CatalogFacade interface {
	CatalogItems() []model.CatalogItem
}

// BotFacade aggregates the full set of operations used across handlers.
type BotFacade interface {
	ChatFacade
	CatalogFacade
}
