package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/polkiloo/burgerbot/internal/domain/model"
)

// InboundFacade handles inbound customer events.
type InboundFacade interface {
	HandleInbound(ctx context.Context, ev model.InboundEvent) error
}

// Bot long-polls Telegram updates and forwards text messages to the
// application.
type Bot struct {
	api    API
	facade InboundFacade
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewBot constructs the polling transport.
func NewBot(api API, facade InboundFacade, logger *slog.Logger) *Bot {
	return &Bot{api: api, facade: facade, logger: logger}
}

// Start launches the update loop.
func (b *Bot) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	b.cancel = cancel

	b.wg.Add(1)
	go b.run(runCtx)
}

// Stop halts polling and waits for the update loop to finish.
func (b *Bot) Stop() {
	b.mu.Lock()
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
	b.mu.Unlock()

	b.api.StopReceivingUpdates()
	b.wg.Wait()
}

func (b *Bot) run(ctx context.Context) {
	defer b.wg.Done()

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			ev, ok := toInboundEvent(update)
			if !ok {
				continue
			}
			if err := b.facade.HandleInbound(ctx, ev); err != nil {
				b.logger.Error("inbound event failed",
					slog.String("customer_id", ev.CustomerID),
					slog.String("error", err.Error()))
			}
		}
	}
}

// toInboundEvent converts a Telegram update to a customer event. Updates
// without a text message (edits, stickers, joins) are skipped.
func toInboundEvent(update tgbotapi.Update) (model.InboundEvent, bool) {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		return model.InboundEvent{}, false
	}

	ev := model.InboundEvent{
		CustomerID: strconv.FormatInt(msg.Chat.ID, 10),
		Text:       msg.Text,
	}
	if msg.From != nil {
		ev.DisplayName = msg.From.FirstName
	}
	return ev, true
}
