package telegram

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/burgerbot/internal/config"
	"github.com/polkiloo/burgerbot/internal/conversation"
)

// Module wires the optional Telegram transport. Without a token the bot is
// absent and outbound messages fall back to the logging sender.
var Module = fx.Options(
	fx.Provide(
		newAPI,
		newOutboundSender,
		newBot,
	),
	fx.Invoke(registerLifecycle),
)

func newAPI(cfg *config.Config) (API, error) {
	if cfg.TelegramToken == "" {
		return nil, nil
	}
	return NewAPI(cfg.TelegramToken)
}

func newOutboundSender(api API, logger *slog.Logger) conversation.Sender {
	if api == nil {
		return conversation.NewLogSender(logger)
	}
	return NewSender(api)
}

type botParams struct {
	fx.In

	API    API
	Facade InboundFacade
	Logger *slog.Logger
}

func newBot(p botParams) *Bot {
	if p.API == nil {
		return nil
	}
	return NewBot(p.API, p.Facade, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, bot *Bot, logger *slog.Logger) {
	if bot == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting telegram polling")
			bot.Start(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			bot.Stop()
			return nil
		},
	})
}
