package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/burgerbot/internal/app"
	"github.com/polkiloo/burgerbot/internal/catalog"
	"github.com/polkiloo/burgerbot/internal/config"
	"github.com/polkiloo/burgerbot/internal/logger"
	"github.com/polkiloo/burgerbot/internal/server/http/handlers"
	"github.com/polkiloo/burgerbot/internal/server/http/router"
	"github.com/polkiloo/burgerbot/internal/storage/postgres"
	"github.com/polkiloo/burgerbot/internal/transport/telegram"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		catalog.Module,
		postgres.Module,
		telegram.Module,
		fx.Provide(func(f *app.BotFacade) handlers.BotFacade { return f }),
		fx.Provide(func(f *app.BotFacade) telegram.InboundFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
