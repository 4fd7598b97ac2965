package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/burgerbot/internal/catalog"
	"github.com/polkiloo/burgerbot/internal/config"
	"github.com/polkiloo/burgerbot/internal/conversation"
	"github.com/polkiloo/burgerbot/internal/domain/repository"
	"github.com/polkiloo/burgerbot/internal/notify"
	"github.com/polkiloo/burgerbot/internal/session"
	"github.com/polkiloo/burgerbot/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		newSessionStore,
		newScheduler,
		newAssets,
		newEngine,
		NewBotFacade,
		newHTTPServer,
		newSweeper,
	),
	fx.Invoke(registerLifecycle),
)

func newSessionStore(repo repository.SessionRepository, logger *slog.Logger) *session.Store {
	return session.NewStore(repo, logger)
}

func newScheduler(outbound conversation.Sender, store *session.Store, logger *slog.Logger) *notify.Scheduler {
	return notify.NewScheduler(outbound, store, logger)
}

func newAssets(cfg *config.Config) conversation.Assets {
	return conversation.NewFileAssets(cfg.MenuPDFPath)
}

type engineParams struct {
	fx.In

	Store     *session.Store
	Catalog   *catalog.Catalog
	Scheduler *notify.Scheduler
	Assets    conversation.Assets
	Config    *config.Config
	Logger    *slog.Logger
}

func newEngine(p engineParams) *conversation.Engine {
	return conversation.NewEngine(p.Store, p.Catalog, p.Scheduler, p.Assets, conversation.Config{
		StoreName:           p.Config.StoreName,
		HandoffWindow:       p.Config.HandoffWindow,
		PrepNotifyDelay:     p.Config.PrepNotifyDelay,
		DispatchNotifyDelay: p.Config.DispatchNotifyDelay,
	}, p.Logger)
}

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type workerParams struct {
	fx.In

	Facade *BotFacade
	Config *config.Config
	Logger *slog.Logger
}

func newSweeper(p workerParams) *worker.Sweeper {
	return worker.NewSweeper(p.Facade, p.Config.SweepInterval, p.Logger)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Sweeper    *worker.Sweeper
	Scheduler  *notify.Scheduler
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting burgerbot", slog.String("addr", p.Server.Addr))
			p.Sweeper.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Sweeper.Stop()
			p.Scheduler.Close()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("burgerbot stopped")
			return nil
		},
	})
}
