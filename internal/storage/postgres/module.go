package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/burgerbot/internal/config"
	"github.com/polkiloo/burgerbot/internal/domain/repository"
)

// Module wires the optional PostgreSQL snapshot store. Without a DSN the
// repository is absent and sessions live purely in memory.
var Module = fx.Options(
	fx.Provide(
		newStorage,
		func(s *Storage) repository.SessionRepository {
			if s == nil {
				return nil
			}
			return s
		},
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	if p.Config.DatabaseURI == "" {
		return nil, nil
	}
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	if storage == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
