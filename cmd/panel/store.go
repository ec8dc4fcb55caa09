package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-admin/internal/domain/repository"
	"github.com/jhoicas/panel-admin/internal/infrastructure/memory"
	"github.com/jhoicas/panel-admin/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/panel-admin/internal/infrastructure/redis"
	"github.com/jhoicas/panel-admin/pkg/config"
)

// openSessionStore abre el registro de sesiones revocadas según SESSION_STORE.
func openSessionStore(ctx context.Context, cfg *config.Config) (repository.RevokedSessionRepository, error) {
	switch cfg.Session.Store {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB, postgres.DefaultPoolOptions)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		repo := postgres.NewSessionRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return repo, nil
	case "redis":
		store, err := infraredis.NewSessionStore(ctx, cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		return store, nil
	default:
		return memory.NewSessionStore(memory.DefaultSweepInterval), nil
	}
}

// pinger almacenes que pueden verificar su conexión.
type pinger interface {
	Ping(ctx context.Context) error
}
