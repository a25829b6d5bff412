// Package lock provides the job locks that keep scheduled work on a single replica.
package lock

import (
	"context"
	"log/slog"

	"gymdesk/config"
	"gymdesk/internal/domain/lifecycle"
	"gymdesk/internal/domain/service"
	"gymdesk/internal/errors"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the job locker, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a redis backed locker, or an in-process one when no redis
// address is configured.
func New(params Params) service.JobLocker {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, using in-process job locks")

		return NewMemoryLocker()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Using redis job locks", slog.String("addr", cfg.Addr))

	return NewRedisLocker(redsync.New(goredis.NewPool(client)))
}

// Module provides the job lock FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
