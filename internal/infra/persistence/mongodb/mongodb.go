// Package mongodb contains the concrete implementation of the persistence layer using MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"gymdesk/config"
	"gymdesk/internal/domain/lifecycle"
	"gymdesk/internal/errors"

	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database handle.
// The connection is verified and indexes are migrated when the application starts.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri must be configured")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetPoolMonitor(newPoolMonitor(params.Logger))
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if cfg.Migrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("MongoDB indexes migrated", slog.String("database", cfg.Database))
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return db, nil
}

// Migrate creates the indexes of every collection. Creating an existing index is a no-op.
func Migrate(ctx context.Context, db *mongo.Database) error {
	for col, models := range migrationIndexes() {
		if len(models) == 0 {
			continue
		}
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to migrate %s indexes", col)
		}
	}

	return nil
}

func newPoolMonitor(logger *slog.Logger) *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			if logger == nil {
				return
			}

			switch evt.Type {
			case event.ConnectionCheckOutFailed:
				logger.Warn("MongoDB connection checkout failed",
					slog.String("address", evt.Address),
					slog.String("reason", evt.Reason),
				)
			case event.ConnectionPoolCleared:
				logger.Warn("MongoDB connection pool cleared", slog.String("address", evt.Address))
			}
		},
	}
}
