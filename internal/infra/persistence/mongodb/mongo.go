// Package mongodb contains the concrete implementation of the persistence layer using MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"fittrack/config"
	"fittrack/internal/domain/lifecycle"
	"fittrack/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client. The connection is verified when the fx app starts.
func New(params Params) (*mongo.Client, error) {
	cfg := params.Config.Mongo

	monitor := newCommandLogger(params.Logger, params.Config)
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(params.Config.Env.ServiceName).
		SetTimeout(cfg.Timeout).
		SetMonitor(monitor.commandMonitor()).
		SetPoolMonitor(monitor.poolMonitor())

	client, err := mongo.Connect(context.Background(), clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}
			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return client, nil
}

// CollectionParams defines the parameters for the users collection
type CollectionParams struct {
	fx.In
	fx.Lifecycle

	Client *mongo.Client
	Config *config.Config
	Logger *slog.Logger
}

// NewUserCollection returns the users collection handle shared by the repositories.
// Uniqueness indexes are created on start, after the client has been pinged.
func NewUserCollection(params CollectionParams) *mongo.Collection {
	coll := params.Client.
		Database(params.Config.Mongo.Database).
		Collection(params.Config.Mongo.Collection)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			names, err := EnsureUserIndexes(ctx, coll)
			if err != nil {
				return err
			}
			params.Logger.Debug("User indexes ensured", slog.Any("indexes", names))

			return nil
		},
	})

	return coll
}
