// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/caprecon/backend/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the process-wide Mongo client.
//
// Connection failures do not abort startup: the marketing site's liveness
// and diagnostic endpoints must stay up even when the store is missing, so
// on any failure this logs a warning and returns empty deps. Handlers built
// on nil deps fail each data request explicitly instead.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	if appCfg.MongoURI == "" {
		logger.Warn("mongo_uri not configured; starting in degraded mode")
		return DBDeps{}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, appCfg.MongoConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Warn("mongo connect failed; starting in degraded mode", zap.Error(err))
		return DBDeps{}, nil
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Warn("mongo ping failed; starting in degraded mode", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return DBDeps{}, nil
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the collections this app uses and attaches
// server-side validators to the intake collections where supported.
// Skipped entirely in degraded mode.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoDatabase == nil {
		return nil
	}
	return validators.EnsureAll(ctx, deps.MongoDatabase, logger)
}
