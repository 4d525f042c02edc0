// File: internal/platform/database/mongo.go
package database

import (
	"context"
	"fmt"

	"page_insights_backend/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"
)

// Pinger is the health-check surface of the store handle.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Mongo is the process-wide document store handle. It is created once at
// startup and shared by every repository; the driver pools connections and
// reconnects on its own after a drop.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

var _ Pinger = (*Mongo)(nil)

// NewMongo connects to MongoDB and verifies the connection with a ping.
// The returned cleanup disconnects the client.
func NewMongo(cfg *config.Config, logger *zap.Logger) (*Mongo, func(), error) {
	log := logger.Named("mongo")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoServerSelectionTimeout+cfg.MongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, ClientOptions(cfg))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(cfg.MongoDatabase), logger: log}
	if err := m.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Info("Connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	cleanup := func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), cfg.ServerTimeout)
		defer closeCancel()
		if err := m.Close(closeCtx); err != nil {
			log.Error("Error closing MongoDB connection", zap.Error(err))
			return
		}
		log.Info("MongoDB connection closed")
	}
	return m, cleanup, nil
}

// ClientOptions builds the driver options from configuration.
func ClientOptions(cfg *config.Config) *options.ClientOptions {
	return options.Client().
		ApplyURI(cfg.MongoURI).
		SetConnectTimeout(cfg.MongoConnectTimeout).
		SetServerSelectionTimeout(cfg.MongoServerSelectionTimeout).
		SetSocketTimeout(cfg.MongoSocketTimeout).
		SetMaxPoolSize(cfg.MongoMaxPoolSize).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.Majority())
}

// Collection returns a handle on the named collection of the configured database.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Ping checks that a primary is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
