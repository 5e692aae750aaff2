package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bookstore-catalog/internal/config"
)

// MongoDB wraps the driver client and owns its lifecycle.
// Constructed once in the container and passed down explicitly; nothing in
// the codebase reaches for a package-level connection.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *config.MongoConfig
}

func NewMongoDB(cfg *config.MongoConfig) *MongoDB {
	return &MongoDB{Config: cfg}
}

// Connect establishes the client connection with retry and exponential
// backoff, then pings the primary to make sure the deployment is reachable.
func (db *MongoDB) Connect(ctx context.Context) error {
	opts := options.Client().
		ApplyURI(db.Config.URI).
		SetMaxPoolSize(db.Config.MaxPoolSize).
		SetConnectTimeout(db.Config.ConnectTimeout)

	var lastErr error
	delay := db.Config.RetryDelay

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		client, err := mongo.Connect(ctx, opts)
		if err == nil {
			pingCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
			err = client.Ping(pingCtx, readpref.Primary())
			cancel()

			if err == nil {
				db.Client = client
				db.Database = client.Database(db.Config.Database)
				log.Info().
					Str("database", db.Config.Database).
					Int("attempt", attempt).
					Msg("[MONGO] Connected successfully")
				return nil
			}
			// Ping failed: tear the half-open client down before retrying
			_ = client.Disconnect(ctx)
		}

		lastErr = err
		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_retries", db.Config.MaxRetries).
			Msg("[MONGO] Connection attempt failed")

		if attempt < db.Config.MaxRetries {
			select {
			case <-time.After(delay):
				delay *= 2
			case <-ctx.Done():
				return fmt.Errorf("mongo connect cancelled: %w", ctx.Err())
			}
		}
	}

	return fmt.Errorf("failed to connect to mongo after %d attempts: %w", db.Config.MaxRetries, lastErr)
}

// Collection returns the configured books collection handle.
func (db *MongoDB) Collection() *mongo.Collection {
	return db.Database.Collection(db.Config.Collection)
}

func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("mongo client is not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := db.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	if err := db.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	log.Info().Msg("[MONGO] Connection closed")
	return nil
}
