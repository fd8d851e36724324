package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"resident-records-service/internal/infrastructure/config"
	"resident-records-service/pkg/logger"
)

const connectTimeout = 10 * time.Second

// Client owns a connected mongo client and the service database.
type Client struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect dials cfg.MongoURI and verifies the primary is reachable.
func Connect(ctx context.Context, cfg *config.Config) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	logger.Info("connected to mongo database %s", cfg.MongoDatabase)
	return &Client{
		Client:   client,
		Database: client.Database(cfg.MongoDatabase),
	}, nil
}

// Close disconnects with a short timeout.
func (c *Client) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Client.Disconnect(ctx)
}
