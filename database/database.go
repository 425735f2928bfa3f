package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BiniyamTG/Injera-Beyond/config"
)

// DB holds the three collection handles the services work against. It is
// constructed once at startup and injected; nothing else in the process keeps
// store state.
type DB struct {
	client *mongo.Client

	Foods  Collection
	Drinks Collection
	Users  Collection
}

// Connect dials MongoDB, verifies the connection with a ping and returns the
// collection handles.
func Connect(cfg *config.Config) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	log.Println("connected to MongoDB")

	db := client.Database(cfg.DBName)
	return &DB{
		client: client,
		Foods:  &mongoCollection{coll: db.Collection("foods")},
		Drinks: &mongoCollection{coll: db.Collection("drinks")},
		Users:  &mongoCollection{coll: db.Collection("users")},
	}, nil
}

// Close tears the client down on shutdown.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}
