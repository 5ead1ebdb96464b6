package catalog

import (
	"context"
	"fmt"
	"time"

	"fitforge/plan-generator/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const mongoConnectTimeout = 10 * time.Second

// MongoConfig holds the connection details for a Mongo-backed dataset.
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

// mongoSource loads the dataset from a MongoDB collection. The client is
// connected, the collection is read once, and the client is disconnected
// again: the catalog lives in memory for the rest of the process lifetime.
type mongoSource struct {
	cfg MongoConfig
}

// NewMongoSource returns a Source reading the dataset from MongoDB.
func NewMongoSource(cfg MongoConfig) Source {
	return mongoSource{cfg: cfg}
}

func (s mongoSource) Load(ctx context.Context) (*Catalog, error) {
	connectCtx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	collection := client.Database(s.cfg.Database).Collection(s.cfg.Collection)

	// Sort by _id so the in-memory order, and therefore exercise selection,
	// is stable across restarts.
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("query catalog collection: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []domain.CatalogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog entries: %w", err)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return New(entries)
}
