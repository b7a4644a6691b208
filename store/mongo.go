package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MongoCollection = "kv_store"

type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend keeps one document per key in a single collection.
type MongoBackend struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewMongoBackend(client *mongo.Client, database string) *MongoBackend {
	return &MongoBackend{
		client:     client,
		collection: client.Database(database).Collection(MongoCollection),
	}
}

func (m *MongoBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var doc kvDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("find %q: %w", key, err)
	}
	return doc.Value, true, nil
}

func (m *MongoBackend) Set(ctx context.Context, key, value string) error {
	update := bson.M{
		"$set": bson.M{
			"value":      value,
			"updated_at": time.Now(),
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := m.collection.UpdateOne(ctx, bson.M{"_id": key}, update, opts); err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

func (m *MongoBackend) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}
