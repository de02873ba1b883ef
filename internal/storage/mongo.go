package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCollection = "app_state"

type mongoDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoKV keeps each key as one document in the app_state collection.
type MongoKV struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoKV(ctx context.Context, uri, dbName string) (*MongoKV, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &MongoKV{
		client: client,
		coll:   client.Database(dbName).Collection(mongoCollection),
	}, nil
}

func (m *MongoKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var doc mongoDocument
	err := m.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get mongo kv %q: %w", key, err)
	}
	return []byte(doc.Value), true, nil
}

func (m *MongoKV) Set(ctx context.Context, key string, value []byte) error {
	doc := newMongoDocument(key, value, time.Now().UTC())
	_, err := m.coll.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("set mongo kv %q: %w", key, err)
	}
	return nil
}

func (m *MongoKV) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func newMongoDocument(key string, value []byte, at time.Time) mongoDocument {
	return mongoDocument{Key: key, Value: string(value), UpdatedAt: at}
}
