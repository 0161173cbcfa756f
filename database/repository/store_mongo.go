package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements Store using MongoDB.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a Store over the given database handle. A nil handle
// is accepted: every operation then fails with ErrStoreUnavailable.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

// newContext bounds the parent context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

func (s *MongoStore) Insert(ctx context.Context, kind Kind, doc any) (string, error) {
	if s.db == nil {
		return "", ErrStoreUnavailable
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := s.db.Collection(string(kind)).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", kind, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

func (s *MongoStore) Find(ctx context.Context, kind Kind, filter bson.M, limit int64, dest any) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find().SetLimit(limit)
	cursor, err := s.db.Collection(string(kind)).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, dest); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) FindOne(ctx context.Context, kind Kind, filter bson.M, dest any) error {
	if s.db == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	err := s.db.Collection(string(kind)).FindOne(ctx, filter).Decode(dest)
	if err == mongo.ErrNoDocuments {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to fetch %s document: %w", kind, err)
	}
	return nil
}

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return names, nil
}
