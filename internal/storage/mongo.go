package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfoliomaker/internal/models"
)

const connectTimeout = 10 * time.Second

// MongoStore keeps accounts in a single collection, keyed by username.
// Uniqueness comes from the _id index, so concurrent registrations of
// the same name race on the insert rather than on a lookup.
type MongoStore struct {
	client *mongo.Client
	col    *mongo.Collection
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName, collName string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoStore{
		client: client,
		col:    client.Database(dbName).Collection(collName),
	}, nil
}

func (s *MongoStore) Insert(ctx context.Context, user models.UserAccount) error {
	if _, err := s.col.InsertOne(ctx, user); err != nil {
		return translateInsertError(err)
	}
	return nil
}

// translateInsertError maps the driver's duplicate-key error onto the
// package sentinel so callers never inspect driver types.
func translateInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateUser
	}
	return fmt.Errorf("insert user: %w", err)
}

func (s *MongoStore) FindByUsername(ctx context.Context, username string) (models.UserAccount, error) {
	var user models.UserAccount
	err := s.col.FindOne(ctx, bson.M{"_id": username}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user, ErrNotFound
		}
		return user, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *MongoStore) UpdatePortfolio(ctx context.Context, username string, profile models.ProfileRecord) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": username},
		bson.M{"$set": bson.M{"portfolio_data": profile}},
	)
	if err != nil {
		return fmt.Errorf("update portfolio: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
