package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	wrapErrors "github.com/linlinbupt123-crypto/flow_intel/errors"
)

const pingTimeout = 3 * time.Second

// MongoRepo is the process's storage handle. Handlers never read or write
// through it; it is opened at start and closed on shutdown.
type MongoRepo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewMongoRepo configures a client for uri. The driver dials lazily, so an
// unreachable server surfaces on Ping rather than here.
func NewMongoRepo(ctx context.Context, uri, dbName string) (*MongoRepo, error) {
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "mongo connect", err)
	}
	return &MongoRepo{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

func (r *MongoRepo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := r.Client.Ping(ctx, readpref.Primary()); err != nil {
		return wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "mongo ping", err)
	}
	return nil
}

func (r *MongoRepo) Close(ctx context.Context) error {
	if err := r.Client.Disconnect(ctx); err != nil {
		return wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "mongo disconnect", err)
	}
	return nil
}
