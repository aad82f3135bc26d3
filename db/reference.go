package db

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linlinbupt123-crypto/flow_intel/entity"
	wrapErrors "github.com/linlinbupt123-crypto/flow_intel/errors"
	"github.com/linlinbupt123-crypto/flow_intel/repository"
)

// Collections holding a snapshot of the reference tables.
const (
	AssetsCollection  = "assets"
	HoldersCollection = "holders"
	ChainsCollection  = "chains"
)

type collectionIndex struct {
	collection string
	model      mongo.IndexModel
}

func referenceIndexes() []collectionIndex {
	return []collectionIndex{
		{AssetsCollection, mongo.IndexModel{Keys: bson.M{"id": 1}, Options: options.Index().SetUnique(true)}},
		{AssetsCollection, mongo.IndexModel{Keys: bson.M{"symbol": 1}}},
		{HoldersCollection, mongo.IndexModel{Keys: bson.M{"address": 1}, Options: options.Index().SetUnique(true)}},
		{HoldersCollection, mongo.IndexModel{Keys: bson.D{{Key: "is_entity", Value: 1}, {Key: "usd", Value: -1}}}},
		{ChainsCollection, mongo.IndexModel{Keys: bson.M{"id": 1}, Options: options.Index().SetUnique(true)}},
	}
}

// 已存在的索引不算错误
func isIndexConflict(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// EnsureIndexes creates the reference collection indexes, tolerating ones
// that already exist.
func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	for _, idx := range referenceIndexes() {
		_, err := r.DB.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model)
		if err != nil && !isIndexConflict(err) {
			return wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "create "+idx.collection+" index", err)
		}
	}
	return nil
}

// SeedReference upserts the featured assets, holders and chains so external
// tools can query the same tables the API serves. It returns the number of
// documents written.
func (r *MongoRepo) SeedReference(ctx context.Context, ref *repository.Reference) (int, error) {
	upsert := options.Replace().SetUpsert(true)
	written := 0
	replace := func(collection string, filter bson.M, doc any) error {
		if _, err := r.DB.Collection(collection).ReplaceOne(ctx, filter, doc, upsert); err != nil {
			return wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "seed "+collection,
				fmt.Errorf("%v: %w", filter, err))
		}
		written++
		return nil
	}

	for _, a := range ref.Assets() {
		if err := replace(AssetsCollection, bson.M{"id": a.ID}, a); err != nil {
			return written, err
		}
	}
	for _, h := range ref.Holders() {
		if err := replace(HoldersCollection, bson.M{"address": h.Address}, holderDocument(h)); err != nil {
			return written, err
		}
	}
	for _, c := range ref.Chains() {
		if err := replace(ChainsCollection, bson.M{"id": c.ID}, c); err != nil {
			return written, err
		}
	}
	return written, nil
}

func holderDocument(h entity.Holder) bson.M {
	doc := bson.M{
		"name":      h.Name,
		"address":   h.Address,
		"is_entity": h.IsEntity,
		"value":     h.Value,
		"pct":       h.Pct,
		"usd":       h.USD,
	}
	if h.Logo != nil {
		doc["logo"] = *h.Logo
	}
	return doc
}
