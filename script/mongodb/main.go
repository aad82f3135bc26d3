package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/linlinbupt123-crypto/flow_intel/config"
	"github.com/linlinbupt123-crypto/flow_intel/db"
	"github.com/linlinbupt123-crypto/flow_intel/logger"
	"github.com/linlinbupt123-crypto/flow_intel/repository"
)

// Creates the reference collection indexes and seeds a snapshot of the
// reference tables, using the same config as the API server.
func main() {
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	ref, err := repository.Open(cfg.Reference.Path)
	if err != nil {
		log.WithError(err).Fatal("load reference data")
	}

	store, err := db.NewMongoRepo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.WithError(err).Fatal("open mongo")
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			log.WithError(err).Warn("close mongo")
		}
	}()

	if err := store.Ping(ctx); err != nil {
		log.WithError(err).Fatal("mongo unreachable")
	}

	// 初始化所有 collection 索引
	if err := store.EnsureIndexes(ctx); err != nil {
		log.WithError(err).Fatal("init indexes")
	}
	n, err := store.SeedReference(ctx, ref)
	if err != nil {
		log.WithError(err).Fatal("seed reference tables")
	}
	log.WithFields(logrus.Fields{"database": cfg.Mongo.Database, "documents": n}).Info("reference tables seeded")
}
