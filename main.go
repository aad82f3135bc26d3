package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/linlinbupt123-crypto/flow_intel/api"
	"github.com/linlinbupt123-crypto/flow_intel/config"
	"github.com/linlinbupt123-crypto/flow_intel/db"
	"github.com/linlinbupt123-crypto/flow_intel/logger"
	"github.com/linlinbupt123-crypto/flow_intel/metrics"
	"github.com/linlinbupt123-crypto/flow_intel/repository"
	"github.com/linlinbupt123-crypto/flow_intel/service"
	"github.com/linlinbupt123-crypto/flow_intel/utils"
)

func main() {
	// 1. 配置与日志
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.Log)
	if log.GetLevel() < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. 参考数据
	ref, err := repository.Open(cfg.Reference.Path)
	if err != nil {
		log.WithError(err).Fatal("load reference data")
	}

	// 3. MongoDB, only kept open for the process lifetime
	store, err := db.NewMongoRepo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.WithError(err).Fatal("open mongo")
	}
	if err := store.Ping(ctx); err != nil {
		log.WithError(err).Warn("mongo unreachable, continuing without it")
	}

	// 4. 依赖
	m := metrics.New()
	gen := service.NewGenerator(utils.NewRand(cfg.Random.Seed), ref)
	gen.Observe(m.Generated)
	analytics := service.NewAnalyticsService(ref, gen)

	// 5. Gin
	srv := api.NewServer(cfg, analytics, m, store, log)
	if err := srv.Run(ctx); err != nil {
		log.WithError(err).Fatal("server stopped with error")
	}
	log.Info("server stopped")
}
