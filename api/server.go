package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/linlinbupt123-crypto/flow_intel/config"
	wrapErrors "github.com/linlinbupt123-crypto/flow_intel/errors"
	"github.com/linlinbupt123-crypto/flow_intel/logger"
	"github.com/linlinbupt123-crypto/flow_intel/metrics"
	"github.com/linlinbupt123-crypto/flow_intel/service"
)

const shutdownTimeout = 10 * time.Second

// Storage is the storage handle whose lifetime the server owns.
type Storage interface {
	Close(ctx context.Context) error
}

type Server struct {
	engine *gin.Engine
	http   *http.Server
	store  Storage
	log    logrus.FieldLogger
}

func NewServer(cfg *config.Config, as *service.AnalyticsService, m *metrics.Metrics, store Storage, log logrus.FieldLogger) *Server {
	engine := NewRouter(cfg.CORS, NewAnalyticsHandler(as, log), m, log)
	return &Server{
		engine: engine,
		http: &http.Server{
			Addr:              cfg.Server.Port,
			Handler:           engine,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store: store,
		log:   log,
	}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled or the listener fails, then shuts the
// HTTP server down and closes the storage handle.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.http.Addr).Info("http server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case err := <-errCh:
		serveErr = wrapErrors.WrapWithCode(wrapErrors.CodeInternal, "http listen", err)
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if serveErr == nil {
		shutdownErr = s.http.Shutdown(shutdownCtx)
	}
	closeErr := s.store.Close(shutdownCtx)
	if closeErr != nil {
		s.log.WithError(closeErr).Warn("closing storage handle")
	}
	return errors.Join(serveErr, shutdownErr, closeErr)
}

// NewRouter mounts the analytics API under /api and metrics under /metrics.
func NewRouter(corsCfg config.CORSConfig, h *AnalyticsHandler, m *metrics.Metrics, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.Middleware(log), m.Middleware(), corsMiddleware(corsCfg))

	r.GET("/metrics", gin.WrapH(m.Handler()))

	api := r.Group("/api")
	api.GET("/", h.Health)
	api.GET("/entities", h.Entities)
	api.GET("/exchange-flows", h.ExchangeFlows)
	api.GET("/transfers", h.Transfers)
	api.GET("/market-stats", h.MarketStats)

	tokens := api.Group("/tokens")
	tokens.GET("", h.Tokens)
	tokens.GET("/:id", h.Token)
	tokens.GET("/:id/balance-changes", h.BalanceChanges)
	tokens.GET("/:id/holders", h.Holders)
	tokens.GET("/:id/transfers", h.TokenTransfers)
	tokens.GET("/:id/price-history", h.PriceHistory)
	tokens.GET("/:id/open-interest", h.OpenInterest)
	tokens.GET("/:id/cex-volume", h.CEXVolume)

	return r
}

func corsMiddleware(c config.CORSConfig) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		MaxAge:       12 * time.Hour,
	}
	if c.AllowAll() {
		cc.AllowAllOrigins = true
		cc.AllowHeaders = []string{"*"}
	} else {
		// credentialed requests do not honour a "*" header list
		cc.AllowOrigins = c.Origins
		cc.AllowCredentials = true
		cc.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"}
	}
	return cors.New(cc)
}
