package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/casefolio/console/internal/api/http"
	"github.com/casefolio/console/internal/api/middleware"
	"github.com/casefolio/console/internal/api/ws"
	"github.com/casefolio/console/internal/config"
	"github.com/casefolio/console/internal/content"
	"github.com/casefolio/console/internal/logging"
	"github.com/casefolio/console/internal/monitoring"
	"github.com/casefolio/console/internal/session"
	"github.com/casefolio/console/internal/vfs"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg      *config.Config
	logger   *logging.Logger
	router   *gin.Engine
	sessions *session.Manager
	httpSrv  *http.Server
}

// New builds a fully wired server. The catalog is loaded and the virtual
// filesystem is constructed before any route is registered, so handlers
// never observe a partially built tree.
func New(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	records, err := content.LoadCatalog(cfg.Content.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.String("path", cfg.Content.CatalogPath),
		zap.Int("projects", len(records)))

	fs := vfs.Build(records, logger)
	metrics := monitoring.New()
	sessions := session.NewManager(fs, time.Duration(cfg.Session.IdleTTLMinutes)*time.Minute, metrics)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(sessions, fs, records, metrics, logger)
	wsHandler := ws.NewHandler(fs, metrics, logger)

	router.GET("/", handlers.Root)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))
	router.GET("/catalog", handlers.Catalog)

	router.POST("/sessions", handlers.CreateSession)
	router.DELETE("/sessions/:id", handlers.CloseSession)
	router.POST("/sessions/:id/execute", handlers.Execute)
	router.GET("/sessions/:id/complete", handlers.Complete)

	router.GET("/ws", wsHandler.HandleConnection)

	return &Server{
		cfg:      cfg,
		logger:   logger,
		router:   router,
		sessions: sessions,
	}, nil
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	s.logger.Info("server listening", zap.String("addr", addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts the server down gracefully and releases resources.
func (s *Server) Close() error {
	s.sessions.Close()

	if s.httpSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpSrv.Shutdown(ctx); err != nil {
			return err
		}
	}

	s.logger.Info("server stopped")
	return s.logger.Sync()
}
