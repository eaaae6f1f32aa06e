package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	api "github.com/hiroshi-tamura/file-agent/internal/api/http"
	"github.com/hiroshi-tamura/file-agent/internal/api/middleware"
	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/config"
	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/logging"
	"github.com/hiroshi-tamura/file-agent/internal/infrastructure/monitoring"
	"github.com/hiroshi-tamura/file-agent/internal/providers/filesystem"
	"github.com/hiroshi-tamura/file-agent/internal/shared/auth"
)

// Server wraps the HTTP server and its dependencies. A server is built from
// an immutable configuration snapshot; a changed configuration requires a
// fresh instance, driven by the supervisor in cmd/fileagent.
type Server struct {
	router  *gin.Engine
	http    *http.Server
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// New assembles a server: the token digest is computed once here, injected
// into the handler set, and never recomputed per request.
func New(cfg *config.Config, logger *logging.Logger) *Server {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := monitoring.NewMetrics()
	handlers := api.NewHandlers(
		auth.Digest(cfg.Settings.Token),
		filesystem.NewService(),
		filesystem.NewWalker(),
		metrics,
	)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// File operations
	router.POST("/api/read", handlers.Read)
	router.POST("/api/read_binary", handlers.ReadBinary)
	router.POST("/api/write", handlers.Write)
	router.POST("/api/write_binary", handlers.WriteBinary)
	router.POST("/api/delete", handlers.Delete)
	router.POST("/api/create", handlers.Create)
	router.POST("/api/move", handlers.Move)
	router.POST("/api/copy", handlers.Copy)

	// Directory operations
	router.POST("/api/search", handlers.Search)
	router.GET("/api/list", handlers.List)

	// Unauthenticated surface
	router.GET("/api/health", handlers.Health)
	router.GET("/metrics", metrics.Handler())

	logger.Info("server initialized", zap.Uint16("port", cfg.Settings.Port))

	return &Server{
		router:  router,
		http:    &http.Server{Handler: router},
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}
}

// Handler exposes the route table for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run binds the loopback address and serves until Shutdown. The listener is
// opened before serving so a port collision surfaces here as an error the
// caller can diagnose, rather than inside the serve loop.
func (s *Server) Run() error {
	addr := s.config.Settings.Addr()
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.logger.Info("API server listening", zap.String("addr", addr))
	if err := s.http.Serve(listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests until
// ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down API server")
	return s.http.Shutdown(ctx)
}
