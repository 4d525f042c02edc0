// File: internal/app/server.go
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"page_insights_backend/internal/account"
	"page_insights_backend/internal/auth"
	"page_insights_backend/internal/common"
	"page_insights_backend/internal/config"
	"page_insights_backend/internal/insights"
	"page_insights_backend/internal/jobs"
	"page_insights_backend/internal/middleware"
	"page_insights_backend/internal/platform/database"
	"page_insights_backend/internal/site"
	"page_insights_backend/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthCheckTimeout = 3 * time.Second

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger
	db         database.Pinger

	// Jobs
	connectionMonitor *jobs.ConnectionMonitor
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	db database.Pinger,
	authHandler *auth.Handler,
	accountHandler *account.Handler,
	insightsHandler *insights.Handler,
	userHandler *user.Handler,
	siteHandler *site.Handler,
	connectionMonitor *jobs.ConnectionMonitor,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	s := &Server{
		router:            router,
		cfg:               cfg,
		logger:            logger,
		db:                db,
		connectionMonitor: connectionMonitor,
	}

	// --- Setup Routes ---
	router.GET("/health", s.health)

	authHandler.RegisterRoutes(router)
	accountHandler.RegisterRoutes(router)
	insightsHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	siteHandler.RegisterRoutes(router)
	router.NoRoute(siteHandler.Assets)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn("Health check failed", zap.Error(err))
		apiErr := common.ErrServiceUnavailable.WithDetails(gin.H{"status": "DOWN", "database": "unreachable"})
		c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "UP", "database": "connected"})
}

// Start starts the connection monitor and blocks serving HTTP, or HTTPS when
// a certificate and key are configured.
func (s *Server) Start() error {
	if s.connectionMonitor != nil {
		if err := s.connectionMonitor.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start connection monitor", zap.Error(err))
		}
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("gin_mode", s.cfg.GinMode),
		zap.Bool("tls", s.cfg.TLSEnabled()),
	)

	var err error
	if s.cfg.TLSEnabled() {
		err = s.httpServer.ListenAndServeTLS(s.cfg.TLSCertFile, s.cfg.TLSKeyFile)
	} else {
		err = s.httpServer.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

// Shutdown stops the monitor and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.connectionMonitor != nil {
		s.connectionMonitor.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
