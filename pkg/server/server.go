// Package server wires the gin engine, middleware and routes into an http.Server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"returnfilers/pkg/config"
	"returnfilers/pkg/handlers"
	"returnfilers/pkg/logger"
	"returnfilers/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server constants
const (
	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 120 * time.Second
)

// HTTPServer represents the HTTP server component
type HTTPServer struct {
	server     *http.Server
	engine     *gin.Engine
	config     *config.Config
	handlerSvc *handlers.HandlerService
	limiter    *middleware.IPRateLimiter
}

// NewHTTPServer creates the engine and registers every route
func NewHTTPServer(cfg *config.Config, handlerSvc *handlers.HandlerService) (*HTTPServer, error) {
	serverCfg := cfg.GetServerConfig()
	logger.Info("Initializing HTTP server", zap.String("addr", serverCfg.Addr()))

	if cfg.GetAppConfig().IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	s := &HTTPServer{
		engine:     gin.New(),
		config:     cfg,
		handlerSvc: handlerSvc,
	}

	rl := cfg.GetRateLimitConfig()
	if rl.Enabled {
		s.limiter = middleware.NewIPRateLimiter(rl.RequestsPerMinute, rl.Burst)
	}

	s.setupRoutes()

	s.server = &http.Server{
		Addr:         serverCfg.Addr(),
		Handler:      s.engine,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		IdleTimeout:  DefaultIdleTimeout,
	}

	logger.Info("HTTP server initialized", zap.String("listen_addr", s.server.Addr))
	return s, nil
}

// Handler exposes the engine, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Limiter is the lead-form rate limiter, nil when rate limiting is off
func (s *HTTPServer) Limiter() *middleware.IPRateLimiter {
	return s.limiter
}

// Start blocks serving HTTP until Shutdown is called
func (s *HTTPServer) Start() error {
	logger.Info("Starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server shutdown failed: %w", err)
	}
	return nil
}

func (s *HTTPServer) setupRoutes() {
	s.engine.Use(
		middleware.RequestID(),
		middleware.GinZapLogger(),
		middleware.Recovery(),
		middleware.ErrorHandler(),
		middleware.CORS(s.config.GetSiteConfig().AllowedOrigins),
	)

	s.engine.GET("/health", s.handlerSvc.HealthCheck)
	s.engine.NoRoute(s.handlerSvc.NotFound)

	api := s.engine.Group("/api")
	s.setupSiteRoutes(api)
	s.setupToolRoutes(api)
	s.setupLeadRoutes(api)
	s.setupAdminRoutes(api)

	logger.Info("HTTP routes configured")
}

func (s *HTTPServer) setupSiteRoutes(api *gin.RouterGroup) {
	api.GET("/settings", s.handlerSvc.GetSettings)

	site := api.Group("/site")
	site.GET("/view", s.handlerSvc.GetSiteView)
	site.GET("/colors", s.handlerSvc.GetColors)
	site.GET("/palette", s.handlerSvc.GetPalette)
}

func (s *HTTPServer) setupToolRoutes(api *gin.RouterGroup) {
	tools := api.Group("/tools")
	tools.GET("/gst/rates", s.handlerSvc.GSTRates)
	tools.POST("/gst", s.handlerSvc.CalculateGST)
}

func (s *HTTPServer) setupLeadRoutes(api *gin.RouterGroup) {
	leads := api.Group("/leads")
	if s.limiter != nil {
		leads.Use(s.limiter.Middleware())
	}
	leads.POST("/:kind", s.handlerSvc.SubmitLead)
}

func (s *HTTPServer) setupAdminRoutes(api *gin.RouterGroup) {
	admin := api.Group("/admin", middleware.AdminAuth(s.config.GetServerConfig().AdminToken))
	admin.PUT("/settings", s.handlerSvc.SaveSettings)
	admin.POST("/settings/refresh", s.handlerSvc.RefreshSettings)
	admin.GET("/leads", s.handlerSvc.ListLeads)
	admin.PATCH("/leads/:id", s.handlerSvc.UpdateLeadStatus)
	admin.GET("/jobs", s.handlerSvc.GetScheduledJobs)
	admin.POST("/jobs/:id/run", s.handlerSvc.RunScheduledJob)
}
