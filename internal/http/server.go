// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/jsondocs/internal/admin"
	authHTTP "github.com/allisson/jsondocs/internal/auth/http"
	authService "github.com/allisson/jsondocs/internal/auth/service"
	authUseCase "github.com/allisson/jsondocs/internal/auth/usecase"
	"github.com/allisson/jsondocs/internal/config"
	contentTypeDomain "github.com/allisson/jsondocs/internal/contenttype/domain"
	documentHTTP "github.com/allisson/jsondocs/internal/document/http"
	"github.com/allisson/jsondocs/internal/metrics"
	roleDomain "github.com/allisson/jsondocs/internal/role/domain"
)

const adminRealm = "jsondocs admin"

// reservedRESTBases are /v1 paths owned by fixed routes.
var reservedRESTBases = map[string]bool{
	"types": true,
	"token": true,
}

// ContentTypeLister lists the content types mounted under /v1.
type ContentTypeLister interface {
	RESTTypes() []contentTypeDomain.ContentType
}

// Handlers groups the request handlers mounted by SetupRouter.
type Handlers struct {
	Token    *authHTTP.TokenHandler
	Type     *documentHTTP.TypeHandler
	Document *documentHTTP.DocumentHandler
	Admin    *admin.Handler
}

// Server represents the HTTP server
type Server struct {
	db     *sql.DB
	logger *slog.Logger
	router *gin.Engine
	server *http.Server
	host   string
	port   int
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		host:   host,
		port:   port,
	}
}

// SetupRouter builds the gin engine with every API and admin route.
func (s *Server) SetupRouter(
	ctx context.Context,
	cfg *config.Config,
	contentTypes ContentTypeLister,
	handlers Handlers,
	tokenUseCase authUseCase.TokenUseCase,
	tokenService authService.TokenService,
	metricsProvider *metrics.Provider,
) {
	gin.SetMode(cfg.GetGinMode())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))
	if cors := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); cors != nil {
		router.Use(cors)
	}
	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	tokenRoute := v1.Group("/token")
	if cfg.RateLimitTokenEnabled {
		tokenRoute.Use(authHTTP.TokenRateLimitMiddleware(
			ctx,
			cfg.RateLimitTokenRequestsPerSec,
			cfg.RateLimitTokenBurst,
			s.logger,
		))
	}
	tokenRoute.POST("", handlers.Token.IssueTokenHandler)

	// Document reads are open to anonymous callers, who only ever see published documents.
	public := v1.Group("")
	public.Use(authHTTP.OptionalAuthenticationMiddleware(tokenUseCase, tokenService, s.logger))
	if cfg.RateLimitEnabled {
		public.Use(authHTTP.ReaderRateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	api := v1.Group("")
	api.Use(authHTTP.AuthenticationMiddleware(tokenUseCase, tokenService, s.logger))
	if cfg.RateLimitEnabled {
		api.Use(authHTTP.RateLimitMiddleware(ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	api.GET("/types", handlers.Type.ListHandler)
	api.GET("/types/:name", handlers.Type.GetHandler)

	for _, ct := range contentTypes.RESTTypes() {
		if reservedRESTBases[ct.RESTBase] {
			s.logger.Warn("skipping content type with reserved rest base",
				slog.String("content_type", ct.Name),
				slog.String("rest_base", ct.RESTBase))
			continue
		}
		s.mountDocumentRoutes(
			public.Group("/"+ct.RESTBase, documentHTTP.WithContentType(ct)),
			api.Group("/"+ct.RESTBase, documentHTTP.WithContentType(ct)),
			handlers.Document,
		)
	}

	adminGroup := router.Group("/admin")
	adminGroup.Use(authHTTP.BasicAuthMiddleware(tokenUseCase, adminRealm, s.logger))
	adminGroup.Use(authHTTP.RequireCapability(roleDomain.ReadCapability, s.logger))
	adminGroup.GET("", handlers.Admin.MenuHandler)
	adminGroup.GET("/:type", handlers.Admin.ListHandler)
	adminGroup.GET("/:type/new", handlers.Admin.CreateDraftHandler)
	adminGroup.GET("/:type/:id/edit", handlers.Admin.EditHandler)
	adminGroup.POST("/:type/:id", handlers.Admin.SaveHandler)

	s.router = router
}

func (s *Server) mountDocumentRoutes(reads, group *gin.RouterGroup, h *documentHTTP.DocumentHandler) {
	reads.GET("", h.ListHandler)
	reads.GET("/:id", h.GetHandler)

	group.POST("", h.CreateHandler)
	group.POST("/:id", h.UpdateHandler)
	group.PUT("/:id", h.UpdateHandler)
	group.PATCH("/:id", h.UpdateHandler)
	group.DELETE("/:id", h.DeleteHandler)
	group.GET("/:id/revisions", h.ListRevisionsHandler)
	group.GET("/:id/revisions/:revision_id", h.GetRevisionHandler)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not initialized, call SetupRouter first")
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.host, s.port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
