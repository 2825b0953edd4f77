// Package server exposes the translation service over HTTP.
package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/valpere/translate-api/internal/auth"
	"github.com/valpere/translate-api/internal/config"
	"github.com/valpere/translate-api/internal/detector"
	"github.com/valpere/translate-api/internal/store"
	"github.com/valpere/translate-api/internal/translator"
)

// Version is reported by the health and root endpoints.
const Version = "1.0.0"

// Server bundles the components behind the HTTP handlers.
type Server struct {
	cfg      *config.Config
	verifier *auth.Verifier
	provider translator.Provider
	det      *detector.Detector
	history  *store.Store
	logger   *zap.Logger
}

// New creates a Server. history may be nil when the history store is
// disabled by configuration.
func New(cfg *config.Config, provider translator.Provider, det *detector.Detector, history *store.Store, logger *zap.Logger) *Server {
	return &Server{
		cfg:      cfg,
		verifier: auth.NewVerifier(cfg.Auth.APIKeys),
		provider: provider,
		det:      det,
		history:  history,
		logger:   logger,
	}
}

// Router builds the gin engine with all routes configured.
func (s *Server) Router() *gin.Engine {
	if s.cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(ginLogger(s.logger))
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// System endpoints require no authentication.
	r.GET("/health", s.handleHealth)
	r.GET("/", s.handleRoot)

	v1 := r.Group("/api/v1")
	v1.Use(apiKeyAuth(s.verifier))
	{
		v1.POST("/translate", s.handleTranslate)
		v1.POST("/detect", s.handleDetect)
		v1.GET("/history", s.handleHistory)
	}

	return r
}
