package httpserver

import (
	"context"
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"catalog-console/internal/console"
	"catalog-console/internal/middleware"
	"catalog-console/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Console domain
	mw        middleware.Middleware
	composer  *console.Composer
	templates *template.Template

	// System
	metrics http.Handler
	ready   func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Console domain
	Middleware middleware.Middleware
	Composer   *console.Composer
	Templates  *template.Template

	// Metrics serves /metrics when set.
	Metrics http.Handler
	// Ready backs /ready when set.
	Ready func(ctx context.Context) error
}

// New creates a new HTTPServer instance with all routes mapped.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		composer:    cfg.Composer,
		templates:   cfg.Templates,
		metrics:     cfg.Metrics,
		ready:       cfg.Ready,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.composer == nil {
		return errors.New("composer is required")
	}
	if srv.templates == nil {
		return errors.New("templates are required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
