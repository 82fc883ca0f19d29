package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"catalog-console/config"
	_ "catalog-console/docs" // Swagger docs
	"catalog-console/internal/authentication/usecase"
	"catalog-console/internal/console"
	consoleHTTP "catalog-console/internal/console/delivery/http"
	"catalog-console/internal/httpserver"
	"catalog-console/internal/middleware"
	productService "catalog-console/internal/product/service"
	"catalog-console/internal/session"
	"catalog-console/pkg/catalogapi"
	"catalog-console/pkg/log"
	"catalog-console/pkg/metrics"
)

// @title       Catalog Console
// @description Server-rendered admin console for a REST product catalog.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Catalog Console...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog API: %s (login %s)", cfg.API.BaseURL, cfg.API.LoginPath)

	// 3. Sessions & metrics
	sessions := session.NewStore(cfg.Session.MaxEntries, cfg.Session.TTL)
	m := metrics.New(cfg.Metrics.Prefix, sessions.Len)

	// 4. Catalog API client
	api := catalogapi.NewClient(cfg.API.BaseURL,
		catalogapi.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		catalogapi.WithLoginPath(cfg.API.LoginPath),
		catalogapi.WithRateLimit(cfg.API.RateLimitPerSec, cfg.API.RateBurst),
		catalogapi.WithObserver(m),
	)

	// 5. Domain services
	products := productService.New(api, logger)
	auth := usecase.New(api, logger, cfg.Session.TokenTTL)

	composer := console.NewComposer(console.Config{
		Logger:         logger,
		Products:       products,
		Auth:           auth,
		AuthObserver:   m,
		NotifyDuration: cfg.Notification.Duration,
	})

	// 6. HTTP Server
	tmpl, err := consoleHTTP.Templates()
	if err != nil {
		logger.Error(ctx, "Failed to parse templates: ", err)
		return
	}

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, sessions, cfg.Session, m),
		Composer:    composer,
		Templates:   tmpl,
		Metrics:     m.Handler(),
		Ready:       api.Ping,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
