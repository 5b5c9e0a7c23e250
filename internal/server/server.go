// Package server sets up the HTTP server, router, and all route definitions.
//
// SERVER ARCHITECTURE:
// This package is the "wiring" layer — it connects handlers, middleware, and routes.
// Think of it as the control centre that decides:
// - Which URL patterns map to which handler functions
// - What middleware runs on which routes
// - How the server starts and stops gracefully
//
// DEPENDENCY INJECTION FLOW:
// main.go loads config and creates the logger; everything else is assembled
// here, in one place (the "composition root"):
//
//	prometheus registry → metrics.PromSink → decoder.Client
//	decoder.Client → service.LookupService → handler.VinHandler
//	catalog.New() → handler.CatalogHandler
//
// Each layer only receives what it needs: the service gets the decoder
// interface, the handlers get services, nothing below the handlers ever
// touches HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sakif/vin-lookup/internal/catalog"
	"github.com/sakif/vin-lookup/internal/config"
	"github.com/sakif/vin-lookup/internal/decoder"
	"github.com/sakif/vin-lookup/internal/handler"
	"github.com/sakif/vin-lookup/internal/metrics"
	"github.com/sakif/vin-lookup/internal/middleware"
	"github.com/sakif/vin-lookup/internal/service"
)

// Server represents the HTTP server and all its dependencies.
type Server struct {
	router *chi.Mux
	config *config.Config
	logger *slog.Logger
}

// New creates a new Server with the given config and wires the full
// dependency chain.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
	}

	if err := s.setupRoutes(); err != nil {
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET  /                              → Lookup page (HTML)
// GET  /static/*                      → Static files (CSS, JS)
// POST /api/vin                       → Decode a VIN (JSON)
// GET  /api/catalog/makes             → Known makes (JSON)
// GET  /api/catalog/models            → Models for a make (JSON)
// GET  /api/catalog/years             → Years for a (make, model) (JSON)
// GET  /api/catalog/engines           → Engines for (make, model, year) (JSON)
// GET  /api/catalog/variants/{id}     → Variant with filtered issues (JSON)
// GET  /metrics                       → Prometheus metrics
//
// MIDDLEWARE ORDER MATTERS:
// Middleware executes in the order it's added. Our order:
// 1. RequestID — assigns a unique id to each request (for tracing)
// 2. RealIP — extracts real client IP from proxy headers
// 3. Recoverer — catches panics and returns 500 instead of crashing
// 4. Logger — logs each request with the request id and timing info
func (s *Server) setupRoutes() error {
	// === Global Middleware ===
	s.router.Use(middleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// === Static Files ===
	// http.StripPrefix removes "/static/" from the URL path before lookup,
	// so GET /static/app.js serves {StaticDir}/app.js.
	fileServer := http.FileServer(http.Dir(s.config.Web.StaticDir))
	s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	// === Page Routes ===
	pageHandler, err := handler.NewPageHandler(s.config.Web.TemplateDir, s.logger)
	if err != nil {
		return fmt.Errorf("creating page handler: %w", err)
	}
	s.router.Get("/", pageHandler.HandleLookup)

	// === Metrics ===
	// A private registry instead of prometheus.DefaultRegisterer keeps the
	// exposed metric set explicit and lets tests build servers side by side.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	s.router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// === API Routes ===
	sink, err := metrics.NewPromSink(registry)
	if err != nil {
		return fmt.Errorf("registering decode metrics: %w", err)
	}

	decodeClient := decoder.New(s.config.Decoder.ToDecoderConfig(), sink, s.logger)
	lookupService := service.NewLookupService(decodeClient, s.logger)
	vinHandler := handler.NewVinHandler(lookupService, s.logger)
	catalogHandler := handler.NewCatalogHandler(catalog.New(), s.logger)

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/vin", vinHandler.HandleDecode)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/makes", catalogHandler.HandleMakes)
			r.Get("/models", catalogHandler.HandleModels)
			r.Get("/years", catalogHandler.HandleYears)
			r.Get("/engines", catalogHandler.HandleEngines)
			r.Get("/variants/{id}", catalogHandler.HandleVariant)
		})
	})

	return nil
}

// Start starts the HTTP server and handles graceful shutdown.
//
// GRACEFUL SHUTDOWN:
// 1. Stop accepting new HTTP connections
// 2. Wait for in-flight requests to finish (30s timeout)
//
// A decode that is mid-flight towards NHTSA finishes inside that window; its
// request context is cancelled once the window closes.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine (so it doesn't block)
	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Server.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Server.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		// Give in-flight requests 30 seconds to complete
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
