// Package server provides the HTTP API for erabu.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hyperjump/erabu/internal/config"
	"github.com/hyperjump/erabu/internal/pipeline"
)

// Server is the HTTP server for the erabu API.
type Server struct {
	engine  *pipeline.Engine
	config  *config.ServerConfig
	logger  *zap.Logger
	version string
	server  *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(engine *pipeline.Engine, cfg *config.ServerConfig, version string, logger *zap.Logger) *Server {
	return &Server{
		engine:  engine,
		config:  cfg,
		logger:  logger,
		version: version,
	}
}

// Router builds the chi router with all middleware and routes. Split out
// of Start so tests and embedders can serve the API without binding a
// port. The request timeout covers the slowest legitimate run: a full
// page budget fetched at the configured upstream rate.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(corsMiddleware(s.config.CORSOrigins))

	r.Post("/api/v1/query", s.handleQuery)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

// corsMiddleware allows browser clients on the configured origins to call
// the API. A "*" origin allows everyone. Preflight requests are answered
// here and never reach the handlers.
func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(origins))
	for _, origin := range origins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowAll || allowed[origin]) {
				header := origin
				if allowAll {
					header = "*"
				}
				w.Header().Set("Access-Control-Allow-Origin", header)
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
