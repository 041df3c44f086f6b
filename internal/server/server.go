// Package server provides the HTTP server and routing for Stockfolio.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/aristath/stockfolio/internal/config"
	"github.com/aristath/stockfolio/internal/database"
	portfoliohandlers "github.com/aristath/stockfolio/internal/modules/portfolio/handlers"
	stockshandlers "github.com/aristath/stockfolio/internal/modules/stocks/handlers"
	tradinghandlers "github.com/aristath/stockfolio/internal/modules/trading/handlers"
	"github.com/aristath/stockfolio/internal/reliability"
)

// Config holds server configuration
type Config struct {
	Log               zerolog.Logger
	PortfolioDB       *database.DB
	Config            *config.Config
	PortfolioHandlers *portfoliohandlers.Handler
	StocksHandlers    *stockshandlers.Handler
	TradingHandlers   *tradinghandlers.Handler
	BackupService     *reliability.BackupService // nil when backups are not configured
}

// Server represents the HTTP server
type Server struct {
	router            *chi.Mux
	server            *http.Server
	log               zerolog.Logger
	portfolioDB       *database.DB
	portfolioHandlers *portfoliohandlers.Handler
	stocksHandlers    *stockshandlers.Handler
	tradingHandlers   *tradinghandlers.Handler
	systemHandlers    *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	s := &Server{
		router:            chi.NewRouter(),
		log:               cfg.Log.With().Str("component", "server").Logger(),
		portfolioDB:       cfg.PortfolioDB,
		portfolioHandlers: cfg.PortfolioHandlers,
		stocksHandlers:    cfg.StocksHandlers,
		tradingHandlers:   cfg.TradingHandlers,
		systemHandlers:    NewSystemHandlers(cfg.BackupService, cfg.Log),
	}

	s.setupMiddleware(cfg.Config.DevMode)
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware(devMode bool) {
	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(middleware.Timeout(60 * time.Second))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check at the root, including a live database probe
	s.router.Get("/", s.handleHealth)

	// API routes
	s.router.Route("/api", func(r chi.Router) {
		s.portfolioHandlers.RegisterRoutes(r)
		s.stocksHandlers.RegisterRoutes(r)
		s.tradingHandlers.RegisterRoutes(r)

		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
			r.Post("/backup", s.systemHandlers.HandleBackup)
			r.Get("/backups", s.systemHandlers.HandleListBackups)
		})
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.server.Addr).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// Router exposes the configured router, used by tests
func (s *Server) Router() http.Handler {
	return s.router
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
