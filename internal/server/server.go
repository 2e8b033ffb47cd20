package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/tcoloa/lease-calculator/internal/calculation"
	"github.com/tcoloa/lease-calculator/internal/config"
	"github.com/tcoloa/lease-calculator/internal/logging"
)

// Server exposes the calculation engine as a JSON API for charting
// front-ends: breakdown, cumulative series, summary and multi-offer
// comparison. Request bodies are plain configuration documents in the same
// schema as config files.
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger *zap.Logger
}

// New creates a server. A nil logger disables logging.
func New(logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logging.NewEngineLogger(logger))
	return &Server{
		engine: engine,
		parser: config.NewInputParser(),
		logger: logger,
	}
}

// Router configures the chi router with the middleware stack and all routes.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/breakdown", s.handleBreakdown)
		r.Post("/series", s.handleSeries)
		r.Post("/summary", s.handleSummary)
		r.Post("/compare", s.handleCompare)
	})

	return r
}

// ListenAndServe starts the HTTP server on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("listening", zap.String("addr", addr))
	return srv.ListenAndServe()
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
