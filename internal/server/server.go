package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/audit"
	"github.com/spigell/resume-scorer/internal/scoring"
)

// Server exposes the scoring engine over HTTP. The engine is immutable, so
// the server is safe for concurrent requests without additional locking.
type Server struct {
	engine   *scoring.Engine
	recorder *audit.Recorder
	logger   *zap.Logger

	allowedOrigins []string
}

func New(engine *scoring.Engine, recorder *audit.Recorder, logger *zap.Logger, allowedOrigins []string) *Server {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	return &Server{
		engine:         engine,
		recorder:       recorder,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
}

// Router builds the chi mux with all routes attached.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/score", s.handleScore)
		r.Route("/rules", func(r chi.Router) {
			r.Get("/", s.handleRules)
			r.Get("/version", s.handleRulesVersion)
			r.Post("/validate", s.handleRulesValidate)
		})
	})

	return r
}

// ListenAndServe blocks serving HTTP on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting http server", zap.String("addr", addr))

	return http.ListenAndServe(addr, s.Router())
}
