package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	authapi "github.com/umstad/quizgen/internal/api/auth"
	"github.com/umstad/quizgen/internal/api/docs"
	informationapi "github.com/umstad/quizgen/internal/api/information"
	"github.com/umstad/quizgen/internal/api/middleware"
	questionapi "github.com/umstad/quizgen/internal/api/question"
	"github.com/umstad/quizgen/internal/entity"
	"github.com/umstad/quizgen/internal/pkg/response"
	"go.uber.org/zap"
)

const defaultRequestTimeout = 60 * time.Second

// Handlers groups the resource handlers mounted under /api.
type Handlers struct {
	Auth        *authapi.Handler
	Information *informationapi.Handler
	Question    *questionapi.Handler
}

// RouterConfig holds the router settings taken from the application config.
type RouterConfig struct {
	AuthCookieName  string
	GenerateTimeout time.Duration
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h Handlers, cfg RouterConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(chimiddleware.RequestID)   // Add request ID
	r.Use(middleware.Logger(logger)) // Log requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	r.Route("/api", func(r chi.Router) {
		r.With(chimiddleware.Timeout(defaultRequestTimeout)).Group(func(r chi.Router) {
			authapi.RegisterRoutes(r, h.Auth)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.AuthCookieName))

			r.With(chimiddleware.Timeout(defaultRequestTimeout)).Get("/topics", listTopics)

			r.Group(func(r chi.Router) {
				r.Use(chimiddleware.Timeout(defaultRequestTimeout))
				informationapi.RegisterRoutes(r, h.Information)
			})

			questionapi.RegisterRoutes(r, h.Question, defaultRequestTimeout, cfg.GenerateTimeout)
		})
	})

	return r
}

// listTopics handles GET /api/topics
func listTopics(w http.ResponseWriter, r *http.Request) {
	response.Success(w, entity.HistoryTopics)
}
