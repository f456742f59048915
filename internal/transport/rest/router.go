package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mythosengine/backend/internal/config"
	"github.com/mythosengine/backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

type metricsExporter interface {
	Handler() http.Handler
	ObserveRequest(method, route string, status int, start time.Time)
}

// RouterDeps carries everything the HTTP surface is assembled from. Metrics
// and RateLimit are optional.
type RouterDeps struct {
	Logger    *slog.Logger
	APIPrefix string
	CORS      config.CORSConfig

	Tokens      tokenValidator
	Metrics     metricsExporter
	MetricsPath string
	RateLimit   middleware.Middleware

	Health      *HealthHandler
	Users       *UserHandler
	Projects    *ProjectHandler
	Articles    *ArticleHandler
	Persons     *PersonHandler
	Settlements *SettlementHandler
	Images      *ImageHandler
}

// NewRouter builds the HTTP handler. Probes and the metrics endpoint sit
// outside the rate limiter and the API prefix.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.CORS(d.CORS))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/health", d.Health.Health)
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/version", d.Health.Version)
	if d.Metrics != nil {
		r.Method(http.MethodGet, d.MetricsPath, d.Metrics.Handler())
	}

	r.Route(d.APIPrefix, func(api chi.Router) {
		if d.RateLimit != nil {
			api.Use(d.RateLimit)
		}
		api.Use(middleware.Auth(d.Tokens))

		api.Route("/users", d.Users.Routes)
		api.Route("/projects", d.Projects.Routes)
		api.Route("/articles", d.Articles.Routes)
		api.Route("/persons", d.Persons.Routes)
		api.Route("/settlements", d.Settlements.Routes)
		api.Route("/images", d.Images.Routes)
	})

	return r
}
