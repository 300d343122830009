package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/card-table-club/tally-bot/app/handlers"
	"github.com/card-table-club/tally-bot/config"
)

// NewHTTPRouter builds the API surface: registry, tables, rounds, and the
// standings read models, behind a per-IP rate limit.
func NewHTTPRouter(
	cfg config.HTTPConfig,
	playerHandler *handlers.PlayerHandler,
	tableHandler *handlers.TableHandler,
	roundHandler *handlers.RoundHandler,
	standingsHandler *handlers.StandingsHandler,
	registry *prometheus.Registry,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	limiter := handlers.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	r.Use(handlers.RateLimitMiddleware(limiter))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/players", playerHandler.Routes())
		r.Mount("/tables", tableHandler.Routes(roundHandler.TableRoutes()))
		r.Mount("/rounds", roundHandler.Routes())
		r.Mount("/standings", standingsHandler.Routes())
	})

	return r
}
