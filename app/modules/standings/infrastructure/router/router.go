package standingsrouter

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/card-table-club/tally-bot/app/eventbus"
	"github.com/card-table-club/tally-bot/app/events"
	standingshandlers "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/handlers"
)

const (
	TestEnvironmentFlag  = "APP_ENV"
	TestEnvironmentValue = "test"
)

// StandingsRouter subscribes the snapshot-refresh handlers to the change
// topics.
type StandingsRouter struct {
	logger         *slog.Logger
	Router         *message.Router
	subscriber     eventbus.EventBus
	metricsBuilder *metrics.PrometheusMetricsBuilder
}

// NewStandingsRouter creates a new instance of the router. Prometheus router
// metrics are skipped under APP_ENV=test so parallel test runs do not fight
// over collector registration.
func NewStandingsRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	prometheusRegistry *prometheus.Registry,
) *StandingsRouter {
	inTestEnv := os.Getenv(TestEnvironmentFlag) == TestEnvironmentValue

	var metricsBuilder *metrics.PrometheusMetricsBuilder
	if prometheusRegistry != nil && !inTestEnv {
		builder := metrics.NewPrometheusMetricsBuilder(prometheusRegistry, "", "")
		metricsBuilder = &builder
	}

	return &StandingsRouter{
		logger:         logger,
		Router:         router,
		subscriber:     subscriber,
		metricsBuilder: metricsBuilder,
	}
}

// Configure sets up the middlewares and registers the change-event handlers.
func (r *StandingsRouter) Configure(ctx context.Context, handlers standingshandlers.Handlers) error {
	if r.metricsBuilder != nil {
		r.logger.InfoContext(ctx, "Adding Prometheus router metrics middleware for standings")
		r.metricsBuilder.AddPrometheusRouterMetrics(r.Router)
	}

	retry := middleware.Retry{
		MaxRetries:      3,
		InitialInterval: 500 * time.Millisecond,
		Logger:          watermill.NewSlogLogger(r.logger),
	}

	r.Router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		retry.Middleware,
	)

	r.registerHandlers(handlers)
	return nil
}

func (r *StandingsRouter) registerHandlers(handlers standingshandlers.Handlers) {
	subscriptions := []struct {
		name    string
		topic   string
		handler message.NoPublishHandlerFunc
	}{
		{"standings.on_table_changed", events.TableChangedTopic, handlers.HandleTableChanged},
		{"standings.on_score_changed", events.ScoreChangedTopic, handlers.HandleScoreChanged},
		{"standings.on_player_changed", events.PlayerChangedTopic, handlers.HandlePlayerChanged},
	}

	for _, sub := range subscriptions {
		r.Router.AddNoPublisherHandler(sub.name, sub.topic, r.subscriber, sub.handler)
	}
}

// Close stops the underlying router.
func (r *StandingsRouter) Close() error {
	return r.Router.Close()
}
