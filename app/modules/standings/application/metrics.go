package standingsservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts aggregation work for the /metrics endpoint.
type Metrics struct {
	AggregationRuns     prometheus.Counter
	AggregationFailures prometheus.Counter
	SnapshotRefreshes   prometheus.Counter
	UnknownRosterSizes  prometheus.Counter
}

// NewMetrics registers the standings counters with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AggregationRuns: factory.NewCounter(prometheus.CounterOpts{
			Name: "standings_aggregation_runs_total",
			Help: "Number of leaderboard/timeline computations started.",
		}),
		AggregationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "standings_aggregation_failures_total",
			Help: "Number of computations aborted by repository errors.",
		}),
		SnapshotRefreshes: factory.NewCounter(prometheus.CounterOpts{
			Name: "standings_snapshot_refreshes_total",
			Help: "Number of stored leaderboard snapshots.",
		}),
		UnknownRosterSizes: factory.NewCounter(prometheus.CounterOpts{
			Name: "standings_unknown_roster_sizes_total",
			Help: "Number of tables whose participant count has no rank-point row.",
		}),
	}
}

// NewNoopMetrics returns metrics backed by an unexported registry, for tests.
func NewNoopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
