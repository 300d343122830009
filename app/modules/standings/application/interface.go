package standingsservice

import (
	"context"
	"time"

	standingsdomain "github.com/card-table-club/tally-bot/app/modules/standings/domain"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
)

// Options configures one leaderboard or timeline computation.
//
// Offsets and Exclude carry the manual per-window corrections. They are
// caller-supplied data: the aggregation itself knows nothing about which
// historical window needed a retroactive fix.
type Options struct {
	From        time.Time
	To          time.Time
	IncludeOpen bool
	Offsets     map[int64]int
	Exclude     map[int64]bool
}

// Service exposes the aggregation core.
type Service interface {
	// Leaderboard computes the overall standings for the window.
	Leaderboard(ctx context.Context, opts Options) ([]standingsdomain.LeaderboardEntry, error)

	// Timeline computes the cumulative running-total series for the window,
	// restricted to closed, non-excluded tables.
	Timeline(ctx context.Context, opts Options) ([]standingsdomain.TimelinePoint, error)

	// TimelineChartPNG renders the timeline as a multi-series PNG line chart.
	TimelineChartPNG(ctx context.Context, opts Options) ([]byte, error)

	// ExportLeaderboardXLSX renders the leaderboard as a spreadsheet.
	ExportLeaderboardXLSX(ctx context.Context, opts Options) ([]byte, error)

	// DefaultOptions returns the configured default window ending now, with
	// the configured manual adjustments resolved into it.
	DefaultOptions(ctx context.Context) (Options, error)

	// WindowOptions resolves the configured manual adjustments against the
	// given window.
	WindowOptions(ctx context.Context, from, to time.Time, includeOpen bool) (Options, error)

	// RefreshSnapshot recomputes the default-window leaderboard, stores it,
	// and announces the update.
	RefreshSnapshot(ctx context.Context) (*standingsdb.Snapshot, error)

	// LatestSnapshot returns the most recently stored snapshot.
	LatestSnapshot(ctx context.Context) (*standingsdb.Snapshot, error)
}
