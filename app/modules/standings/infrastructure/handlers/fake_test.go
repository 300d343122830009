package standingshandlers

import (
	"context"
	"time"

	standingsservice "github.com/card-table-club/tally-bot/app/modules/standings/application"
	standingsdomain "github.com/card-table-club/tally-bot/app/modules/standings/domain"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
)

type FakeStandingsService struct {
	LeaderboardFunc           func(ctx context.Context, opts standingsservice.Options) ([]standingsdomain.LeaderboardEntry, error)
	TimelineFunc              func(ctx context.Context, opts standingsservice.Options) ([]standingsdomain.TimelinePoint, error)
	TimelineChartPNGFunc      func(ctx context.Context, opts standingsservice.Options) ([]byte, error)
	ExportLeaderboardXLSXFunc func(ctx context.Context, opts standingsservice.Options) ([]byte, error)
	DefaultOptionsFunc        func(ctx context.Context) (standingsservice.Options, error)
	WindowOptionsFunc         func(ctx context.Context, from, to time.Time, includeOpen bool) (standingsservice.Options, error)
	RefreshSnapshotFunc       func(ctx context.Context) (*standingsdb.Snapshot, error)
	LatestSnapshotFunc        func(ctx context.Context) (*standingsdb.Snapshot, error)

	Refreshes int
}

func (f *FakeStandingsService) Leaderboard(ctx context.Context, opts standingsservice.Options) ([]standingsdomain.LeaderboardEntry, error) {
	if f.LeaderboardFunc != nil {
		return f.LeaderboardFunc(ctx, opts)
	}
	return nil, nil
}

func (f *FakeStandingsService) Timeline(ctx context.Context, opts standingsservice.Options) ([]standingsdomain.TimelinePoint, error) {
	if f.TimelineFunc != nil {
		return f.TimelineFunc(ctx, opts)
	}
	return nil, nil
}

func (f *FakeStandingsService) TimelineChartPNG(ctx context.Context, opts standingsservice.Options) ([]byte, error) {
	if f.TimelineChartPNGFunc != nil {
		return f.TimelineChartPNGFunc(ctx, opts)
	}
	return nil, nil
}

func (f *FakeStandingsService) ExportLeaderboardXLSX(ctx context.Context, opts standingsservice.Options) ([]byte, error) {
	if f.ExportLeaderboardXLSXFunc != nil {
		return f.ExportLeaderboardXLSXFunc(ctx, opts)
	}
	return nil, nil
}

func (f *FakeStandingsService) DefaultOptions(ctx context.Context) (standingsservice.Options, error) {
	if f.DefaultOptionsFunc != nil {
		return f.DefaultOptionsFunc(ctx)
	}
	return standingsservice.Options{}, nil
}

func (f *FakeStandingsService) WindowOptions(ctx context.Context, from, to time.Time, includeOpen bool) (standingsservice.Options, error) {
	if f.WindowOptionsFunc != nil {
		return f.WindowOptionsFunc(ctx, from, to, includeOpen)
	}
	return standingsservice.Options{From: from, To: to, IncludeOpen: includeOpen}, nil
}

func (f *FakeStandingsService) RefreshSnapshot(ctx context.Context) (*standingsdb.Snapshot, error) {
	f.Refreshes++
	if f.RefreshSnapshotFunc != nil {
		return f.RefreshSnapshotFunc(ctx)
	}
	return &standingsdb.Snapshot{}, nil
}

func (f *FakeStandingsService) LatestSnapshot(ctx context.Context) (*standingsdb.Snapshot, error) {
	if f.LatestSnapshotFunc != nil {
		return f.LatestSnapshotFunc(ctx)
	}
	return nil, standingsdb.ErrNoSnapshot
}
