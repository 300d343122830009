package standingsservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/card-table-club/tally-bot/app/eventbus"
	"github.com/card-table-club/tally-bot/app/events"
	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
	"github.com/card-table-club/tally-bot/config"
)

// StandingsService implements the aggregation core over the player, table,
// round, and snapshot repositories.
type StandingsService struct {
	players   playerdb.Repository
	tables    tabledb.Repository
	rounds    rounddb.Repository
	snapshots standingsdb.Repository
	eventBus  eventbus.EventBus
	logger    *slog.Logger
	metrics   *Metrics
	cfg       config.StandingsConfig
}

var _ Service = (*StandingsService)(nil)

// NewStandingsService creates a new StandingsService.
func NewStandingsService(
	players playerdb.Repository,
	tables tabledb.Repository,
	rounds rounddb.Repository,
	snapshots standingsdb.Repository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics *Metrics,
	cfg config.StandingsConfig,
) *StandingsService {
	return &StandingsService{
		players:   players,
		tables:    tables,
		rounds:    rounds,
		snapshots: snapshots,
		eventBus:  eventBus,
		logger:    logger,
		metrics:   metrics,
		cfg:       cfg,
	}
}

// DefaultOptions builds the configured default window ending now and resolves
// the configured manual adjustments into it.
func (s *StandingsService) DefaultOptions(ctx context.Context) (Options, error) {
	now := time.Now().UTC()
	return s.WindowOptions(ctx, now.AddDate(0, 0, -s.cfg.DefaultWindowDays), now, false)
}

// WindowOptions resolves the configured manual adjustments against the given
// window. Adjustments are scoped: callers must resolve against the window
// they actually compute over, never a default one.
func (s *StandingsService) WindowOptions(ctx context.Context, from, to time.Time, includeOpen bool) (Options, error) {
	offsets, exclude, err := s.resolveAdjustments(ctx, from, to)
	if err != nil {
		return Options{}, err
	}
	return Options{
		From:        from,
		To:          to,
		IncludeOpen: includeOpen,
		Offsets:     offsets,
		Exclude:     exclude,
	}, nil
}

// RefreshSnapshot recomputes the default-window leaderboard, stores it as the
// newest snapshot, and publishes standings.updated.
func (s *StandingsService) RefreshSnapshot(ctx context.Context) (*standingsdb.Snapshot, error) {
	opts, err := s.DefaultOptions(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := s.Leaderboard(ctx, opts)
	if err != nil {
		return nil, err
	}

	snapshot := &standingsdb.Snapshot{
		ID:          uuid.New(),
		WindowStart: opts.From,
		WindowEnd:   opts.To,
		ComputedAt:  time.Now().UTC(),
		Entries:     entries,
	}
	if err := s.snapshots.Insert(ctx, snapshot); err != nil {
		return nil, err
	}

	s.metrics.SnapshotRefreshes.Inc()
	s.logger.InfoContext(ctx, "Standings snapshot refreshed",
		slog.String("snapshot_id", snapshot.ID.String()),
		slog.Int("entries", len(entries)),
	)

	s.publishUpdated(ctx, snapshot)
	return snapshot, nil
}

func (s *StandingsService) LatestSnapshot(ctx context.Context) (*standingsdb.Snapshot, error) {
	return s.snapshots.Latest(ctx)
}

func (s *StandingsService) publishUpdated(ctx context.Context, snapshot *standingsdb.Snapshot) {
	if s.eventBus == nil {
		return
	}
	payload, err := json.Marshal(events.StandingsUpdatedPayload{
		SnapshotID: snapshot.ID.String(),
		ComputedAt: snapshot.ComputedAt,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to marshal standings.updated payload", slog.Any("error", err))
		return
	}
	if err := s.eventBus.Publish(ctx, events.StandingsUpdatedTopic, message.NewMessage("", payload)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish standings.updated", slog.Any("error", err))
	}
}
