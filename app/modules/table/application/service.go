package tableservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/card-table-club/tally-bot/app/eventbus"
	"github.com/card-table-club/tally-bot/app/events"
	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

// TableService implements Service on top of the table repository. It reaches
// into the round repository for the zero-score backfill that keeps mid-game
// joins consistent with the aggregation core's expectations.
type TableService struct {
	tables   tabledb.Repository
	players  playerdb.Repository
	rounds   rounddb.Repository
	eventBus eventbus.EventBus
	logger   *slog.Logger
}

var _ Service = (*TableService)(nil)

// NewTableService creates a new TableService.
func NewTableService(
	tables tabledb.Repository,
	players playerdb.Repository,
	rounds rounddb.Repository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
) *TableService {
	return &TableService{
		tables:   tables,
		players:  players,
		rounds:   rounds,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *TableService) CreateTable(ctx context.Context, name string) (*tabledb.Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: table name must not be empty", ErrValidation)
	}

	table, err := s.tables.Insert(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create table",
			slog.String("name", name),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Table created",
		slog.Int64("table_id", table.ID),
		slog.String("name", table.Name),
	)

	s.publishChanged(ctx, table.ID, "table_created")
	return table, nil
}

func (s *TableService) ListTables(ctx context.Context, filter tabledb.ListFilter) ([]tabledb.Table, error) {
	return s.tables.List(ctx, filter)
}

func (s *TableService) UpdateTable(ctx context.Context, id int64, patch tabledb.UpdatePatch) (*tabledb.Table, error) {
	table, err := s.tables.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Table updated",
		slog.Int64("table_id", table.ID),
		slog.Bool("is_open", table.IsOpen),
		slog.Bool("exclude_from_overall", table.ExcludeFromOverall),
	)

	s.publishChanged(ctx, table.ID, "table_updated")
	return table, nil
}

func (s *TableService) GetRoster(ctx context.Context, tableID int64) ([]tabledb.RosterEntry, error) {
	return s.tables.Roster(ctx, tableID)
}

func (s *TableService) AddPlayerToTable(ctx context.Context, tableID, playerID int64) error {
	if _, err := s.tables.GetByID(ctx, tableID); err != nil {
		return err
	}
	if _, err := s.players.GetByID(ctx, playerID); err != nil {
		return err
	}

	if err := s.tables.AddPlayer(ctx, tableID, playerID); err != nil {
		return err
	}

	// A player joining mid-game gets an explicit zero for every round already
	// played, so the aggregator sees a contribution, not missing data.
	backfilled, err := s.rounds.BackfillZeroScores(ctx, tableID, playerID)
	if err != nil {
		return fmt.Errorf("failed to backfill zero scores for player %d on table %d: %w", playerID, tableID, err)
	}
	if backfilled > 0 {
		s.logger.InfoContext(ctx, "Backfilled zero scores for late join",
			slog.Int64("table_id", tableID),
			slog.Int64("player_id", playerID),
			slog.Int("rounds", backfilled),
		)
	}

	s.publishChanged(ctx, tableID, "roster_changed")
	return nil
}

func (s *TableService) publishChanged(ctx context.Context, tableID int64, reason string) {
	if s.eventBus == nil {
		return
	}
	payload, err := json.Marshal(events.TableChangedPayload{
		TableID:    tableID,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to marshal table.changed payload", slog.Any("error", err))
		return
	}
	if err := s.eventBus.Publish(ctx, events.TableChangedTopic, message.NewMessage("", payload)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish table.changed", slog.Any("error", err))
	}
}
