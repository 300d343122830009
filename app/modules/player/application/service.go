package playerservice

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
)

// PlayerService implements Service on top of the player repository.
type PlayerService struct {
	repo     playerdb.Repository
	eventBus eventbus.EventBus
	logger   *slog.Logger
}

var _ Service = (*PlayerService)(nil)

// NewPlayerService creates a new PlayerService.
func NewPlayerService(repo playerdb.Repository, eventBus eventbus.EventBus, logger *slog.Logger) *PlayerService {
	return &PlayerService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *PlayerService) CreatePlayer(ctx context.Context, name string) (*playerdb.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: player name must not be empty", ErrValidation)
	}

	player, err := s.repo.Insert(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create player",
			slog.String("name", name),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Player created",
		slog.Int64("player_id", player.ID),
		slog.String("name", player.Name),
	)

	s.publishChanged(ctx, player.ID)
	return player, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]playerdb.Player, error) {
	return s.repo.List(ctx)
}

// publishChanged emits a player.changed notification. Publish failures are
// logged, not propagated: the write already succeeded and consumers recompute
// from a fresh snapshot on the next trigger anyway.
func (s *PlayerService) publishChanged(ctx context.Context, playerID int64) {
	if s.eventBus == nil {
		return
	}
	payload, err := json.Marshal(events.PlayerChangedPayload{
		PlayerID:   playerID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to marshal player.changed payload", slog.Any("error", err))
		return
	}
	if err := s.eventBus.Publish(ctx, events.PlayerChangedTopic, message.NewMessage("", payload)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish player.changed", slog.Any("error", err))
	}
}
