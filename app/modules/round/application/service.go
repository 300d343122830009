package roundservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/card-table-club/tally-bot/app/eventbus"
	"github.com/card-table-club/tally-bot/app/events"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
)

// RoundService implements Service on top of the round repository.
type RoundService struct {
	repo     rounddb.Repository
	eventBus eventbus.EventBus
	logger   *slog.Logger
}

var _ Service = (*RoundService)(nil)

// NewRoundService creates a new RoundService.
func NewRoundService(repo rounddb.Repository, eventBus eventbus.EventBus, logger *slog.Logger) *RoundService {
	return &RoundService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
	}
}

func (s *RoundService) CreateRound(ctx context.Context, tableID int64) (*rounddb.Round, error) {
	round, err := s.repo.Insert(ctx, tableID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create round",
			slog.Int64("table_id", tableID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Round created",
		slog.Int64("table_id", tableID),
		slog.Int64("round_id", round.ID),
		slog.Int("round_number", round.RoundNumber),
	)

	s.publishTableChanged(ctx, tableID)
	return round, nil
}

func (s *RoundService) ListRounds(ctx context.Context, tableID int64) ([]rounddb.Round, error) {
	return s.repo.ListByTable(ctx, tableID)
}

func (s *RoundService) ListScores(ctx context.Context, roundIDs []int64) ([]rounddb.RoundScore, error) {
	return s.repo.ListScores(ctx, roundIDs)
}

func (s *RoundService) UpsertScore(ctx context.Context, roundID, playerID int64, rawScore int) error {
	if _, err := s.repo.GetByID(ctx, roundID); err != nil {
		return err
	}

	if err := s.repo.UpsertScore(ctx, roundID, playerID, rawScore); err != nil {
		s.logger.ErrorContext(ctx, "Failed to upsert score",
			slog.Int64("round_id", roundID),
			slog.Int64("player_id", playerID),
			slog.Any("error", err),
		)
		return err
	}

	// Flag zero-sum violations at write time for visibility. The write stands
	// either way; the convention is enforced socially, not transactionally.
	if scores, err := s.repo.ScoresForRound(ctx, roundID); err == nil {
		if sum, ok := CheckScores(scores); !ok {
			s.logger.WarnContext(ctx, "Round scores do not sum to zero",
				slog.Int64("round_id", roundID),
				slog.Int("sum", sum),
			)
		}
	}

	s.publishScoreChanged(ctx, roundID, playerID)
	return nil
}

func (s *RoundService) ValidateRound(ctx context.Context, roundID int64) (RoundCheck, error) {
	if _, err := s.repo.GetByID(ctx, roundID); err != nil {
		return RoundCheck{}, err
	}

	scores, err := s.repo.ScoresForRound(ctx, roundID)
	if err != nil {
		return RoundCheck{}, err
	}

	sum, ok := CheckScores(scores)
	return RoundCheck{RoundID: roundID, Sum: sum, Valid: ok}, nil
}

func (s *RoundService) publishTableChanged(ctx context.Context, tableID int64) {
	if s.eventBus == nil {
		return
	}
	payload, err := json.Marshal(events.TableChangedPayload{
		TableID:    tableID,
		Reason:     "round_created",
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

func (s *RoundService) publishScoreChanged(ctx context.Context, roundID, playerID int64) {
	if s.eventBus == nil {
		return
	}
	payload, err := json.Marshal(events.ScoreChangedPayload{
		RoundID:    roundID,
		PlayerID:   playerID,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to marshal score.changed payload", slog.Any("error", err))
		return
	}
	if err := s.eventBus.Publish(ctx, events.ScoreChangedTopic, message.NewMessage("", payload)); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish score.changed", slog.Any("error", err))
	}
}
