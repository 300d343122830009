package roundservice

import (
	"context"

	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
)

// RoundCheck is the result of validating one round against the zero-sum
// scoring convention. A failed check is a display-level warning only; it
// never blocks persistence.
type RoundCheck struct {
	RoundID int64 `json:"round_id"`
	Sum     int   `json:"sum"`
	Valid   bool  `json:"valid"`
}

// Service exposes round and score operations.
type Service interface {
	// CreateRound appends the next round to a table.
	CreateRound(ctx context.Context, tableID int64) (*rounddb.Round, error)

	// ListRounds returns a table's rounds ordered by round number.
	ListRounds(ctx context.Context, tableID int64) ([]rounddb.Round, error)

	// ListScores returns all scores for the given rounds.
	ListScores(ctx context.Context, roundIDs []int64) ([]rounddb.RoundScore, error)

	// UpsertScore records a player's raw score for a round, overwriting any
	// previous value for the same (round, player) pair.
	UpsertScore(ctx context.Context, roundID, playerID int64, rawScore int) error

	// ValidateRound checks the round's scores against the zero-sum convention.
	ValidateRound(ctx context.Context, roundID int64) (RoundCheck, error)
}
