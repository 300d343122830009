package rounddb

import "context"

// Repository defines the contract for round and score persistence.
type Repository interface {
	// ListByTable retrieves a table's rounds ordered by round number.
	ListByTable(ctx context.Context, tableID int64) ([]Round, error)

	// GetByID retrieves a round by id.
	GetByID(ctx context.Context, id int64) (*Round, error)

	// Insert creates the table's next round, assigning the next sequential
	// round number.
	Insert(ctx context.Context, tableID int64) (*Round, error)

	// ListScores retrieves all scores for the given rounds, ordered by round
	// then player id.
	ListScores(ctx context.Context, roundIDs []int64) ([]RoundScore, error)

	// ScoresForRound retrieves one round's scores ordered by player id.
	ScoresForRound(ctx context.Context, roundID int64) ([]RoundScore, error)

	// UpsertScore writes a player's raw score for a round. Keyed on
	// (round_id, player_id); later writes overwrite.
	UpsertScore(ctx context.Context, roundID, playerID int64, rawScore int) error

	// BackfillZeroScores inserts a zero raw score for the player into every
	// existing round of the table, skipping rounds that already have one.
	// Returns the number of rows inserted.
	BackfillZeroScores(ctx context.Context, tableID, playerID int64) (int, error)
}
