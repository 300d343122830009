package rounddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// RoundDBImpl handles database operations for rounds and round scores.
type RoundDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*RoundDBImpl)(nil)

func (db *RoundDBImpl) ListByTable(ctx context.Context, tableID int64) ([]Round, error) {
	var rounds []Round
	err := db.DB.NewSelect().
		Model(&rounds).
		Where("table_id = ?", tableID).
		Order("round_number ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds for table %d: %w", tableID, err)
	}
	return rounds, nil
}

func (db *RoundDBImpl) GetByID(ctx context.Context, id int64) (*Round, error) {
	round := new(Round)
	err := db.DB.NewSelect().
		Model(round).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get round %d: %w", id, err)
	}
	return round, nil
}

func (db *RoundDBImpl) Insert(ctx context.Context, tableID int64) (*Round, error) {
	round := new(Round)

	// Assign the next sequential number inside a transaction so concurrent
	// inserts on the same table cannot produce duplicates.
	err := db.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var next int
		err := tx.NewSelect().
			Model((*Round)(nil)).
			ColumnExpr("COALESCE(MAX(round_number), 0) + 1").
			Where("table_id = ?", tableID).
			Scan(ctx, &next)
		if err != nil {
			return fmt.Errorf("failed to determine next round number: %w", err)
		}

		round.TableID = tableID
		round.RoundNumber = next
		if _, err := tx.NewInsert().Model(round).Returning("*").Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert round: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return round, nil
}

func (db *RoundDBImpl) ListScores(ctx context.Context, roundIDs []int64) ([]RoundScore, error) {
	if len(roundIDs) == 0 {
		return nil, nil
	}

	var scores []RoundScore
	err := db.DB.NewSelect().
		Model(&scores).
		Where("round_id IN (?)", bun.In(roundIDs)).
		Order("round_id ASC", "player_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list round scores: %w", err)
	}
	return scores, nil
}

func (db *RoundDBImpl) ScoresForRound(ctx context.Context, roundID int64) ([]RoundScore, error) {
	var scores []RoundScore
	err := db.DB.NewSelect().
		Model(&scores).
		Where("round_id = ?", roundID).
		Order("player_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for round %d: %w", roundID, err)
	}
	return scores, nil
}

func (db *RoundDBImpl) UpsertScore(ctx context.Context, roundID, playerID int64, rawScore int) error {
	score := &RoundScore{
		RoundID:  roundID,
		PlayerID: playerID,
		RawScore: rawScore,
	}
	_, err := db.DB.NewInsert().
		Model(score).
		On("CONFLICT (round_id, player_id) DO UPDATE").
		Set("raw_score = EXCLUDED.raw_score").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert score for round %d player %d: %w", roundID, playerID, err)
	}
	return nil
}

func (db *RoundDBImpl) BackfillZeroScores(ctx context.Context, tableID, playerID int64) (int, error) {
	res, err := db.DB.ExecContext(ctx, `
		INSERT INTO round_scores (round_id, player_id, raw_score)
		SELECT r.id, ?, 0
		FROM rounds AS r
		WHERE r.table_id = ?
		ON CONFLICT (round_id, player_id) DO NOTHING
	`, playerID, tableID)
	if err != nil {
		return 0, fmt.Errorf("failed to backfill zero scores: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count backfilled scores: %w", err)
	}
	return int(n), nil
}
