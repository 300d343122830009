package rounddb

import (
	"time"

	"github.com/uptrace/bun"
)

// Round is one hand within a table. Round numbers are assigned sequentially
// from 1 and never reused or reordered.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID          int64     `bun:"id,pk,autoincrement"`
	TableID     int64     `bun:"table_id,notnull"`
	RoundNumber int       `bun:"round_number,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// RoundScore is the signed raw score of one player in one round.
// (round_id, player_id) is the natural key; later writes overwrite.
type RoundScore struct {
	bun.BaseModel `bun:"table:round_scores,alias:rs"`

	RoundID   int64     `bun:"round_id,notnull"`
	PlayerID  int64     `bun:"player_id,notnull"`
	RawScore  int       `bun:"raw_score,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
