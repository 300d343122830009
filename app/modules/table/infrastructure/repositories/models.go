package tabledb

import (
	"time"

	"github.com/uptrace/bun"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
)

// Table is one played game session. IsOpen and ExcludeFromOverall are the
// only mutable fields; tables are never deleted.
type Table struct {
	bun.BaseModel `bun:"table:tables,alias:t"`

	ID                 int64     `bun:"id,pk,autoincrement"`
	Name               string    `bun:"name,notnull"`
	IsOpen             bool      `bun:"is_open,notnull,default:true"`
	ExcludeFromOverall bool      `bun:"exclude_from_overall,notnull,default:false"`
	CreatedAt          time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// TablePlayer links a player to a table's roster. Rosters only grow.
type TablePlayer struct {
	bun.BaseModel `bun:"table:table_players,alias:tp"`

	TableID   int64     `bun:"table_id,notnull"`
	PlayerID  int64     `bun:"player_id,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// RosterEntry pairs a roster link with the resolved player.
type RosterEntry struct {
	PlayerID int64
	Player   playerdb.Player
}
