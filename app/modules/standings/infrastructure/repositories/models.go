package standingsdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	standingsdomain "github.com/card-table-club/tally-bot/app/modules/standings/domain"
)

// Snapshot caches one computed leaderboard so reads do not pay for a full
// recompute and consumers can see when the standings last moved.
type Snapshot struct {
	bun.BaseModel `bun:"table:standings_snapshots,alias:ss"`

	ID          uuid.UUID                          `bun:"id,pk,type:uuid"`
	WindowStart time.Time                          `bun:"window_start,notnull"`
	WindowEnd   time.Time                          `bun:"window_end,notnull"`
	ComputedAt  time.Time                          `bun:"computed_at,nullzero,notnull,default:current_timestamp"`
	Entries     []standingsdomain.LeaderboardEntry `bun:"entries,type:jsonb"`
}
