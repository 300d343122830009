package events

import "time"

// Topics for change notifications. Mutating writes publish one of these and
// the standings module treats them as cache invalidation signals: it re-pulls
// and recomputes rather than maintaining incremental state.
const (
	TableChangedTopic     = "table.changed"
	ScoreChangedTopic     = "score.changed"
	PlayerChangedTopic    = "player.changed"
	StandingsUpdatedTopic = "standings.updated"
)

// TableChangedPayload covers table lifecycle, roster, and round mutations,
// scoped to a single table.
type TableChangedPayload struct {
	TableID    int64     `json:"table_id"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ScoreChangedPayload is unscoped; consumers filter by round membership.
type ScoreChangedPayload struct {
	RoundID    int64     `json:"round_id"`
	PlayerID   int64     `json:"player_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PlayerChangedPayload signals a change to the player registry.
type PlayerChangedPayload struct {
	PlayerID   int64     `json:"player_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StandingsUpdatedPayload announces a fresh leaderboard snapshot.
type StandingsUpdatedPayload struct {
	SnapshotID string    `json:"snapshot_id"`
	ComputedAt time.Time `json:"computed_at"`
}
