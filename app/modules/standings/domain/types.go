package standingsdomain

import "time"

// LeaderboardEntry is one row of the overall standings.
type LeaderboardEntry struct {
	PlayerID    int64  `json:"player_id"`
	Name        string `json:"name"`
	TotalScore  int    `json:"total_score"`
	GamesPlayed int    `json:"games_played"`
}

// TimelinePoint is a full snapshot of every player's cumulative total at the
// moment one table finished contributing. Full snapshots (not deltas) make
// multi-series charts trivial to draw.
type TimelinePoint struct {
	At      time.Time     `json:"at"`
	TableID int64         `json:"table_id"`
	Totals  map[int64]int `json:"totals"`
}
