package standingsdomain

import "sort"

// ScoreEntry is one player's raw score in one round, in repository return
// order. The aggregator groups by player preserving first-seen order, which
// is what makes the tie-break below deterministic.
type ScoreEntry struct {
	PlayerID int64
	RawScore int
}

// Award is the outcome of one table for one player.
type Award struct {
	PlayerID   int64
	TotalRaw   int
	RankPoints int
}

// AggregateTable converts one table's round scores into ranked point awards.
//
// Players are summed across rounds, stable-sorted by raw total descending
// (ties keep first-seen order), and zipped positionally with the rank-point
// row for the participant count. A participant count with no defined row
// yields zero rank points for everyone; the awards are still returned so the
// table counts toward games played.
func AggregateTable(scores []ScoreEntry) []Award {
	if len(scores) == 0 {
		return nil
	}

	totals := make(map[int64]int)
	order := make([]int64, 0)
	for _, s := range scores {
		if _, seen := totals[s.PlayerID]; !seen {
			order = append(order, s.PlayerID)
		}
		totals[s.PlayerID] += s.RawScore
	}

	awards := make([]Award, 0, len(order))
	for _, id := range order {
		awards = append(awards, Award{PlayerID: id, TotalRaw: totals[id]})
	}

	sort.SliceStable(awards, func(i, j int) bool {
		return awards[i].TotalRaw > awards[j].TotalRaw
	})

	points := RankPoints(len(awards))
	for i := range awards {
		if points != nil {
			awards[i].RankPoints = points[i]
		}
	}
	return awards
}
