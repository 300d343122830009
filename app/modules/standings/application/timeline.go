package standingsservice

import (
	"context"
	"fmt"

	standingsdomain "github.com/card-table-club/tally-bot/app/modules/standings/domain"
)

// Timeline computes the cumulative running totals per player over the
// window, one full snapshot per contributing table. Only closed,
// non-excluded tables count; tables without rounds emit no point. The series
// is recomputed from scratch on every call.
func (s *StandingsService) Timeline(ctx context.Context, opts Options) ([]standingsdomain.TimelinePoint, error) {
	s.metrics.AggregationRuns.Inc()

	players, err := s.players.List(ctx)
	if err != nil {
		s.metrics.AggregationFailures.Inc()
		return nil, fmt.Errorf("timeline aborted: %w", err)
	}

	// The repository returns tables ordered by created_at ascending, which is
	// exactly the order the running totals accumulate in.
	tables, err := s.eligibleTables(ctx, opts, false)
	if err != nil {
		s.metrics.AggregationFailures.Inc()
		return nil, fmt.Errorf("timeline aborted: %w", err)
	}

	running := make(map[int64]int, len(players))
	points := make([]standingsdomain.TimelinePoint, 0, len(tables))

	for _, table := range tables {
		awards, err := s.aggregateTable(ctx, table)
		if err != nil {
			s.metrics.AggregationFailures.Inc()
			return nil, fmt.Errorf("timeline aborted: %w", err)
		}
		if len(awards) == 0 {
			continue
		}

		for _, award := range awards {
			running[award.PlayerID] += award.RankPoints
		}

		totals := make(map[int64]int, len(players))
		for _, player := range players {
			totals[player.ID] = running[player.ID]
		}
		points = append(points, standingsdomain.TimelinePoint{
			At:      table.CreatedAt,
			TableID: table.ID,
			Totals:  totals,
		})
	}

	return points, nil
}
