package standingsservice

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	standingsdomain "github.com/card-table-club/tally-bot/app/modules/standings/domain"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

// Leaderboard computes the overall standings for the window.
//
// Every registered player starts at zero so newcomers show up with 0/0. A
// repository failure anywhere aborts the whole computation; partial results
// are never returned. Tables flagged exclude_from_overall are skipped
// regardless of the window.
func (s *StandingsService) Leaderboard(ctx context.Context, opts Options) ([]standingsdomain.LeaderboardEntry, error) {
	s.metrics.AggregationRuns.Inc()

	players, err := s.players.List(ctx)
	if err != nil {
		s.metrics.AggregationFailures.Inc()
		return nil, fmt.Errorf("leaderboard aborted: %w", err)
	}

	totals := make(map[int64]int, len(players))
	games := make(map[int64]int, len(players))

	tables, err := s.eligibleTables(ctx, opts, opts.IncludeOpen)
	if err != nil {
		s.metrics.AggregationFailures.Inc()
		return nil, fmt.Errorf("leaderboard aborted: %w", err)
	}

	for _, table := range tables {
		awards, err := s.aggregateTable(ctx, table)
		if err != nil {
			s.metrics.AggregationFailures.Inc()
			return nil, fmt.Errorf("leaderboard aborted: %w", err)
		}
		for _, award := range awards {
			totals[award.PlayerID] += award.RankPoints
			games[award.PlayerID]++
		}
	}

	for playerID, offset := range opts.Offsets {
		totals[playerID] += offset
	}

	entries := make([]standingsdomain.LeaderboardEntry, 0, len(players))
	for _, player := range players {
		if opts.Exclude[player.ID] {
			continue
		}
		entries = append(entries, standingsdomain.LeaderboardEntry{
			PlayerID:    player.ID,
			Name:        player.Name,
			TotalScore:  totals[player.ID],
			GamesPlayed: games[player.ID],
		})
	}

	// Ties keep the repository's player order; no cleverer rule exists.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore > entries[j].TotalScore
	})
	return entries, nil
}

// eligibleTables selects the tables a computation may count: never excluded
// ones, only those inside the window, and open ones only when asked.
func (s *StandingsService) eligibleTables(ctx context.Context, opts Options, includeOpen bool) ([]tabledb.Table, error) {
	excluded := false
	filter := tabledb.ListFilter{
		ExcludeFromOverall: &excluded,
		CreatedAfter:       &opts.From,
		CreatedBefore:      &opts.To,
	}
	if !includeOpen {
		closed := false
		filter.IsOpen = &closed
	}
	return s.tables.List(ctx, filter)
}

// aggregateTable runs the pure aggregator over one table's recorded scores.
// A table with no rounds (or no scores yet) contributes nothing.
func (s *StandingsService) aggregateTable(ctx context.Context, table tabledb.Table) ([]standingsdomain.Award, error) {
	rounds, err := s.rounds.ListByTable(ctx, table.ID)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}

	roundIDs := make([]int64, 0, len(rounds))
	for _, round := range rounds {
		roundIDs = append(roundIDs, round.ID)
	}

	scores, err := s.rounds.ListScores(ctx, roundIDs)
	if err != nil {
		return nil, err
	}
	if len(scores) == 0 {
		return nil, nil
	}

	awards := standingsdomain.AggregateTable(scoreEntries(scores))
	if standingsdomain.RankPoints(len(awards)) == nil {
		s.metrics.UnknownRosterSizes.Inc()
		s.logger.WarnContext(ctx, "No rank-point row for participant count, awarding zero points",
			slog.Int64("table_id", table.ID),
			slog.Int("participants", len(awards)),
		)
	}
	return awards, nil
}

func scoreEntries(scores []rounddb.RoundScore) []standingsdomain.ScoreEntry {
	entries := make([]standingsdomain.ScoreEntry, 0, len(scores))
	for _, s := range scores {
		entries = append(entries, standingsdomain.ScoreEntry{
			PlayerID: s.PlayerID,
			RawScore: s.RawScore,
		})
	}
	return entries
}
