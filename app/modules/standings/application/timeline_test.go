package standingsservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

func TestTimelineAccumulatesAcrossTables(t *testing.T) {
	w := &world{
		players: fourPlayers(),
		tables: []tabledb.Table{
			{ID: 100, CreatedAt: day(5)},
			{ID: 101, CreatedAt: day(12)},
		},
		rounds: map[int64][]rounddb.Round{
			100: {{ID: 1000, TableID: 100, RoundNumber: 1}},
			101: {{ID: 1001, TableID: 101, RoundNumber: 1}},
		},
		scores: map[int64][]rounddb.RoundScore{
			1000: {
				{RoundID: 1000, PlayerID: 1, RawScore: 6},
				{RoundID: 1000, PlayerID: 2, RawScore: -2},
				{RoundID: 1000, PlayerID: 3, RawScore: -2},
				{RoundID: 1000, PlayerID: 4, RawScore: -2},
			},
			1001: {
				{RoundID: 1001, PlayerID: 4, RawScore: 9},
				{RoundID: 1001, PlayerID: 1, RawScore: -3},
				{RoundID: 1001, PlayerID: 2, RawScore: -3},
				{RoundID: 1001, PlayerID: 3, RawScore: -3},
			},
		},
	}

	points, err := w.service(t).Timeline(context.Background(), window(1, 31))
	require.NoError(t, err)
	require.Len(t, points, 2)

	first := points[0]
	assert.Equal(t, int64(100), first.TableID)
	assert.Equal(t, day(5), first.At)
	assert.Equal(t, map[int64]int{1: 2, 2: 1, 3: -1, 4: -2}, first.Totals)

	// Second point carries the running sums, not per-table deltas.
	second := points[1]
	assert.Equal(t, int64(101), second.TableID)
	assert.Equal(t, map[int64]int{1: 2 + 1, 2: 1 - 1, 3: -1 - 2, 4: -2 + 2}, second.Totals)
}

func TestTimelineSkipsTablesWithoutScores(t *testing.T) {
	w := &world{
		players: fourPlayers(),
		tables: []tabledb.Table{
			{ID: 100, CreatedAt: day(5)}, // no rounds at all
			{ID: 101, CreatedAt: day(12)},
		},
		rounds: map[int64][]rounddb.Round{
			101: {{ID: 1001, TableID: 101, RoundNumber: 1}},
		},
		scores: map[int64][]rounddb.RoundScore{
			1001: {
				{RoundID: 1001, PlayerID: 1, RawScore: 5},
				{RoundID: 1001, PlayerID: 2, RawScore: -5},
				{RoundID: 1001, PlayerID: 3, RawScore: 0},
				{RoundID: 1001, PlayerID: 4, RawScore: 0},
			},
		},
	}

	points, err := w.service(t).Timeline(context.Background(), window(1, 31))
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, int64(101), points[0].TableID)
}

func TestTimelineIgnoresOpenTables(t *testing.T) {
	w := &world{
		players: fourPlayers(),
		tables: []tabledb.Table{
			{ID: 100, CreatedAt: day(5), IsOpen: true},
		},
		rounds: map[int64][]rounddb.Round{
			100: {{ID: 1000, TableID: 100, RoundNumber: 1}},
		},
		scores: map[int64][]rounddb.RoundScore{
			1000: {
				{RoundID: 1000, PlayerID: 1, RawScore: 5},
				{RoundID: 1000, PlayerID: 2, RawScore: -5},
				{RoundID: 1000, PlayerID: 3, RawScore: 0},
				{RoundID: 1000, PlayerID: 4, RawScore: 0},
			},
		},
	}

	opts := window(1, 31)
	opts.IncludeOpen = true // the timeline stays closed-only regardless

	points, err := w.service(t).Timeline(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, points)
}
