package standingsdomain

// rankPointsTable maps participant count to the rank-point awards handed out
// per table, first place first. Every row sums to zero on purpose: a table
// moves points between its players, it never mints them.
var rankPointsTable = map[int][]int{
	4: {2, 1, -1, -2},
	5: {2, 1, 0, -1, -2},
	6: {3, 2, 1, -1, -2, -3},
}

// RankPoints returns the point awards for a table with the given number of
// participants, rank 1 first. Unknown counts return nil; callers treat that
// as "no points awarded" and surface a warning rather than failing.
func RankPoints(participants int) []int {
	row, ok := rankPointsTable[participants]
	if !ok {
		return nil
	}
	out := make([]int, len(row))
	copy(out, row)
	return out
}
