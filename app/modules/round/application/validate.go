package roundservice

import rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"

// CheckScores sums a round's raw scores. By the scoring convention every
// round must sum to zero; a nonzero sum means a recording mistake somewhere.
func CheckScores(scores []rounddb.RoundScore) (sum int, ok bool) {
	for _, s := range scores {
		sum += s.RawScore
	}
	return sum, sum == 0
}
