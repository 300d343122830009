package standingsservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
)

// resolveAdjustments merges every configured adjustment window that overlaps
// [from, to] into id-keyed offset and exclusion maps. Configuration names
// players by name (that is how the corrections were written down); unknown
// names are logged and skipped rather than failing the computation.
func (s *StandingsService) resolveAdjustments(ctx context.Context, from, to time.Time) (map[int64]int, map[int64]bool, error) {
	offsets := make(map[int64]int)
	exclude := make(map[int64]bool)

	for _, window := range s.cfg.Adjustments {
		if !overlaps(window.From, window.To, from, to) {
			continue
		}

		for name, offset := range window.Offsets {
			player, err := s.players.GetByName(ctx, name)
			if err != nil {
				if errors.Is(err, playerdb.ErrNotFound) {
					s.logger.WarnContext(ctx, "Adjustment names unknown player, skipping",
						slog.String("player_name", name),
					)
					continue
				}
				return nil, nil, fmt.Errorf("failed to resolve adjustment for %q: %w", name, err)
			}
			offsets[player.ID] += offset
		}

		for _, name := range window.Exclude {
			player, err := s.players.GetByName(ctx, name)
			if err != nil {
				if errors.Is(err, playerdb.ErrNotFound) {
					s.logger.WarnContext(ctx, "Exclusion names unknown player, skipping",
						slog.String("player_name", name),
					)
					continue
				}
				return nil, nil, fmt.Errorf("failed to resolve exclusion for %q: %w", name, err)
			}
			exclude[player.ID] = true
		}
	}

	return offsets, exclude, nil
}

func overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return !aFrom.After(bTo) && !bFrom.After(aTo)
}
