package playerservice

import (
	"context"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
)

// Service exposes player registry operations.
type Service interface {
	// CreatePlayer registers a new player. The name must be non-empty.
	CreatePlayer(ctx context.Context, name string) (*playerdb.Player, error)

	// ListPlayers returns all registered players ordered by id.
	ListPlayers(ctx context.Context) ([]playerdb.Player, error)
}
