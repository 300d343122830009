package playerdb

import "context"

// Repository defines the contract for player persistence.
type Repository interface {
	// List retrieves all registered players ordered by id.
	List(ctx context.Context) ([]Player, error)

	// GetByID retrieves a player by id.
	GetByID(ctx context.Context, id int64) (*Player, error)

	// GetByName retrieves a player by exact name.
	GetByName(ctx context.Context, name string) (*Player, error)

	// Insert creates a new player and returns it with its assigned id.
	Insert(ctx context.Context, name string) (*Player, error)
}
