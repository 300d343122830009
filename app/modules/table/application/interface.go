package tableservice

import (
	"context"

	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

// Service exposes table (game session) operations.
type Service interface {
	// CreateTable opens a new table. The name must be non-empty.
	CreateTable(ctx context.Context, name string) (*tabledb.Table, error)

	// ListTables returns tables matching the filter, oldest first.
	ListTables(ctx context.Context, filter tabledb.ListFilter) ([]tabledb.Table, error)

	// UpdateTable flips the table's mutable flags (open state, overall exclusion).
	UpdateTable(ctx context.Context, id int64, patch tabledb.UpdatePatch) (*tabledb.Table, error)

	// GetRoster returns the table's roster in join order.
	GetRoster(ctx context.Context, tableID int64) ([]tabledb.RosterEntry, error)

	// AddPlayerToTable adds a player to the roster and backfills a zero raw
	// score for every round the table has already played.
	AddPlayerToTable(ctx context.Context, tableID, playerID int64) error
}
