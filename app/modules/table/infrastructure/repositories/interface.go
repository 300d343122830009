package tabledb

import (
	"context"
	"time"
)

// ListFilter narrows table queries. Nil fields are ignored.
type ListFilter struct {
	ExcludeFromOverall *bool
	IsOpen             *bool
	CreatedAfter       *time.Time
	CreatedBefore      *time.Time
}

// UpdatePatch carries the two mutable table fields. Nil fields are left as-is.
type UpdatePatch struct {
	IsOpen             *bool
	ExcludeFromOverall *bool
}

// Repository defines the contract for table persistence.
type Repository interface {
	// List retrieves tables matching the filter, ordered by created_at ascending.
	List(ctx context.Context, filter ListFilter) ([]Table, error)

	// GetByID retrieves a table by id.
	GetByID(ctx context.Context, id int64) (*Table, error)

	// Insert creates a new open table.
	Insert(ctx context.Context, name string) (*Table, error)

	// Update applies the patch to the table's mutable fields.
	Update(ctx context.Context, id int64, patch UpdatePatch) (*Table, error)

	// Roster retrieves the table's roster in join order.
	Roster(ctx context.Context, tableID int64) ([]RosterEntry, error)

	// AddPlayer adds a player to the roster. Adding an existing member is a no-op.
	AddPlayer(ctx context.Context, tableID, playerID int64) error
}
