package standingsdb

import "context"

// Repository defines the contract for standings snapshot persistence.
type Repository interface {
	// Insert stores a freshly computed snapshot.
	Insert(ctx context.Context, snapshot *Snapshot) error

	// Latest retrieves the most recently computed snapshot.
	Latest(ctx context.Context) (*Snapshot, error)
}
