package standingsdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// SnapshotDBImpl handles database operations for standings snapshots.
type SnapshotDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*SnapshotDBImpl)(nil)

func (db *SnapshotDBImpl) Insert(ctx context.Context, snapshot *Snapshot) error {
	_, err := db.DB.NewInsert().Model(snapshot).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert standings snapshot: %w", err)
	}
	return nil
}

func (db *SnapshotDBImpl) Latest(ctx context.Context) (*Snapshot, error) {
	snapshot := new(Snapshot)
	err := db.DB.NewSelect().
		Model(snapshot).
		Order("computed_at DESC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("failed to get latest standings snapshot: %w", err)
	}
	return snapshot, nil
}
