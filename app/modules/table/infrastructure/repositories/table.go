package tabledb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
)

// TableDBImpl handles database operations for tables and rosters.
type TableDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*TableDBImpl)(nil)

func (db *TableDBImpl) List(ctx context.Context, filter ListFilter) ([]Table, error) {
	var tables []Table
	q := db.DB.NewSelect().Model(&tables)

	if filter.ExcludeFromOverall != nil {
		q = q.Where("exclude_from_overall = ?", *filter.ExcludeFromOverall)
	}
	if filter.IsOpen != nil {
		q = q.Where("is_open = ?", *filter.IsOpen)
	}
	if filter.CreatedAfter != nil {
		q = q.Where("created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		q = q.Where("created_at <= ?", *filter.CreatedBefore)
	}

	if err := q.Order("created_at ASC", "id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

func (db *TableDBImpl) GetByID(ctx context.Context, id int64) (*Table, error) {
	table := new(Table)
	err := db.DB.NewSelect().
		Model(table).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get table %d: %w", id, err)
	}
	return table, nil
}

func (db *TableDBImpl) Insert(ctx context.Context, name string) (*Table, error) {
	table := &Table{Name: name, IsOpen: true}
	_, err := db.DB.NewInsert().
		Model(table).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert table: %w", err)
	}
	return table, nil
}

func (db *TableDBImpl) Update(ctx context.Context, id int64, patch UpdatePatch) (*Table, error) {
	if patch.IsOpen == nil && patch.ExcludeFromOverall == nil {
		return db.GetByID(ctx, id)
	}

	q := db.DB.NewUpdate().Model((*Table)(nil)).Where("id = ?", id)
	if patch.IsOpen != nil {
		q = q.Set("is_open = ?", *patch.IsOpen)
	}
	if patch.ExcludeFromOverall != nil {
		q = q.Set("exclude_from_overall = ?", *patch.ExcludeFromOverall)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update table %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}

	return db.GetByID(ctx, id)
}

func (db *TableDBImpl) Roster(ctx context.Context, tableID int64) ([]RosterEntry, error) {
	var links []TablePlayer
	err := db.DB.NewSelect().
		Model(&links).
		Where("table_id = ?", tableID).
		Order("created_at ASC", "player_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster for table %d: %w", tableID, err)
	}
	if len(links) == 0 {
		return nil, nil
	}

	playerIDs := make([]int64, 0, len(links))
	for _, link := range links {
		playerIDs = append(playerIDs, link.PlayerID)
	}

	var players []playerdb.Player
	err = db.DB.NewSelect().
		Model(&players).
		Where("id IN (?)", bun.In(playerIDs)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roster players for table %d: %w", tableID, err)
	}

	byID := make(map[int64]playerdb.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	// Join order is preserved: it is the insertion order the aggregation
	// core's stable tie-break relies on.
	roster := make([]RosterEntry, 0, len(links))
	for _, link := range links {
		roster = append(roster, RosterEntry{
			PlayerID: link.PlayerID,
			Player:   byID[link.PlayerID],
		})
	}
	return roster, nil
}

func (db *TableDBImpl) AddPlayer(ctx context.Context, tableID, playerID int64) error {
	link := &TablePlayer{TableID: tableID, PlayerID: playerID}
	_, err := db.DB.NewInsert().
		Model(link).
		On("CONFLICT (table_id, player_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to add player %d to table %d: %w", playerID, tableID, err)
	}
	return nil
}
