package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// PlayerDBImpl handles database operations for players.
type PlayerDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*PlayerDBImpl)(nil)

func (db *PlayerDBImpl) List(ctx context.Context) ([]Player, error) {
	var players []Player
	err := db.DB.NewSelect().
		Model(&players).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (db *PlayerDBImpl) GetByID(ctx context.Context, id int64) (*Player, error) {
	player := new(Player)
	err := db.DB.NewSelect().
		Model(player).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	return player, nil
}

func (db *PlayerDBImpl) GetByName(ctx context.Context, name string) (*Player, error) {
	player := new(Player)
	err := db.DB.NewSelect().
		Model(player).
		Where("name = ?", name).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player %q: %w", name, err)
	}
	return player, nil
}

func (db *PlayerDBImpl) Insert(ctx context.Context, name string) (*Player, error) {
	player := &Player{Name: name}
	_, err := db.DB.NewInsert().
		Model(player).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert player: %w", err)
	}
	return player, nil
}
