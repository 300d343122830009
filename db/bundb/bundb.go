package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

// NewBunDB opens the Postgres connection pool and registers the models every
// module stores through it.
func NewBunDB(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(&playerdb.Player{})
	db.RegisterModel(&tabledb.Table{})
	db.RegisterModel(&tabledb.TablePlayer{})
	db.RegisterModel(&rounddb.Round{})
	db.RegisterModel(&rounddb.RoundScore{})
	db.RegisterModel(&standingsdb.Snapshot{})

	return db, nil
}
