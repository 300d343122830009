package standingsmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating standings_snapshots table...")

		if _, err := db.NewCreateTable().Model((*standingsdb.Snapshot)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Standings snapshots table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping standings_snapshots table...")

		if _, err := db.NewDropTable().Model((*standingsdb.Snapshot)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Standings snapshots table dropped successfully!")
		return nil
	})
}
