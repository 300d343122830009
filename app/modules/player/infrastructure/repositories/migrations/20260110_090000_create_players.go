package playermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating players table...")

		if _, err := db.NewCreateTable().Model((*playerdb.Player)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Players table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping players table...")

		if _, err := db.NewDropTable().Model((*playerdb.Player)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Players table dropped successfully!")
		return nil
	})
}
