package tablemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating tables and table_players tables...")

		if _, err := db.NewCreateTable().Model((*tabledb.Table)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*tabledb.TablePlayer)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*tabledb.TablePlayer)(nil)).
			Index("table_players_table_player_uq").
			Unique().
			Column("table_id", "player_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Table tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping tables and table_players tables...")

		if _, err := db.NewDropTable().Model((*tabledb.TablePlayer)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*tabledb.Table)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Table tables dropped successfully!")
		return nil
	})
}
