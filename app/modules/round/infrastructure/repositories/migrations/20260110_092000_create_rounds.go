package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds and round_scores tables...")

		if _, err := db.NewCreateTable().Model((*rounddb.Round)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*rounddb.Round)(nil)).
			Index("rounds_table_number_uq").
			Unique().
			Column("table_id", "round_number").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*rounddb.RoundScore)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*rounddb.RoundScore)(nil)).
			Index("round_scores_round_player_uq").
			Unique().
			Column("round_id", "player_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Round tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping rounds and round_scores tables...")

		if _, err := db.NewDropTable().Model((*rounddb.RoundScore)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*rounddb.Round)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Round tables dropped successfully!")
		return nil
	})
}
