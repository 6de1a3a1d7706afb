package cmd

import (
	"github.com/spf13/cobra"

	database "alisto_backend/internals/databases"
	"alisto_backend/internals/seeds"
)

func newSeedCommand() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert reference data (service catalogue, hotlines, configuration)",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := connect(migrate)
			if err != nil {
				return err
			}
			defer database.Close(db)
			if err := seeds.RunAllSeeds(db); err != nil {
				return err
			}
			rt.log.Info().Msg("seeding finished")
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, migrateFlag, false, "Run auto migration first")
	return cmd
}
