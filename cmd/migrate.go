package cmd

import (
	"github.com/spf13/cobra"

	database "alisto_backend/internals/databases"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update all tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			db, err := connect(true)
			if err != nil {
				return err
			}
			defer database.Close(db)
			rt.log.Info().Int("tables", len(database.Models())).Msg("migration finished")
			return nil
		},
	}
}
