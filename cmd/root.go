package cmd

import (
	"fmt"
	"os"

	"github.com/go-extras/cobraflags"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"alisto_backend/internals/configs"
	database "alisto_backend/internals/databases"
	"alisto_backend/internals/logger"
)

const envFileFlag = "env-file"

var rootFlags = map[string]cobraflags.Flag{
	envFileFlag: &cobraflags.StringFlag{
		Name:  envFileFlag,
		Value: ".env",
		Usage: "Path of the .env file loaded before reading the environment",
	},
}

// runtime is what every subcommand gets after configuration is loaded.
type runtime struct {
	cfg *configs.Config
	log zerolog.Logger
}

var rt runtime

var rootCmd = &cobra.Command{
	Use:           "alisto",
	Short:         "Alisto municipal e-government backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		configs.LoadEnv(rootFlags[envFileFlag].GetString())
		cfg, err := configs.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		rt = runtime{cfg: cfg, log: logger.New(cfg.AppEnv)}
		return nil
	},
}

func init() {
	cobraflags.RegisterMap(rootCmd, rootFlags)
	rootCmd.AddCommand(newServeCommand(), newMigrateCommand(), newSeedCommand(), newStatsCommand())
}

// connect opens the database, optionally running migrations first.
func connect(migrate bool) (*gorm.DB, error) {
	db, err := database.ConnectDB(rt.cfg, rt.log)
	if err != nil {
		return nil, err
	}
	if migrate {
		rt.log.Info().Msg("running auto migration")
		if err := database.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			return nil, err
		}
	}
	return db, nil
}

// Execute runs the CLI; `alisto` without a subcommand serves HTTP.
func Execute() {
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
