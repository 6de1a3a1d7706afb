package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"alisto_backend/internals/app"
	database "alisto_backend/internals/databases"
	"alisto_backend/internals/helpers/storage"
	"alisto_backend/internals/seeds"
)

const (
	portFlag    = "port"
	migrateFlag = "migrate"
	seedFlag    = "seed"
)

var serveFlags = map[string]cobraflags.Flag{
	portFlag: &cobraflags.StringFlag{
		Name:  portFlag,
		Value: "",
		Usage: "Listen port (defaults to PORT)",
	},
}

func newServeCommand() *cobra.Command {
	var migrate, seed bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(migrate, seed)
		},
	}
	cobraflags.RegisterMap(cmd, serveFlags)
	cmd.Flags().BoolVar(&migrate, migrateFlag, false, "Run auto migration before serving")
	cmd.Flags().BoolVar(&seed, seedFlag, false, "Insert reference data before serving")
	return cmd
}

func serve(migrate, seed bool) error {
	log := rt.log
	db, err := connect(migrate)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warn().Err(err).Msg("closing database")
		}
	}()

	if seed {
		if err := seeds.RunAllSeeds(db); err != nil {
			return err
		}
	}

	store, err := storage.New(rt.cfg.Storage, log)
	if err != nil {
		return err
	}

	server := app.New(rt.cfg, db, store, log, app.Options{AccessLog: log})

	port := serveFlags[portFlag].GetString()
	if port == "" {
		port = rt.cfg.Port
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", port).Str("env", rt.cfg.AppEnv).Msg("HTTP server listening")
		errCh <- server.Listen(":" + port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
