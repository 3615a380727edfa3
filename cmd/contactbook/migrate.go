package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/contactbook-server/database"
	"github.com/dtroode/contactbook-server/internal/config"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Run database migrations",
		Long:      `Apply, roll back or report goose migrations against DATABASE_DSN. Defaults to up.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down), string(database.Status)},
		RunE:      runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	dir := database.Up
	if len(args) == 1 {
		dir = database.Direction(args[0])
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != driverPostgres {
		return fmt.Errorf("migrations need DATABASE_DRIVER=%s, got %q", driverPostgres, cfg.Database.Driver)
	}

	if err := database.Run(cmd.Context(), cfg.Database.DSN, dir); err != nil {
		return err
	}

	cmd.Printf("migrate %s: done\n", dir)
	return nil
}
