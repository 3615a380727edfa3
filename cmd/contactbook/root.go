package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the contactbook CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contactbook",
		Short: "Contact book API server",
		Long: `contactbook serves user registration, login, password reset and
per-user contact management over a JSON HTTP API.

Configuration is read from environment variables.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
