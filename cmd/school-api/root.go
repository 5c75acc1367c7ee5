package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the school-api CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "school-api",
		Short: "School administration API",
		Long: `school-api serves the school administration HTTP API: school accounts,
students, staff and inbox/outbox messaging. Configuration is read from the
environment.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
