package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volunteerd",
		Short: "Volunteering platform API server",
		Long: `volunteerd serves the volunteering platform REST API: volunteer and
association accounts, two-phase login with emailed confirmation codes,
events and their participants.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
