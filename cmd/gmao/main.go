package main

import (
	"os"

	"github.com/spf13/cobra"

	"gmao/internal/interfaces/cli/migrate"
	"gmao/internal/interfaces/cli/server"
	"gmao/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "gmao",
		Short:   "GMAO - maintenance management backend",
		Long:    `GMAO is the maintenance management backend: ticketing, equipment tracking, breakdown reports, planned interventions, and in-app notifications.`,
		Version: version.String(),
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
