package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cartonworks/stockline/internal/interfaces/cli/importer"
	"github.com/cartonworks/stockline/internal/interfaces/cli/migrate"
	"github.com/cartonworks/stockline/internal/interfaces/cli/seed"
	"github.com/cartonworks/stockline/internal/interfaces/cli/server"
	"github.com/cartonworks/stockline/internal/interfaces/cli/token"
	"github.com/cartonworks/stockline/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "stockline",
		Short:        "Stockline - carton stock and dieline allocation",
		Long:         `Stockline tracks carton inventory, matches cartons to dieline dimensions and records stock assignments.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		importer.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
