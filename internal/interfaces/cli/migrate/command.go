package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/infrastructure/migration"
	"github.com/cartonworks/stockline/internal/interfaces/cli/bootstrap"
	"github.com/cartonworks/stockline/internal/shared/constants"
)

var (
	opts  bootstrap.Options
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the goose migrations embedded in the binary.`,
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	env, err := bootstrap.Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Log.Infow("running up migrations", "environment", opts.Env, "driver", env.Config.Database.Driver)

	strategy := migration.NewGooseStrategy(env.Config.Database.Driver)
	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	env.Log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}

	env, err := bootstrap.Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	env.Log.Infow("running down migrations", "environment", opts.Env, "steps", steps)

	strategy := migration.NewGooseStrategy(env.Config.Database.Driver)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	env.Log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	env, err := bootstrap.Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	strategy := migration.NewGooseStrategy(env.Config.Database.Driver)
	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", opts.Env)
	fmt.Fprintf(out, "  Driver:          %s\n", env.Config.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}
