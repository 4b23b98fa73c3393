package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/infrastructure/repository"
	"github.com/cartonworks/stockline/internal/infrastructure/seed"
	"github.com/cartonworks/stockline/internal/interfaces/cli/bootstrap"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/db"
)

var (
	opts bootstrap.Options
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load users, dielines and cartons from a YAML fixture file",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/seed.yaml", "Path to the fixture file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	fixtures, err := seed.LoadFile(file)
	if err != nil {
		return err
	}

	env, err := bootstrap.Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	gdb := database.Get()
	seeder := seed.NewSeeder(
		repository.NewUserRepository(gdb),
		repository.NewDielineRepository(gdb),
		repository.NewCartonRepository(gdb),
		db.NewTransactionManager(gdb),
		env.Log.Named("seed"),
	)

	summary, err := seeder.Apply(context.Background(), fixtures)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Users: %d created, %d already present\nDielines: %d created\nCartons: %d created\n",
		summary.UsersCreated, summary.UsersSkipped, summary.DielinesCreated, summary.CartonsCreated)
	return nil
}
