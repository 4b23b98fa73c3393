// Package importer loads cartons from a spreadsheet outside the HTTP API.
package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cartonworks/stockline/internal/application/carton/usecases"
	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/infrastructure/repository"
	"github.com/cartonworks/stockline/internal/infrastructure/spreadsheet"
	"github.com/cartonworks/stockline/internal/interfaces/cli/bootstrap"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/db"
	"github.com/cartonworks/stockline/internal/shared/errors"
)

var (
	opts  bootstrap.Options
	file  string
	email string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk import inventory",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(newCartonsCommand())
	return cmd
}

func newCartonsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cartons",
		Short: "Import cartons from an .xlsx workbook",
		Long: `Import every row of the first sheet as a new carton. The workbook is
rejected as a whole when any row is invalid.`,
		RunE: runCartons,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the .xlsx workbook (required)")
	cmd.Flags().StringVarP(&email, "user", "u", "", "E-mail of the operator recorded as creator (required)")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func runCartons(cmd *cobra.Command, args []string) error {
	if !strings.EqualFold(filepath.Ext(file), ".xlsx") {
		return fmt.Errorf("only .xlsx workbooks are supported")
	}

	fh, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer fh.Close()

	env, err := bootstrap.Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	ctx := context.Background()
	gdb := database.Get()

	operator, err := repository.NewUserRepository(gdb).GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if operator == nil {
		return fmt.Errorf("no user with e-mail %q", email)
	}

	uc := usecases.NewImportCartonsUseCase(
		repository.NewCartonRepository(gdb),
		db.NewTransactionManager(gdb),
		env.Log.Named("import"),
	)
	result, err := uc.Execute(ctx, usecases.ImportCartonsCommand{File: fh, CreatedBy: operator.ID()})
	if err != nil {
		printRowErrors(cmd, err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cartons (%d from single-quantity rows)\n", result.Imported, result.Legacy)
	return nil
}

func printRowErrors(cmd *cobra.Command, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		return
	}
	rowErrs, ok := appErr.Meta.([]spreadsheet.RowError)
	if !ok {
		return
	}
	out := cmd.ErrOrStderr()
	for _, re := range rowErrs {
		fmt.Fprintf(out, "  %s\n", re.Error())
	}
}
