// Package token mints API bearer tokens for existing users.
package token

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cartonworks/stockline/internal/infrastructure/auth"
	"github.com/cartonworks/stockline/internal/infrastructure/database"
	"github.com/cartonworks/stockline/internal/infrastructure/repository"
	"github.com/cartonworks/stockline/internal/interfaces/cli/bootstrap"
	"github.com/cartonworks/stockline/internal/shared/constants"
)

var (
	opts  bootstrap.Options
	email string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for a user",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&email, "email", "", "E-mail of the user (required)")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	env, err := bootstrap.Setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	u, err := repository.NewUserRepository(database.Get()).GetByEmail(context.Background(), strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return fmt.Errorf("no user with e-mail %q", email)
	}

	jwtCfg := env.Config.Auth.JWT
	tok, exp, err := auth.NewJWTService(jwtCfg.Secret, jwtCfg.AccessExpMinutes).Generate(u.SID(), string(u.Role()))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	env.Log.Debugw("issued token", "user_sid", u.SID(), "expires_at", exp.Format(time.RFC3339))
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
