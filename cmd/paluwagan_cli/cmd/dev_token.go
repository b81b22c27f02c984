package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/middleware"
	"github.com/SscSPs/paluwagan_app/internal/platform/config"
	"github.com/spf13/cobra"
)

func newDevTokenCmd(a *app) *cobra.Command {
	var (
		userID string
		role   string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "dev-token",
		Short: "Mint a bearer token for local testing",
		Long: `Signs a token with JWT_SECRET that the API accepts. Refuses to run when
IS_PRODUCTION is set; real tokens come from the identity provider.

Example:
  paluwagan dev-token --user admin-1 --role admin`,
		Args: cobra.NoArgs,
		// No store needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogging()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cfg.IsProduction {
				return errors.New("refusing to mint tokens in production")
			}
			r := domain.UserRole(role)
			if r != domain.RoleAdmin && r != domain.RoleMember {
				return fmt.Errorf("role must be %s or %s, got %q", domain.RoleAdmin, domain.RoleMember, role)
			}

			token, err := middleware.IssueToken(userID, r, cfg.JWTSecret, ttl, "paluwagan-cli")
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "user id placed in the sub claim")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleMember), "admin or member")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
