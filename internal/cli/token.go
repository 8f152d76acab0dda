package cli

import (
	"fmt"
	"time"
	"tzconv/internal/auth"

	"github.com/spf13/cobra"
)

func newTokenCommand(a *app) *cobra.Command {
	var (
		admin   bool
		ttl     time.Duration
		subject string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the conversion history API",
		Long: `token signs a JWT with JWT_SECRET. Tokens minted with --admin may read
the recorded conversion history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("ttl") {
				ttl = a.cfg.Auth.TokenDuration
			}
			if ttl <= 0 {
				return fmt.Errorf("ttl must be positive")
			}

			token, err := auth.NewService(a.cfg.Auth.JWTSecret).GenerateToken(subject, admin, ttl)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			a.log.WithField("subject", subject).WithField("admin", admin).Debug("Token issued")
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().BoolVar(&admin, "admin", false, "grant access to the history API")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime (default from JWT_TOKEN_DURATION)")
	cmd.Flags().StringVar(&subject, "subject", "operator", "token subject")

	return cmd
}
