package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/coursepilot-backend/internal/auth"
)

func newTokenCmd() *cobra.Command {
	var (
		user   string
		secret string
		issuer string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("AUTH_JWT_SECRET")
			}
			if secret == "" {
				return errors.New("no signing secret: pass --secret or set AUTH_JWT_SECRET")
			}

			userID := uuid.New()
			if user != "" {
				id, err := uuid.Parse(user)
				if err != nil {
					return fmt.Errorf("--user: %w", err)
				}
				userID = id
			}

			token, err := auth.NewJWTManager(secret, issuer).GenerateAccessToken(userID, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id (default random)")
	cmd.Flags().StringVar(&secret, "secret", "", "HMAC secret (default $AUTH_JWT_SECRET)")
	cmd.Flags().StringVar(&issuer, "issuer", "coursepilot", "token issuer")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
