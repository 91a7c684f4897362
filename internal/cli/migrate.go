package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/coursepilot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/coursepilot-backend/internal/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long:  "Loads the server configuration and applies the embedded migrations to DATABASE_DSN.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			applied, err := postgres.Migrate(cmd.Context(), pool)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return err
		},
	}
}
