package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/coursepilot-backend/internal/natdate"
)

func newDateCmd() *cobra.Command {
	var ref string
	cmd := &cobra.Command{
		Use:   "date <expression>",
		Short: "Resolve a natural date expression to YYYY-MM-DD",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refDay := time.Now()
			if ref != "" {
				t, err := time.Parse(natdate.Layout, ref)
				if err != nil {
					return fmt.Errorf("--ref: %w", err)
				}
				refDay = t
			}

			date, err := natdate.Format(strings.Join(args, " "), refDay)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), date)
			return err
		},
	}
	cmd.Flags().StringVar(&ref, "ref", "", "reference day as YYYY-MM-DD (default today)")
	return cmd
}
