package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/coursepilot-backend/internal/domain"
	"github.com/heartmarshall/coursepilot-backend/internal/slug"
)

type slugOutput struct {
	Input string `json:"input"`
	Slug  string `json:"slug"`
	Tier  string `json:"tier"`
	Known bool   `json:"known"`
}

func newSlugCmd() *cobra.Command {
	var subjectsPath string
	cmd := &cobra.Command{
		Use:   "slug <reference>",
		Short: "Resolve a course name or slug against a subject list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var subjects []domain.SubjectRef
			if subjectsPath != "" {
				data, err := readInput(cmd, subjectsPath)
				if err != nil {
					return fmt.Errorf("read subjects: %w", err)
				}
				if err := json.Unmarshal(data, &subjects); err != nil {
					return fmt.Errorf("parse subjects: %w", err)
				}
			}

			res := slug.Resolve(args[0], subjects)
			return printJSON(cmd.OutOrStdout(), slugOutput{
				Input: args[0],
				Slug:  res.Slug,
				Tier:  res.Tier.String(),
				Known: res.Known,
			})
		},
	}
	cmd.Flags().StringVarP(&subjectsPath, "subjects", "s", "", `JSON file of [{"name","slug"}] ("-" for stdin)`)
	return cmd
}
