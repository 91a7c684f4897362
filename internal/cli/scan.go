package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/coursepilot-backend/internal/directive"
	"github.com/heartmarshall/coursepilot-backend/internal/domain"
)

type scanOutput struct {
	Display  string                   `json:"display"`
	Elements []domain.UIElement       `json:"elements"`
	Actions  []domain.CanonicalAction `json:"actions"`
}

func newScanCmd() *cobra.Command {
	var partial bool
	cmd := &cobra.Command{
		Use:   "scan [file]",
		Short: "Parse directives out of an assistant reply",
		Long:  "Reads a reply from file or stdin and prints its display text, widgets and canonical actions.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			text, err := readInput(cmd, name)
			if err != nil {
				return fmt.Errorf("read reply: %w", err)
			}

			p := directive.Parse(string(text), !partial)
			out := scanOutput{Display: p.Display, Elements: p.Elements, Actions: p.Actions}
			if out.Elements == nil {
				out.Elements = []domain.UIElement{}
			}
			if out.Actions == nil {
				out.Actions = []domain.CanonicalAction{}
			}
			return printJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&partial, "partial", false, "treat the text as a stream still in progress")
	return cmd
}
