// Package cli implements the coursectl developer commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the coursectl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "coursectl",
		Short:         "Developer tools for the course assistant",
		Long:          "Inspect assistant replies, resolve course references and dates, mint dev tokens and run migrations.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newScanCmd(),
		newSlugCmd(),
		newDateCmd(),
		newTokenCmd(),
		newMigrateCmd(),
	)
	return root
}

// Execute runs the root command and reports errors on stderr.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput reads the named file, or stdin when name is "" or "-".
func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "" || name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
