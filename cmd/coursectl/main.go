// Command coursectl bundles developer tools for the course assistant.
package main

import (
	"os"

	"github.com/heartmarshall/coursepilot-backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
