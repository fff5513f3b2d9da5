// Command matchbook runs the pattern-matching demonstration CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hferris/matchbook/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
