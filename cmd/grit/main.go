package main

import (
	"fmt"
	"os"

	"github.com/grit-dev/grit/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		// Test failures are already reported on the console trace; only
		// command errors warrant an extra line.
		if !cli.IsTestFailure(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
