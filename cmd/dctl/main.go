package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/kris-hansen/dctl/internal/cli"
	"github.com/kris-hansen/dctl/internal/process"
)

func main() {
	app := cli.NewApp()
	rootCmd := cli.NewRootCmd(app)

	if err := rootCmd.Execute(); err != nil {
		// A child attached to the terminal has already reported its failure.
		var exitErr *process.ExitError
		if errors.As(err, &exitErr) && exitErr.Attached {
			app.Logger.Debug("command failed", "err", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(process.ExitCode(err))
	}
}
