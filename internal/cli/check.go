package cli

import (
	"errors"
	"fmt"

	"github.com/kris-hansen/dctl/internal/process"
	"github.com/kris-hansen/dctl/internal/project"
	"github.com/kris-hansen/dctl/internal/ui"
	"github.com/spf13/cobra"
)

var errInvalidConfig = errors.New("configuration has errors")

// CheckConfigCmd returns the check-config command
func CheckConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "check-config",
		Short:   "Check the container binary and every project's files",
		Long:    `Verifies that the configured container binary supports compose, then checks that every env file and compose file referenced by a project exists and parses.`,
		GroupID: groupProject,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckConfig(app, cmd)
		},
	}
}

func runCheckConfig(app *App, cmd *cobra.Command) error {
	cfg, reg, err := app.load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ok := true

	bin, err := app.LookPath(cfg.Main.DockerBin)
	if err != nil {
		ok = false
		fmt.Fprintf(out, "%s Container binary %s: %v\n", ui.Mark(false), cfg.Main.DockerBin, err)
	} else {
		fmt.Fprintf(out, "%s Container binary %s\n", ui.Mark(true), bin)

		version, err := process.ComposeVersion(cmd.Context(), app.executor(cmd), bin)
		if err != nil {
			ok = false
			fmt.Fprintf(out, "%s %v\n", ui.Mark(false), err)
		} else {
			fmt.Fprintf(out, "%s Docker compose %s\n", ui.Mark(true), version)
		}
	}

	checker := project.NewChecker(app.Fs)
	for _, p := range reg.All() {
		fmt.Fprintf(out, "\n%s\n", p.Alias)

		if len(p.ComposeFiles) == 0 {
			ok = false
			fmt.Fprintf(out, "  %s no compose files configured\n", ui.Mark(false))
		}

		for _, item := range checker.Items(p) {
			if item.OK() {
				fmt.Fprintf(out, "  %s %s %s\n", ui.Mark(true), item.Kind, item.Path)
				continue
			}
			ok = false
			fmt.Fprintf(out, "  %s %s %s: %v\n", ui.Mark(false), item.Kind, item.Path, item.Err)
		}
	}

	if !ok {
		return errInvalidConfig
	}
	return nil
}
