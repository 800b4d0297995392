package cli

import (
	"fmt"

	"github.com/kris-hansen/dctl/internal/project"
	"github.com/kris-hansen/dctl/internal/status"
	"github.com/kris-hansen/dctl/internal/ui"
	"github.com/spf13/cobra"
)

// InfosCmd returns the infos command
func InfosCmd(app *App) *cobra.Command {
	var parallel int

	cmd := &cobra.Command{
		Use:     "infos",
		Aliases: []string{"list"},
		Short:   "Describe all projects with their status",
		Long:    `Lists every registered project with its description and status, computed from the number of running and existing containers.`,
		GroupID: groupProject,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfos(app, cmd, parallel)
		},
	}

	cmd.Flags().IntVarP(&parallel, "parallel", "j", 0, "number of projects queried at once (default from config)")

	return cmd
}

func runInfos(app *App, cmd *cobra.Command, parallel int) error {
	cfg, reg, err := app.load()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if reg.Len() == 0 {
		fmt.Fprintln(out, "No projects configured")
		return nil
	}

	if parallel < 1 {
		parallel = cfg.Main.Parallelism
	}

	collector := status.NewCollector(app.executor(cmd), project.NewChecker(app.Fs), cfg.Main.DockerBin, parallel, app.Logger)
	reports, err := collector.Collect(cmd.Context(), reg.All())
	if err != nil {
		return err
	}

	fmt.Fprintln(out, ui.ProjectsTable(reports))
	if problems := ui.Problems(reports); problems != "" {
		fmt.Fprintln(out)
		fmt.Fprint(out, problems)
	}

	return nil
}
