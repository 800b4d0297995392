package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CdCmd returns the cd command
func CdCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cd PROJECT",
		Short: "Print the directory of a project",
		Long: `Prints the directory holding the first compose file of PROJECT, for use with the shell:

  cd "$(dctl cd PROJECT)"`,
		GroupID:           groupProject,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: app.completeProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCd(app, cmd, args)
		},
	}
}

func runCd(app *App, cmd *cobra.Command, args []string) error {
	_, reg, err := app.load()
	if err != nil {
		return err
	}

	p, err := reg.Resolve(args[0])
	if err != nil {
		return err
	}

	dir, err := p.Dir()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), dir)
	return nil
}
