package cli

import (
	"github.com/kris-hansen/dctl/internal/compose"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/kris-hansen/dctl/internal/cli.Version=..."
var Version = "dev"

const (
	groupCompose = "compose"
	groupProject = "project"
)

// NewRootCmd builds the dctl command tree
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "dctl",
		Short:         "Run docker compose commands on registered projects from anywhere",
		Long:          `dctl registers docker compose projects under short aliases, then runs compose commands against them from any directory without repeating -f, -p or --env-file.`,
		Version:       Version,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags parsed fine, so later errors are not usage errors.
			cmd.SilenceUsage = true
			app.applyVerbosity()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.ConfigPath, "config", "", "config file (default $DCTL_CONFIG_FILE_PATH or ~/.config/dctl/config.toml)")
	flags.BoolVar(&app.Verbose, "verbose", false, "enable debug logging")
	flags.BoolVar(&app.Print, "print", false, "print the docker command instead of running it")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupCompose, Title: "Compose Commands:"},
		&cobra.Group{ID: groupProject, Title: "Project Commands:"},
	)

	for _, spec := range compose.Specs {
		rootCmd.AddCommand(ComposeCmd(app, spec))
	}

	rootCmd.AddCommand(CdCmd(app))
	rootCmd.AddCommand(InfosCmd(app))
	rootCmd.AddCommand(CheckConfigCmd(app))
	rootCmd.AddCommand(InitCmd(app))
	rootCmd.AddCommand(AddCmd(app))

	return rootCmd
}
