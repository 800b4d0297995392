package cli

import (
	"fmt"

	"github.com/kris-hansen/dctl/internal/config"
	"github.com/kris-hansen/dctl/internal/discover"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// InitCmd returns the init command
func InitCmd(app *App) *cobra.Command {
	var (
		dockerBin string
		force     bool
	)

	cmd := &cobra.Command{
		Use:     "init [DIR...]",
		Short:   "Create a dctl configuration file",
		Long:    `Writes a new configuration file. Each DIR given is scanned for compose files and registered as a project named after the directory.`,
		GroupID: groupProject,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(app, cmd, args, dockerBin, force)
		},
	}

	cmd.Flags().StringVar(&dockerBin, "docker-bin", config.DefaultDockerBin, "container binary to run compose with")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing configuration file")

	return cmd
}

func runInit(app *App, cmd *cobra.Command, dirs []string, dockerBin string, force bool) error {
	out := cmd.OutOrStdout()
	configPath := app.configPath()

	exists, err := afero.Exists(app.Fs, configPath)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
	}

	cfg := &config.Config{Main: config.Main{DockerBin: dockerBin}}

	if len(dirs) > 0 {
		fmt.Fprintln(out, "Scanning directories...")
	}
	for _, dir := range dirs {
		found, err := discover.Scan(app.Fs, dir)
		if err != nil {
			return err
		}
		if err := cfg.AddCollection(collectionFor(found)); err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s: %d compose file(s) in %s\n", found.Alias, len(found.ComposeFiles), found.Dir)
	}

	if err := cfg.Save(app.Fs, configPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "✓ Configuration saved to %s\n", configPath)
	if len(cfg.Collections) == 0 {
		fmt.Fprintln(out, "\nRun 'dctl add DIR' to register a project")
	} else {
		fmt.Fprintln(out, "\nRun 'dctl infos' to see your projects")
	}

	return nil
}

func collectionFor(found discover.Project) config.Collection {
	return config.Collection{
		Alias:          found.Alias,
		EnviromentFile: found.EnvFile,
		ComposeFiles:   found.ComposeFiles,
	}
}
