package cli

import (
	"fmt"
	"path/filepath"

	"github.com/kris-hansen/dctl/internal/config"
	"github.com/kris-hansen/dctl/internal/discover"
	"github.com/spf13/cobra"
)

type addOptions struct {
	alias         string
	description   string
	envFile       string
	composeFiles  []string
	noProjectName bool
}

// AddCmd returns the add command
func AddCmd(app *App) *cobra.Command {
	opts := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add [DIR]",
		Short: "Register a compose project",
		Long: `Registers a project in the configuration file. Without -f, DIR (default: the
current directory) is scanned for compose files and a .env file.`,
		GroupID: groupProject,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runAdd(app, cmd, dir, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.alias, "alias", "a", "", "project alias (default: directory name)")
	flags.StringVarP(&opts.description, "description", "d", "", "project description")
	flags.StringVar(&opts.envFile, "env-file", "", "env file passed to compose")
	flags.StringArrayVarP(&opts.composeFiles, "file", "f", nil, "compose file, repeatable, in merge order")
	flags.BoolVar(&opts.noProjectName, "no-project-name", false, "do not pass the alias as compose project name")

	return cmd
}

func runAdd(app *App, cmd *cobra.Command, dir string, opts *addOptions) error {
	cfg, err := app.loadConfig()
	if err != nil {
		return err
	}

	col, err := buildCollection(app, dir, opts)
	if err != nil {
		return err
	}

	if err := cfg.AddCollection(col); err != nil {
		return err
	}
	if err := cfg.Save(app.Fs, app.configPath()); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "✓ Project %q registered\n", col.Alias)
	for _, f := range col.ComposeFiles {
		fmt.Fprintf(out, "  -f %s\n", f)
	}
	if col.EnviromentFile != "" {
		fmt.Fprintf(out, "  --env-file %s\n", col.EnviromentFile)
	}

	return nil
}

func buildCollection(app *App, dir string, opts *addOptions) (config.Collection, error) {
	var col config.Collection

	if len(opts.composeFiles) > 0 {
		for _, f := range opts.composeFiles {
			abs, err := filepath.Abs(f)
			if err != nil {
				return col, fmt.Errorf("failed to resolve %s: %w", f, err)
			}
			col.ComposeFiles = append(col.ComposeFiles, abs)
		}
		col.Alias = discover.ProjectName(filepath.Dir(col.ComposeFiles[0]))
	} else {
		found, err := discover.Scan(app.Fs, dir)
		if err != nil {
			return col, err
		}
		col = collectionFor(found)
	}

	if opts.alias != "" {
		col.Alias = opts.alias
	}
	if col.Alias == "" {
		return col, fmt.Errorf("could not derive an alias, use --alias")
	}
	col.Description = opts.description

	if opts.envFile != "" {
		abs, err := filepath.Abs(opts.envFile)
		if err != nil {
			return col, fmt.Errorf("failed to resolve %s: %w", opts.envFile, err)
		}
		col.EnviromentFile = abs
	}

	if opts.noProjectName {
		useProjectName := false
		col.UseProjectName = &useProjectName
	}

	return col, nil
}
