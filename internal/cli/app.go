package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/kris-hansen/dctl/internal/config"
	"github.com/kris-hansen/dctl/internal/process"
	"github.com/kris-hansen/dctl/internal/project"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App carries the state shared by all commands: global flags and the
// collaborators commands talk to.
type App struct {
	ConfigPath string
	Verbose    bool
	Print      bool

	// Executor runs the container binary. Nil means a process.Runner
	// attached to the command's streams.
	Executor process.Executor
	// LookPath resolves the container binary for check-config.
	LookPath func(bin string) (string, error)
	Fs       afero.Fs
	Logger   *log.Logger
}

// NewApp returns an App wired to the real system
func NewApp() *App {
	return &App{
		LookPath: process.ResolveBinary,
		Fs:       afero.NewOsFs(),
		Logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "dctl",
			Level:  log.WarnLevel,
		}),
	}
}

func (a *App) applyVerbosity() {
	if a.Verbose {
		a.Logger.SetLevel(log.DebugLevel)
	}
}

func (a *App) configPath() string {
	if a.ConfigPath != "" {
		return a.ConfigPath
	}
	return config.GetConfigPath()
}

func (a *App) loadConfig() (*config.Config, error) {
	path := a.configPath()
	cfg, err := config.LoadFs(a.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s (run 'dctl init' first): %w", path, err)
	}
	a.Logger.Debug("loaded config", "path", path, "projects", len(cfg.Collections))
	return cfg, nil
}

func (a *App) load() (*config.Config, *project.Registry, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	reg, err := project.NewRegistry(cfg.Collections)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", a.configPath(), err)
	}
	return cfg, reg, nil
}

func (a *App) executor(cmd *cobra.Command) process.Executor {
	if a.Executor != nil {
		return a.Executor
	}
	r := process.NewRunner(a.Logger)
	r.Stdin = cmd.InOrStdin()
	r.Stdout = cmd.OutOrStdout()
	r.Stderr = cmd.ErrOrStderr()
	return r
}

// completeProject completes the PROJECT argument with registered aliases.
func (a *App) completeProject(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	_, reg, err := a.load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return reg.Aliases(), cobra.ShellCompDirectiveNoFileComp
}
