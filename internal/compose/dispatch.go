package compose

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/kris-hansen/dctl/internal/config"
	"github.com/kris-hansen/dctl/internal/process"
	"github.com/kris-hansen/dctl/internal/project"
)

// Argv assembles the arguments passed to the container binary:
// "compose", the project scope, the compiled verb and the configured
// default arguments for the verb.
func Argv(p project.Project, verb Verb, inv Invocation, defaults config.DefaultCommandArgs) ([]string, error) {
	spec, ok := Lookup(verb)
	if !ok {
		return nil, fmt.Errorf("unsupported compose command %q", verb)
	}

	argv := []string{"compose"}
	argv = append(argv, p.ScopeArgs()...)
	argv = append(argv, spec.Compile(inv)...)
	return append(argv, defaults.Args()...), nil
}

// Dispatcher resolves projects and runs compose commands against them.
type Dispatcher struct {
	cfg      *config.Config
	registry *project.Registry
	exec     process.Executor
	logger   *log.Logger
}

// NewDispatcher creates a dispatcher.
func NewDispatcher(cfg *config.Config, registry *project.Registry, exec process.Executor, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{cfg: cfg, registry: registry, exec: exec, logger: logger}
}

// Command returns the binary and arguments for running verb on the project
// registered as alias. Unknown aliases yield an error wrapping
// project.ErrNotFound.
func (d *Dispatcher) Command(alias string, verb Verb, inv Invocation) (string, []string, error) {
	p, err := d.registry.Resolve(alias)
	if err != nil {
		return "", nil, err
	}

	argv, err := Argv(p, verb, inv, d.cfg.DefaultArgsFor(string(verb)))
	if err != nil {
		return "", nil, err
	}
	return d.cfg.Main.DockerBin, argv, nil
}

// Dispatch runs verb on the project registered as alias, attached to the
// terminal. A non-zero exit of the child is returned as *process.ExitError.
func (d *Dispatcher) Dispatch(ctx context.Context, alias string, verb Verb, inv Invocation) error {
	bin, argv, err := d.Command(alias, verb, inv)
	if err != nil {
		return err
	}

	d.logger.Debug("dispatching", "project", alias, "verb", verb)
	if err := d.exec.Run(ctx, bin, argv); err != nil {
		return fmt.Errorf("compose %s on %q failed: %w", verb, alias, err)
	}
	return nil
}
