package status

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kris-hansen/dctl/internal/compose"
	"github.com/kris-hansen/dctl/internal/config"
	"github.com/kris-hansen/dctl/internal/process"
	"github.com/kris-hansen/dctl/internal/project"
	"github.com/sourcegraph/conc/iter"
)

// Report pairs a project with its computed status.
type Report struct {
	Project project.Project
	Result  Result
}

// Checker reports configuration problems for a project.
type Checker interface {
	Problems(p project.Project) []string
}

// Collector computes the status of projects by counting their containers.
type Collector struct {
	exec        process.Executor
	checker     Checker
	dockerBin   string
	parallelism int
	logger      *log.Logger
}

// NewCollector creates a collector. parallelism bounds how many projects are
// queried at once; values below 1 mean sequential.
func NewCollector(exec process.Executor, checker Checker, dockerBin string, parallelism int, logger *log.Logger) *Collector {
	if parallelism < 1 {
		parallelism = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Collector{
		exec:        exec,
		checker:     checker,
		dockerBin:   dockerBin,
		parallelism: parallelism,
		logger:      logger,
	}
}

// Collect returns one report per project, in the order given.
func (c *Collector) Collect(ctx context.Context, projects []project.Project) ([]Report, error) {
	mapper := iter.Mapper[project.Project, Report]{MaxGoroutines: c.parallelism}
	return mapper.MapErr(projects, func(p *project.Project) (Report, error) {
		return c.collectOne(ctx, *p)
	})
}

func (c *Collector) collectOne(ctx context.Context, p project.Project) (Report, error) {
	if problems := c.checker.Problems(p); len(problems) > 0 {
		c.logger.Debug("invalid project config", "project", p.Alias, "problems", problems)
		return Report{Project: p, Result: Invalid(problems...)}, nil
	}

	total, err := c.count(ctx, p, compose.Invocation{}.Set("all", "true").Set("quiet", "true"))
	if err != nil {
		return Report{}, err
	}
	running, err := c.count(ctx, p, compose.Invocation{}.Set("quiet", "true"))
	if err != nil {
		return Report{}, err
	}

	c.logger.Debug("counted containers", "project", p.Alias, "running", running, "total", total)
	return Report{Project: p, Result: Counts(running, total)}, nil
}

func (c *Collector) count(ctx context.Context, p project.Project, inv compose.Invocation) (int, error) {
	argv, err := compose.Argv(p, compose.Ps, inv, config.Default(string(compose.Ps)))
	if err != nil {
		return 0, err
	}

	out, err := c.exec.Output(ctx, c.dockerBin, argv)
	if err != nil {
		return 0, fmt.Errorf("failed to list containers of %q: %w", p.Alias, err)
	}
	return countLines(out), nil
}

func countLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
