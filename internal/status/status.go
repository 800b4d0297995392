package status

// State is the aggregate state of a project's containers.
type State int

const (
	Stopped State = iota
	Running
	PartialRunning
	ConfigError
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case PartialRunning:
		return "partial"
	case ConfigError:
		return "config error"
	default:
		return "stopped"
	}
}

// Classify derives a state from container counts. A project with no running
// container is stopped, including one with no containers at all. -1/-1 is
// the legacy marker for an unusable configuration.
func Classify(running, total int) State {
	switch {
	case running == 0:
		return Stopped
	case running == -1 && total == -1:
		return ConfigError
	case running == total && total > 0:
		return Running
	default:
		return PartialRunning
	}
}

// Result is either container counts or the list of configuration problems
// that prevented counting.
type Result struct {
	Running  int
	Total    int
	Problems []string
}

// Counts builds a result from container counts.
func Counts(running, total int) Result {
	return Result{Running: running, Total: total}
}

// Invalid builds a result for a project whose configuration cannot be used.
func Invalid(problems ...string) Result {
	return Result{Problems: problems}
}

// Valid reports whether the result carries counts.
func (r Result) Valid() bool {
	return len(r.Problems) == 0
}

// State classifies the result.
func (r Result) State() State {
	if !r.Valid() {
		return ConfigError
	}
	return Classify(r.Running, r.Total)
}
