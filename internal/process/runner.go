package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
)

// Executor runs external commands.
type Executor interface {
	// Run executes the command attached to the runner's streams.
	Run(ctx context.Context, name string, args []string) error
	// Output executes the command and returns its stdout.
	Output(ctx context.Context, name string, args []string) (string, error)
}

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Command string
	Code    int
	Stderr  string
	// Attached is set when the command wrote straight to the terminal, so
	// its own output already explains the failure.
	Attached bool
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// ExitCode maps an error returned by an Executor to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}

// Runner is the os/exec backed Executor
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger *log.Logger
}

// NewRunner creates a runner wired to the current process streams
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Run starts the command and waits for it to finish
func (r *Runner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Env = os.Environ()

	r.logger.Debug("running", "cmd", CommandLine(name, args))

	if err := cmd.Run(); err != nil {
		return wrapError(name, args, err, true)
	}
	return nil
}

// Output runs the command and captures stdout
func (r *Runner) Output(ctx context.Context, name string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()

	r.logger.Debug("capturing", "cmd", CommandLine(name, args))

	out, err := cmd.Output()
	if err != nil {
		return string(out), wrapError(name, args, err, false)
	}
	return string(out), nil
}

// CommandLine renders a command as a shell-quoted string.
func CommandLine(name string, args []string) string {
	return shellquote.Join(append([]string{name}, args...)...)
}

func wrapError(name string, args []string, err error, attached bool) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{
			Command:  CommandLine(name, args),
			Code:     exitErr.ExitCode(),
			Stderr:   string(exitErr.Stderr),
			Attached: attached,
		}
	}
	return fmt.Errorf("failed to start %s: %w", name, err)
}
