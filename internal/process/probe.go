package process

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ResolveBinary returns the absolute path of the container runtime binary.
func ResolveBinary(bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("container binary %q not found: %w", bin, err)
	}
	return path, nil
}

// ComposeVersion checks that bin supports the compose subcommand and returns
// its version string.
func ComposeVersion(ctx context.Context, e Executor, bin string) (string, error) {
	out, err := e.Output(ctx, bin, []string{"compose", "version", "--short"})
	if err != nil {
		return "", fmt.Errorf("docker compose is not available: %w", err)
	}
	return strings.TrimSpace(out), nil
}
