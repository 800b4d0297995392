package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	var stdout bytes.Buffer
	r := NewRunner(log.New(io.Discard))
	r.Stdin = strings.NewReader("")
	r.Stdout = &stdout
	r.Stderr = io.Discard
	return r, &stdout
}

func TestRunnerRun(t *testing.T) {
	r, stdout := newTestRunner(t)

	require.NoError(t, r.Run(context.Background(), "sh", []string{"-c", "echo hello"}))
	assert.Equal(t, "hello\n", stdout.String())
}

func TestRunnerRunExitCode(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.Run(context.Background(), "sh", []string{"-c", "exit 3"})
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.Code)
	assert.True(t, exitErr.Attached)
	assert.Equal(t, 3, ExitCode(err))
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestRunnerOutput(t *testing.T) {
	r, _ := newTestRunner(t)

	out, err := r.Output(context.Background(), "sh", []string{"-c", "printf 'a\\nb\\n'"})
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	_, err = r.Output(context.Background(), "sh", []string{"-c", "echo boom >&2; exit 2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 2, ExitCode(err))
}

func TestRunnerMissingBinary(t *testing.T) {
	r, _ := newTestRunner(t)

	err := r.Run(context.Background(), "dctl-definitely-not-a-binary", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start")
	assert.Equal(t, 1, ExitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(errors.New("plain")))
	assert.Equal(t, 7, ExitCode(&ExitError{Code: 7}))
}

func TestCommandLine(t *testing.T) {
	line := CommandLine("docker", []string{"compose", "exec", "web", "sh", "-c", "echo hi"})

	words, err := shellquote.Split(line)
	require.NoError(t, err)
	assert.Equal(t, []string{"docker", "compose", "exec", "web", "sh", "-c", "echo hi"}, words)
}
