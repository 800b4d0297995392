package status

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/kris-hansen/dctl/internal/process/processtest"
	"github.com/kris-hansen/dctl/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker map[string][]string

func (f fakeChecker) Problems(p project.Project) []string {
	return f[p.Alias]
}

func psArgs(alias string, flags ...string) []string {
	args := []string{"compose", "-p", alias, "-f", "/" + alias + "/compose.yml", "ps"}
	return append(args, flags...)
}

func projects(aliases ...string) []project.Project {
	var out []project.Project
	for _, a := range aliases {
		out = append(out, project.Project{Alias: a, UseProjectName: true, ComposeFiles: []string{"/" + a + "/compose.yml"}})
	}
	return out
}

func TestCollect(t *testing.T) {
	fake := processtest.New().
		On(psArgs("web", "--all", "--quiet"), "a1\nb2\nc3\n", nil).
		On(psArgs("web", "--quiet"), "a1\nb2\nc3\n", nil).
		On(psArgs("api", "--all", "--quiet"), "a1\nb2\nc3\n", nil).
		On(psArgs("api", "--quiet"), "a1\n\nb2\n", nil).
		On(psArgs("db", "--all", "--quiet"), "", nil).
		On(psArgs("db", "--quiet"), "", nil)
	checker := fakeChecker{"broken": {"compose file /broken/compose.yml: file not found"}}

	for _, parallelism := range []int{1, 4} {
		c := NewCollector(fake, checker, "docker", parallelism, log.New(io.Discard))
		reports, err := c.Collect(context.Background(), projects("web", "api", "db", "broken"))
		require.NoError(t, err)
		require.Len(t, reports, 4)

		assert.Equal(t, "web", reports[0].Project.Alias)
		assert.Equal(t, Running, reports[0].Result.State())
		assert.Equal(t, 3, reports[0].Result.Total)

		assert.Equal(t, "api", reports[1].Project.Alias)
		assert.Equal(t, PartialRunning, reports[1].Result.State())
		assert.Equal(t, 2, reports[1].Result.Running)

		assert.Equal(t, "db", reports[2].Project.Alias)
		assert.Equal(t, Stopped, reports[2].Result.State())

		assert.Equal(t, "broken", reports[3].Project.Alias)
		assert.Equal(t, ConfigError, reports[3].Result.State())
		assert.Equal(t, []string{"compose file /broken/compose.yml: file not found"}, reports[3].Result.Problems)
	}

	for _, call := range fake.Calls() {
		assert.NotContains(t, call.Args, "broken", "no ps for an invalid project")
	}
}

func TestCollectPsFailure(t *testing.T) {
	fake := processtest.New()
	fake.Default = processtest.Response{Err: errors.New("daemon not running")}

	c := NewCollector(fake, fakeChecker{}, "docker", 1, log.New(io.Discard))
	_, err := c.Collect(context.Background(), projects("web"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"web"`)
	assert.Contains(t, err.Error(), "daemon not running")
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 0, countLines("\n \n"))
	assert.Equal(t, 2, countLines("abc\ndef"))
	assert.Equal(t, 3, countLines("a\nb\nc\n"))
}
