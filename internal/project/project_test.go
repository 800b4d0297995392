package project

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kris-hansen/dctl/internal/config"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestScopeArgs(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		want    []string
	}{
		{
			name: "full",
			project: Project{
				Alias:          "app",
				UseProjectName: true,
				EnvFile:        "/p/.env",
				ComposeFiles:   []string{"/p/a.yml", "/p/b.yml"},
			},
			want: []string{"-p", "app", "--env-file", "/p/.env", "-f", "/p/a.yml", "-f", "/p/b.yml"},
		},
		{
			name: "without project name",
			project: Project{
				Alias:        "app",
				EnvFile:      "/p/.env",
				ComposeFiles: []string{"/p/a.yml"},
			},
			want: []string{"--env-file", "/p/.env", "-f", "/p/a.yml"},
		},
		{
			name: "without env file",
			project: Project{
				Alias:          "app",
				UseProjectName: true,
				ComposeFiles:   []string{"/p/b.yml", "/p/a.yml"},
			},
			want: []string{"-p", "app", "-f", "/p/b.yml", "-f", "/p/a.yml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.project.ScopeArgs())
		})
	}
}

func TestFromCollection(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)

	p, err := FromCollection(config.Collection{
		Alias:          "app",
		EnviromentFile: "~/app/.env",
		ComposeFiles:   []string{"~/app/compose.yml", "/abs/override.yml"},
	})
	require.NoError(t, err)

	assert.True(t, p.UseProjectName)
	assert.Equal(t, filepath.Join(home, "app", ".env"), p.EnvFile)
	assert.Equal(t, []string{filepath.Join(home, "app", "compose.yml"), "/abs/override.yml"}, p.ComposeFiles)

	p, err = FromCollection(config.Collection{
		Alias:          "app",
		UseProjectName: boolPtr(false),
		ComposeFiles:   []string{"/p/compose.yml"},
	})
	require.NoError(t, err)
	assert.False(t, p.UseProjectName)

	_, err = FromCollection(config.Collection{ComposeFiles: []string{"/p/compose.yml"}})
	assert.Error(t, err)
}

func TestDir(t *testing.T) {
	p := Project{Alias: "app", ComposeFiles: []string{"/srv/app/docker/compose.yml", "/other/x.yml"}}
	dir, err := p.Dir()
	require.NoError(t, err)
	assert.Equal(t, "/srv/app/docker", dir)

	_, err = Project{Alias: "empty"}.Dir()
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	reg, err := NewRegistry([]config.Collection{
		{Alias: "web", ComposeFiles: []string{"/web/compose.yml"}},
		{Alias: "api", ComposeFiles: []string{"/api/compose.yml"}},
		{Alias: "db", ComposeFiles: []string{"/db/compose.yml"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"web", "api", "db"}, reg.Aliases())

	all := reg.All()
	require.Len(t, all, 3)
	assert.Equal(t, "api", all[1].Alias)

	p, ok := reg.Lookup("db")
	require.True(t, ok)
	assert.Equal(t, []string{"/db/compose.yml"}, p.ComposeFiles)

	_, ok = reg.Lookup("nope")
	assert.False(t, ok)

	_, err = reg.Resolve("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), `"nope"`)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]config.Collection{
		{Alias: "web", ComposeFiles: []string{"/a.yml"}},
		{Alias: "web", ComposeFiles: []string{"/b.yml"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}
