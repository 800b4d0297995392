package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kris-hansen/dctl/internal/config"
	"github.com/mitchellh/go-homedir"
)

// Project is a registered compose project
type Project struct {
	Alias          string
	Description    string
	UseProjectName bool
	EnvFile        string
	ComposeFiles   []string
}

// FromCollection builds a project from its config entry, applying defaults
// and expanding ~ in paths.
func FromCollection(c config.Collection) (Project, error) {
	if c.Alias == "" {
		return Project{}, errors.New("project alias must not be empty")
	}

	p := Project{
		Alias:          c.Alias,
		Description:    c.Description,
		UseProjectName: true,
	}
	if c.UseProjectName != nil {
		p.UseProjectName = *c.UseProjectName
	}

	if env := c.EnvFile(); env != "" {
		expanded, err := homedir.Expand(env)
		if err != nil {
			return Project{}, fmt.Errorf("project %q: failed to expand env file path: %w", c.Alias, err)
		}
		p.EnvFile = expanded
	}

	for _, file := range c.ComposeFiles {
		expanded, err := homedir.Expand(file)
		if err != nil {
			return Project{}, fmt.Errorf("project %q: failed to expand compose file path: %w", c.Alias, err)
		}
		p.ComposeFiles = append(p.ComposeFiles, expanded)
	}

	return p, nil
}

// ScopeArgs returns the tokens that scope a compose command to this project:
// -p alias, --env-file path and one -f per compose file, in that order.
func (p Project) ScopeArgs() []string {
	var args []string
	if p.UseProjectName {
		args = append(args, "-p", p.Alias)
	}
	if p.EnvFile != "" {
		args = append(args, "--env-file", p.EnvFile)
	}
	for _, file := range p.ComposeFiles {
		args = append(args, "-f", file)
	}
	return args
}

// Dir returns the directory holding the first compose file.
func (p Project) Dir() (string, error) {
	if len(p.ComposeFiles) == 0 {
		return "", fmt.Errorf("project %q has no compose files", p.Alias)
	}
	return filepath.Dir(p.ComposeFiles[0]), nil
}
