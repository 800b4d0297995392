package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// File kinds reported by the checker.
const (
	KindEnvFile     = "env file"
	KindComposeFile = "compose file"
)

// Item is the outcome of checking one file referenced by a project.
type Item struct {
	Kind string
	Path string
	Err  error
}

// OK reports whether the file passed the check.
func (i Item) OK() bool {
	return i.Err == nil
}

// Checker validates the files a project points at.
type Checker struct {
	fs afero.Fs
}

// NewChecker creates a checker reading from fs.
func NewChecker(fs afero.Fs) *Checker {
	return &Checker{fs: fs}
}

// Items checks the env file, if any, then every compose file in order.
func (c *Checker) Items(p Project) []Item {
	var items []Item
	if p.EnvFile != "" {
		items = append(items, Item{Kind: KindEnvFile, Path: p.EnvFile, Err: c.checkEnvFile(p.EnvFile)})
	}
	for _, file := range p.ComposeFiles {
		items = append(items, Item{Kind: KindComposeFile, Path: file, Err: c.checkComposeFile(file)})
	}
	return items
}

// Problems returns a readable line per failed check. An empty result means
// the project is usable.
func (c *Checker) Problems(p Project) []string {
	var problems []string
	if len(p.ComposeFiles) == 0 {
		problems = append(problems, "no compose files configured")
	}
	for _, item := range c.Items(p) {
		if !item.OK() {
			problems = append(problems, fmt.Sprintf("%s %s: %v", item.Kind, item.Path, item.Err))
		}
	}
	return problems
}

// checkEnvFile only requires a readable file. Compose's dotenv syntax is
// looser than any parser here (bare VAR lines inherit from the environment).
func (c *Checker) checkEnvFile(path string) error {
	if err := c.checkRegular(path); err != nil {
		return err
	}

	f, err := c.fs.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}
	return f.Close()
}

func (c *Checker) checkComposeFile(path string) error {
	if err := c.checkRegular(path); err != nil {
		return err
	}

	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return err
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if len(doc) == 0 {
		return errors.New("file is empty")
	}
	return nil
}

func (c *Checker) checkRegular(path string) error {
	info, err := c.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.New("file not found")
		}
		return err
	}
	if info.IsDir() {
		return errors.New("is a directory")
	}
	return nil
}
