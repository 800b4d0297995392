package discover

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/subosito/gotenv"
)

// projectNameVar names the project in a .env file, as compose reads it.
const projectNameVar = "COMPOSE_PROJECT_NAME"

// Compose file names in the order docker compose looks them up.
var (
	composeNames  = []string{"compose.yaml", "compose.yml", "docker-compose.yaml", "docker-compose.yml"}
	overrideNames = []string{"compose.override.yaml", "compose.override.yml", "docker-compose.override.yaml", "docker-compose.override.yml"}
)

// Project is what was found in a directory
type Project struct {
	Dir          string
	Alias        string
	ComposeFiles []string
	EnvFile      string
}

// Scan looks for compose files and a .env file in dir. The main compose
// file comes first, followed by its override if present. The alias is the
// COMPOSE_PROJECT_NAME of the .env file when set, else the directory name.
func Scan(fs afero.Fs, dir string) (Project, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Project{}, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	found := Project{Dir: abs, Alias: ProjectName(abs)}

	primary := firstExisting(fs, abs, composeNames)
	if primary == "" {
		return Project{}, fmt.Errorf("no compose file found in %s", abs)
	}
	found.ComposeFiles = append(found.ComposeFiles, primary)

	if override := firstExisting(fs, abs, overrideNames); override != "" {
		found.ComposeFiles = append(found.ComposeFiles, override)
	}

	if env := firstExisting(fs, abs, []string{".env"}); env != "" {
		found.EnvFile = env
		if name := ProjectName(envProjectName(fs, env)); name != "" {
			found.Alias = name
		}
	}

	return found, nil
}

// ProjectName derives a compose project name from a directory path:
// lowercase letters, digits, dashes and underscores, starting with a letter
// or digit.
func ProjectName(path string) string {
	base := strings.ToLower(filepath.Base(path))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_':
			if b.Len() > 0 {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// envProjectName reads COMPOSE_PROJECT_NAME from an env file. Parsing stops
// at the first line gotenv does not understand.
func envProjectName(fs afero.Fs, path string) string {
	f, err := fs.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()
	return gotenv.Parse(f)[projectNameVar]
}

func firstExisting(fs afero.Fs, dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		info, err := fs.Stat(path)
		if err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
