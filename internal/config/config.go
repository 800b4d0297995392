package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultDockerBin is used when the config does not name a binary.
	DefaultDockerBin = "docker"

	envPrefix   = "DCTL"
	envFilePath = "DCTL_CONFIG_FILE_PATH"
)

// Config represents the dctl configuration file
type Config struct {
	Main        Main         `mapstructure:"main" toml:"main"`
	Collections []Collection `mapstructure:"collections" toml:"collections,omitempty"`
}

// Main holds the [main] table
type Main struct {
	DockerBin          string               `mapstructure:"docker_bin" toml:"docker_bin"`
	Parallelism        int                  `mapstructure:"parallelism" toml:"parallelism,omitempty"`
	DefaultCommandArgs []DefaultCommandArgs `mapstructure:"default_command_args" toml:"default_command_args,omitempty"`
}

// Collection is one registered compose project as written in the config file
type Collection struct {
	Alias          string   `mapstructure:"alias" toml:"alias"`
	Description    string   `mapstructure:"description" toml:"description,omitempty"`
	UseProjectName *bool    `mapstructure:"use_project_name" toml:"use_project_name,omitempty"`
	EnviromentFile string   `mapstructure:"enviroment_file" toml:"enviroment_file,omitempty"`
	ComposeFiles   []string `mapstructure:"compose_files" toml:"compose_files"`

	// EnvironmentFile is the corrected spelling of enviroment_file. It is
	// read but never written.
	EnvironmentFile string `mapstructure:"environment_file" toml:"-"`
}

// EnvFile returns the configured env file under either spelling.
func (c Collection) EnvFile() string {
	if c.EnvironmentFile != "" {
		return c.EnvironmentFile
	}
	return c.EnviromentFile
}

// Load reads the config file from the specified path. Values can be
// overridden with DCTL_* environment variables, e.g. DCTL_MAIN_DOCKER_BIN.
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs is Load reading from fs.
func LoadFs(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("main.docker_bin", DefaultDockerBin)
	v.SetDefault("main.parallelism", 1)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		argsHook(),
		scalarHook(),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Main.Parallelism < 1 {
		cfg.Main.Parallelism = 1
	}

	return &cfg, nil
}

// Save writes the config to the specified path
func (c *Config) Save(fs afero.Fs, path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// AddCollection appends a project to the config. Aliases must be unique.
func (c *Config) AddCollection(col Collection) error {
	for _, existing := range c.Collections {
		if existing.Alias == col.Alias {
			return fmt.Errorf("project %q already exists in config", col.Alias)
		}
	}
	c.Collections = append(c.Collections, col)
	return nil
}

// GetConfigPath returns the path to the dctl config file
func GetConfigPath() string {
	if p := os.Getenv(envFilePath); p != "" {
		if expanded, err := homedir.Expand(p); err == nil {
			return expanded
		}
		return p
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "dctl", "config.toml")
	}

	home, err := homedir.Dir()
	if err != nil {
		return filepath.Join(".config", "dctl", "config.toml")
	}
	return filepath.Join(home, ".config", "dctl", "config.toml")
}
