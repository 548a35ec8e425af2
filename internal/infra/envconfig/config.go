// Package envconfig loads ek settings from EK_* environment variables.
package envconfig

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"

	"github.com/eaglekit/ek/internal/domain"
)

// Prefix is prepended to every variable name.
const Prefix = "EK"

// Config holds settings read from the environment.
type Config struct {
	ConfigDir string `envconfig:"CONFIG_DIR"` // Defaults to <user config dir>/eaglekit
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	Workspace string `envconfig:"WORKSPACE"` // Overrides current_workspace when set
	Python    string `envconfig:"PYTHON"`    // Interpreter for python script tasks
	NoColor   bool   `envconfig:"NO_COLOR" default:"false"`
}

// Load reads the configuration and fills in derived defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config with prefix %s: %w", Prefix, err)
	}
	if cfg.ConfigDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		cfg.ConfigDir = filepath.Join(base, domain.AppName)
	}
	cfg.ConfigDir = domain.ExpandHome(cfg.ConfigDir)
	return &cfg, nil
}

// Paths returns the global file locations under ConfigDir.
func (c *Config) Paths() domain.Paths {
	return domain.NewPaths(c.ConfigDir)
}

// PythonInterpreter returns EK_PYTHON, else the first of python3 and python on PATH.
// It falls back to "python3" so the spawn error names a sensible program.
func (c *Config) PythonInterpreter() string {
	if c.Python != "" {
		return c.Python
	}
	for _, name := range []string{"python3", "python"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return "python3"
}
