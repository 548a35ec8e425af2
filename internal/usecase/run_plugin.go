package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/eaglekit/ek/internal/domain"
)

// Environment passed to plugins.
const (
	PluginEnvConfigDir = "EK_CONFIG_DIR"
	PluginEnvWorkspace = "EK_WORKSPACE"
)

// RunPluginInput contains the parameters for running a plugin.
type RunPluginInput struct {
	Plugin    domain.Plugin
	Workspace string // Workspace override; empty uses the current workspace
	Args      []string
}

// RunPluginOutput contains the plugin exit code.
type RunPluginOutput struct {
	ExitCode int
}

// RunPlugin is the use case for `ek <plugin> ...`.
type RunPlugin struct {
	registry  domain.RegistryRepository
	runner    domain.CommandRunner
	environ   func() []string
	configDir string
}

// NewRunPlugin creates a new RunPlugin use case.
func NewRunPlugin(registry domain.RegistryRepository, runner domain.CommandRunner, configDir string) *RunPlugin {
	return &RunPlugin{
		registry:  registry,
		runner:    runner,
		environ:   os.Environ,
		configDir: configDir,
	}
}

// Execute runs the plugin executable in the current directory.
func (uc *RunPlugin) Execute(ctx context.Context, in RunPluginInput) (*RunPluginOutput, error) {
	if in.Plugin.Status != domain.PluginLoaded || in.Plugin.Executable == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrPluginNotFound, in.Plugin.Name)
	}

	ws := in.Workspace
	if ws == "" {
		reg, err := uc.registry.Load()
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}
		ws = reg.WorkspaceName("")
	}

	cmd := domain.NewCommand(in.Plugin.Executable, in.Args, "")
	cmd.Env = domain.MergeEnv(uc.environ(), map[string]string{
		PluginEnvConfigDir: uc.configDir,
		PluginEnvWorkspace: ws,
	})
	code, err := uc.runner.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run plugin %s: %w", in.Plugin.Name, err)
	}
	return &RunPluginOutput{ExitCode: code}, nil
}
