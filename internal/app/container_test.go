package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/infra/envconfig"
	"github.com/eaglekit/ek/internal/infra/logging"
	"github.com/eaglekit/ek/internal/testutil"
)

func TestDefaultGlobalExcludes_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", "git", "ignore"), defaultGlobalExcludes("/home/u"))
}

func TestDefaultGlobalExcludes_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	assert.Equal(t, filepath.Join("/home/u", ".config", "git", "ignore"), defaultGlobalExcludes("/home/u"))
}

func TestNewConfig(t *testing.T) {
	// Setup
	t.Setenv("USER", "alice")
	t.Setenv("SHELL", "/bin/zsh")
	env := &envconfig.Config{
		ConfigDir: "/tmp/ek",
		Workspace: "work",
		Python:    "/opt/py",
		NoColor:   true,
	}

	// Execute
	cfg := newConfig(env)

	// Assert
	assert.Equal(t, domain.NewPaths("/tmp/ek"), cfg.Paths)
	assert.Equal(t, "work", cfg.Workspace)
	assert.Equal(t, "alice", cfg.User)
	assert.Equal(t, "/bin/zsh", cfg.ShellEnv)
	assert.Equal(t, "/opt/py", cfg.Platform.Python)
	assert.True(t, cfg.NoColor)
}

func TestNewConfig_UsernameFallback(t *testing.T) {
	t.Setenv("USER", "")
	t.Setenv("USERNAME", "bob")

	cfg := newConfig(&envconfig.Config{ConfigDir: "/tmp/ek"})

	assert.Equal(t, "bob", cfg.User)
}

func TestNewWithDeps(t *testing.T) {
	// Setup
	cfg := Config{Paths: domain.NewPaths(t.TempDir())}
	gitClient := &testutil.MockGit{Branch: "main"}
	runner := &testutil.MockCommandRunner{}

	// Execute
	c := NewWithDeps(cfg, gitClient, runner, logging.Discard())
	t.Cleanup(func() { _ = c.Close() })

	// Assert
	assert.Same(t, gitClient, c.Git)
	assert.Same(t, runner, c.Runner)
	assert.NotNil(t, c.Registry)
	assert.NotNil(t, c.Journal)
	assert.NotNil(t, c.AddProjectUseCase())
	assert.NotNil(t, c.RunTaskUseCase())
}

func TestContainer_LoadPlugins_NoManifest(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	c := NewWithDeps(Config{Paths: domain.NewPaths(t.TempDir())}, &testutil.MockGit{}, &testutil.MockCommandRunner{}, logging.Discard())

	set := c.LoadPlugins(map[string]bool{"run": true})

	assert.Empty(t, set.Loaded())
}

func TestContainer_Close_Idle(t *testing.T) {
	c := NewWithDeps(Config{Paths: domain.NewPaths(t.TempDir())}, &testutil.MockGit{}, &testutil.MockCommandRunner{}, logging.Discard())

	require.NoError(t, c.Close())
}
