package plugins

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho plugin\n"), 0o755))
	return path
}

func byName(set domain.PluginSet) map[string]domain.Plugin {
	out := map[string]domain.Plugin{}
	for _, p := range set.Plugins {
		out[p.Name] = p
	}
	return out
}

func TestLoader_Load_PathPlugins(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	bin := t.TempDir()
	writeExecutable(t, bin, "ek-deploy")
	writeExecutable(t, bin, "ek-list")
	writeExecutable(t, bin, "other-tool")
	require.NoError(t, os.WriteFile(filepath.Join(bin, "ek-notexec"), []byte("x"), 0o644))

	set := NewLoaderWithPath("", bin).Load(map[string]bool{"list": true})

	plugins := byName(set)
	require.Len(t, plugins, 2)
	assert.Equal(t, domain.PluginLoaded, plugins["deploy"].Status)
	assert.Equal(t, filepath.Join(bin, "ek-deploy"), plugins["deploy"].Executable)
	assert.Equal(t, domain.PluginSourcePath, plugins["deploy"].Source)
	assert.Equal(t, domain.PluginAvailable, plugins["list"].Status)
	assert.Error(t, plugins["list"].Err)
	assert.Len(t, set.Loaded(), 1)
}

func TestLoader_Load_FirstPathWins(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	first, second := t.TempDir(), t.TempDir()
	writeExecutable(t, first, "ek-x")
	writeExecutable(t, second, "ek-x")

	set := NewLoaderWithPath("", first+string(os.PathListSeparator)+second).Load(nil)

	require.Len(t, set.Plugins, 1)
	assert.Equal(t, filepath.Join(first, "ek-x"), set.Plugins[0].Executable)
}

func TestLoader_Load_Manifest(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	bin := t.TempDir()
	tool := writeExecutable(t, bin, "notes-tool")
	writeExecutable(t, bin, "ek-notes")

	manifestPath := filepath.Join(t.TempDir(), "plugins.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte(`
[[plugin]]
name = "notes"
command = "notes-tool"
description = "Project notes"

[[plugin]]
name = "ghost"
command = "missing-binary"

[[plugin]]
name = "status"

[[plugin]]
command = "nameless"
`), 0o644))

	set := NewLoaderWithPath(manifestPath, bin).Load(map[string]bool{"status": true})

	plugins := byName(set)
	notes := plugins["notes"]
	assert.Equal(t, domain.PluginLoaded, notes.Status)
	assert.Equal(t, tool, notes.Executable)
	assert.Equal(t, domain.PluginSourceManifest, notes.Source)
	assert.Equal(t, "Project notes", notes.Detail())

	ghost := plugins["ghost"]
	assert.Equal(t, domain.PluginFailed, ghost.Status)
	assert.ErrorIs(t, ghost.Err, domain.ErrPluginNotFound)

	assert.Equal(t, domain.PluginFailed, plugins["status"].Status)
	assert.Equal(t, domain.PluginFailed, plugins[""].Status)
	assert.Equal(t, 1, set.Count(domain.PluginLoaded))
	assert.Equal(t, 3, set.Count(domain.PluginFailed))
}

func TestLoader_Load_DefaultCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	bin := t.TempDir()
	writeExecutable(t, bin, "ek-lint")
	manifestPath := filepath.Join(t.TempDir(), "plugins.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("[[plugin]]\nname = \"lint\"\n"), 0o644))

	set := NewLoaderWithPath(manifestPath, bin).Load(nil)

	require.Len(t, set.Plugins, 1)
	assert.Equal(t, "ek-lint", set.Plugins[0].Command)
	assert.Equal(t, domain.PluginSourceManifest, set.Plugins[0].Source)
	assert.Equal(t, domain.PluginLoaded, set.Plugins[0].Status)
}

func TestLoader_Load_BadManifest(t *testing.T) {
	manifestPath := filepath.Join(t.TempDir(), "plugins.toml")
	require.NoError(t, os.WriteFile(manifestPath, []byte("[[plugin]\nname = "), 0o644))

	set := NewLoaderWithPath(manifestPath, "").Load(nil)

	require.Len(t, set.Plugins, 1)
	assert.Equal(t, "plugins.toml", set.Plugins[0].Name)
	assert.Equal(t, domain.PluginFailed, set.Plugins[0].Status)
	assert.Error(t, set.Plugins[0].Err)
}

func TestLoader_Load_Nothing(t *testing.T) {
	set := NewLoaderWithPath(filepath.Join(t.TempDir(), "none.toml"), t.TempDir()).Load(nil)

	assert.Empty(t, set.Plugins)
}
