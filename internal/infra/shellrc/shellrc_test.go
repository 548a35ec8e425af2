package shellrc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func block(t *testing.T) string {
	t.Helper()
	b, err := domain.ShellBlock("bash")
	require.NoError(t, err)
	return b
}

func TestEditor_Install_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bashrc")
	require.NoError(t, os.WriteFile(path, []byte("export A=1\n"), 0o644))
	e := NewEditor()

	first, err := e.Install(path, block(t))
	require.NoError(t, err)
	second, err := e.Install(path, block(t))
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export A=1\n\n"+block(t), string(data))
}

func TestEditor_Install_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".config", "fish", "config.fish")

	changed, err := NewEditor().Install(path, block(t))

	require.NoError(t, err)
	assert.True(t, changed)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, block(t), string(data))
}

func TestEditor_Uninstall_RestoresFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".zshrc")
	original := "export A=1\nalias ll='ls -l'\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))
	e := NewEditor()
	_, err := e.Install(path, block(t))
	require.NoError(t, err)

	removed, err := e.Uninstall(path)
	require.NoError(t, err)

	assert.True(t, removed)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestEditor_Uninstall_KeepsTrailingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".bashrc")
	content := "a\n" + domain.ShellBlockBegin + "\nek() { :; }\n" + domain.ShellBlockEnd + "\nb\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	removed, err := NewEditor().Uninstall(path)
	require.NoError(t, err)

	assert.True(t, removed)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestEditor_Uninstall_NotInstalled(t *testing.T) {
	dir := t.TempDir()
	e := NewEditor()

	removed, err := e.Uninstall(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.False(t, removed)

	path := filepath.Join(dir, ".bashrc")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))
	removed, err = e.Uninstall(path)
	require.NoError(t, err)
	assert.False(t, removed)
}
