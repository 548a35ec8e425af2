package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/infra/yamlfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Load_Missing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "registry.yaml"))

	reg, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewRegistry(), reg)
}

func TestStore_SaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "registry.yaml")
	store := NewStore(path)

	reg := domain.NewRegistry()
	reg.Workspace("default").Projects["api"] = domain.ProjectEntry{Path: "/src/api"}
	reg.Workspace("work").Projects["web"] = domain.ProjectEntry{Path: "/src/web"}
	reg.CurrentWorkspace = "work"
	require.NoError(t, store.Save(reg))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, reg, loaded)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `current_workspace: work
workspaces:
  default:
    projects:
      api:
        path: /src/api
  work:
    projects:
      web:
        path: /src/web
`, string(data))
}

func TestStore_Load_CoercesShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workspaces:\n  lab:\n"), 0o644))

	reg, err := NewStore(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "default", reg.CurrentWorkspace)
	require.Contains(t, reg.Workspaces, "lab")
	assert.NotNil(t, reg.Workspaces["lab"].Projects)
}

func TestStore_Load_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workspaces: [\n"), 0o644))

	reg, err := NewStore(path).Load()

	var perr *yamlfile.ParseError
	assert.ErrorAs(t, err, &perr)
	assert.Nil(t, reg)
}
