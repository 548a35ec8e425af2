package domain

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultWorkspace is the workspace used when none is configured.
const DefaultWorkspace = "default"

// ProjectEntry is a registered project as stored in the registry.
type ProjectEntry struct {
	Path string `yaml:"path"`
}

// Workspace is a named partition of the registry.
type Workspace struct {
	Projects map[string]ProjectEntry `yaml:"projects"`
}

// Registry represents the registry.yaml file structure.
type Registry struct {
	CurrentWorkspace string                `yaml:"current_workspace"`
	Workspaces       map[string]*Workspace `yaml:"workspaces"`
}

// NewRegistry returns a registry with a single empty default workspace.
func NewRegistry() *Registry {
	return &Registry{
		CurrentWorkspace: DefaultWorkspace,
		Workspaces: map[string]*Workspace{
			DefaultWorkspace: {Projects: map[string]ProjectEntry{}},
		},
	}
}

// EnsureShape repairs missing parts of the document in place.
// Every workspace ends up with a non-nil projects map. Calling it twice is a no-op.
func (r *Registry) EnsureShape() {
	if r.CurrentWorkspace == "" {
		r.CurrentWorkspace = DefaultWorkspace
	}
	if r.Workspaces == nil {
		r.Workspaces = map[string]*Workspace{
			DefaultWorkspace: {Projects: map[string]ProjectEntry{}},
		}
	}
	for name, ws := range r.Workspaces {
		if ws == nil {
			r.Workspaces[name] = &Workspace{Projects: map[string]ProjectEntry{}}
			continue
		}
		if ws.Projects == nil {
			ws.Projects = map[string]ProjectEntry{}
		}
	}
}

// WorkspaceName returns override if set, otherwise the current workspace.
func (r *Registry) WorkspaceName(override string) string {
	if override != "" {
		return override
	}
	if r.CurrentWorkspace == "" {
		return DefaultWorkspace
	}
	return r.CurrentWorkspace
}

// Workspace returns the named workspace, creating it if missing.
func (r *Registry) Workspace(name string) *Workspace {
	r.EnsureShape()
	ws, ok := r.Workspaces[name]
	if !ok {
		ws = &Workspace{Projects: map[string]ProjectEntry{}}
		r.Workspaces[name] = ws
	}
	return ws
}

// WorkspaceNames returns all workspace names sorted.
func (r *Registry) WorkspaceNames() []string {
	names := make([]string, 0, len(r.Workspaces))
	for name := range r.Workspaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the project registered under name in the workspace.
func (r *Registry) Lookup(workspace, name string) (Project, error) {
	ws, ok := r.Workspaces[workspace]
	if !ok || ws == nil {
		return Project{}, ErrProjectNotFound
	}
	entry, ok := ws.Projects[name]
	if !ok {
		return Project{}, ErrProjectNotFound
	}
	return Project{Name: name, Path: ExpandHome(entry.Path)}, nil
}

// Projects returns every project of the workspace sorted by name.
func (r *Registry) Projects(workspace string) []Project {
	ws, ok := r.Workspaces[workspace]
	if !ok || ws == nil {
		return nil
	}
	projects := make([]Project, 0, len(ws.Projects))
	for name, entry := range ws.Projects {
		projects = append(projects, Project{Name: name, Path: ExpandHome(entry.Path)})
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Name < projects[j].Name
	})
	return projects
}

// ResolveByDir returns the project whose resolved path is the longest ancestor
// of (or equal to) dir. Both sides are symlink-resolved before comparison.
// Equal-length matches are broken by the smaller project name.
func (r *Registry) ResolveByDir(workspace, dir string) (Project, error) {
	cwd := ResolvePath(dir)

	var best Project
	bestLen := -1
	for _, p := range r.Projects(workspace) {
		root := ResolvePath(p.Path)
		if !IsWithin(root, cwd) {
			continue
		}
		// Projects() is sorted by name, so strict > keeps the smaller name on ties.
		if len(root) > bestLen {
			best = Project{Name: p.Name, Path: root}
			bestLen = len(root)
		}
	}
	if bestLen < 0 {
		return Project{}, ErrNoProjectForDir
	}
	return best, nil
}

// IsWithin reports whether path equals root or is nested under it.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) && !filepath.IsAbs(rel)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// ResolvePath makes path absolute and resolves symlinks when possible.
func ResolvePath(path string) string {
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		abs = path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return filepath.Clean(abs)
}
