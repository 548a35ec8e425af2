package domain

import (
	"path/filepath"
	"strings"
)

// AppName is the directory name used under the user config directory.
const AppName = "eaglekit"

// MetaDirName is the per-project metadata directory.
const MetaDirName = ".eagle"

// IgnoreLine is the entry written into Git ignore files.
const IgnoreLine = ".eagle/"

// DetachedBranch is used when the current branch cannot be determined.
const DetachedBranch = "detached"

// DefaultTaskName is run when no task name is given.
const DefaultTaskName = "default"

// Paths holds the locations of the global configuration files.
// Fields are ordered to minimize memory padding.
type Paths struct {
	ConfigDir    string // e.g. ~/.config/eaglekit
	RegistryFile string // registry.yaml
	DefaultsFile string // defaults.yaml
	PluginsFile  string // plugins.toml
	JournalFile  string // logs/runs.jsonl
}

// NewPaths derives all global file paths from the config directory.
func NewPaths(configDir string) Paths {
	return Paths{
		ConfigDir:    configDir,
		RegistryFile: filepath.Join(configDir, "registry.yaml"),
		DefaultsFile: filepath.Join(configDir, "defaults.yaml"),
		PluginsFile:  filepath.Join(configDir, "plugins.toml"),
		JournalFile:  filepath.Join(configDir, "logs", "runs.jsonl"),
	}
}

// ProjectConfigPath returns the project-scope task config file.
func ProjectConfigPath(metaDir string) string {
	return filepath.Join(metaDir, "config.yaml")
}

// BranchConfigPath returns the branch-scope task config file.
func BranchConfigPath(metaDir, branch string) string {
	return filepath.Join(metaDir, "branches", branch, "config.yaml")
}

// TodosPath returns the TODO store file.
func TodosPath(metaDir string) string {
	return filepath.Join(metaDir, "todos.yaml")
}

// CommentsPath returns the comment store file.
func CommentsPath(metaDir string) string {
	return filepath.Join(metaDir, "comments.yaml")
}

// ScriptsDir returns the directory that holds scaffolded task scripts.
func ScriptsDir(metaDir string) string {
	return filepath.Join(metaDir, "scripts")
}

// PluginCommandPrefix is the executable prefix for PATH-discovered plugins.
const PluginCommandPrefix = "ek-"

// PluginNameFromExecutable returns the plugin name for an ek-<name> executable.
// The second return value is false if the file does not follow the convention.
func PluginNameFromExecutable(file string) (string, bool) {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, ".exe")
	if !strings.HasPrefix(base, PluginCommandPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(base, PluginCommandPrefix)
	if name == "" {
		return "", false
	}
	return name, true
}
