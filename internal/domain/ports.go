package domain

import (
	"context"
	"time"
)

// RegistryRepository persists the project registry.
type RegistryRepository interface {
	// Load returns the registry, coerced to a valid shape. A missing file yields a new registry.
	Load() (*Registry, error)

	// Save writes the registry.
	Save(reg *Registry) error
}

// DefaultsRepository persists user preferences.
type DefaultsRepository interface {
	// Load returns the defaults. Missing or malformed files yield zero defaults.
	Load() (*Defaults, error)

	// Save writes the defaults.
	Save(d *Defaults) error
}

// TaskConfigStore reads and writes the tasks map of a config.yaml file.
type TaskConfigStore interface {
	// LoadTasks returns the tasks mapping. Missing or malformed files yield an empty map.
	LoadTasks(path string) (RawTasks, error)

	// SetTask writes one task entry, keeping the rest of the file.
	SetTask(path, name string, spec any) error
}

// TodoStore persists a project's TODO list.
type TodoStore interface {
	// Load returns the list with a repaired id counter.
	Load(path string) (*TodoList, error)

	// Save writes the list.
	Save(path string, list *TodoList) error
}

// CommentStore persists a project's comments.
type CommentStore interface {
	// Load returns the list with a repaired id counter.
	Load(path string) (*CommentList, error)

	// Save writes the list.
	Save(path string, list *CommentList) error
}

// Git provides git operations.
type Git interface {
	// CurrentBranch returns the branch checked out in dir.
	CurrentBranch(dir string) (string, error)

	// Toplevel returns the repository root containing dir.
	Toplevel(dir string) (string, error)

	// GitPath resolves a path inside the git directory (git rev-parse --git-path).
	GitPath(dir, name string) (string, error)

	// GlobalExcludesFile returns core.excludesFile from the global config, or "" when unset.
	GlobalExcludesFile() (string, error)

	// SetGlobalExcludesFile stores core.excludesFile in the global config.
	SetGlobalExcludesFile(path string) error

	// HeadInfo describes the HEAD commit of the repository at dir.
	HeadInfo(dir string) (*CommitInfo, error)
}

// CommitInfo summarizes a commit.
// Fields are ordered to minimize memory padding.
type CommitInfo struct {
	When    time.Time
	Hash    string
	Summary string
	Author  string
}

// ShortHash returns the first 7 characters of the hash.
func (c CommitInfo) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// CommandRunner runs external commands with stdio attached.
type CommandRunner interface {
	// Run executes cmd and returns its exit code. An error means the process could not be started.
	Run(ctx context.Context, cmd *ExecCommand) (int, error)

	// LookPath searches PATH for an executable.
	LookPath(name string) (string, error)
}

// IgnoreFile edits line-oriented ignore files.
type IgnoreFile interface {
	// EnsureLine appends line unless present, creating the file and parents. Returns whether it wrote.
	EnsureLine(path, line string) (bool, error)

	// Contains reports whether path has line. A missing file does not contain it.
	Contains(path, line string) (bool, error)
}

// PluginLoader discovers plugins.
type PluginLoader interface {
	// Load returns every discovered plugin with its status. Names in reserved are never loaded.
	Load(reserved map[string]bool) PluginSet
}

// RunJournal records task executions.
type RunJournal interface {
	// Append records one run.
	Append(entry RunEntry) error

	// Recent returns up to limit entries, newest last.
	Recent(limit int) ([]RunEntry, error)
}

// ShellRC edits shell startup files.
type ShellRC interface {
	// Install writes block into path unless a marked block exists. Returns whether it wrote.
	Install(path, block string) (bool, error)

	// Uninstall removes the marked block. Returns whether one was found.
	Uninstall(path string) (bool, error)
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger writes diagnostics. Keyvals alternate keys and values.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
}
