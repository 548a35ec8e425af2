// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eaglekit/ek/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.RegistryRepository = (*MockRegistryRepository)(nil)
	_ domain.DefaultsRepository = (*MockDefaultsRepository)(nil)
	_ domain.TaskConfigStore    = (*MockTaskConfigStore)(nil)
	_ domain.TodoStore          = (*MockTodoStore)(nil)
	_ domain.CommentStore       = (*MockCommentStore)(nil)
	_ domain.Git                = (*MockGit)(nil)
	_ domain.CommandRunner      = (*MockCommandRunner)(nil)
	_ domain.IgnoreFile         = (*MockIgnoreFile)(nil)
	_ domain.RunJournal         = (*MockRunJournal)(nil)
	_ domain.ShellRC            = (*MockShellRC)(nil)
	_ domain.PluginLoader       = (*MockPluginLoader)(nil)
	_ domain.Logger             = (*MockLogger)(nil)
	_ domain.Clock              = (*MockClock)(nil)
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockRegistryRepository is a test double for domain.RegistryRepository.
// Fields are ordered to minimize memory padding.
type MockRegistryRepository struct {
	Registry  *domain.Registry
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockRegistryRepository creates a repository holding an empty registry.
func NewMockRegistryRepository() *MockRegistryRepository {
	return &MockRegistryRepository{Registry: domain.NewRegistry()}
}

// AddProject registers a project in the workspace for test setup.
func (m *MockRegistryRepository) AddProject(workspace, name, path string) {
	m.Registry.Workspace(workspace).Projects[name] = domain.ProjectEntry{Path: path}
}

// Load returns the stored registry.
func (m *MockRegistryRepository) Load() (*domain.Registry, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.Registry.EnsureShape()
	return m.Registry, nil
}

// Save stores the registry.
func (m *MockRegistryRepository) Save(reg *domain.Registry) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.Registry = reg
	return nil
}

// MockDefaultsRepository is a test double for domain.DefaultsRepository.
// Fields are ordered to minimize memory padding.
type MockDefaultsRepository struct {
	Defaults  *domain.Defaults
	SaveErr   error
	SaveCalls int
}

// Load returns a copy of the stored defaults.
func (m *MockDefaultsRepository) Load() (*domain.Defaults, error) {
	if m.Defaults == nil {
		return &domain.Defaults{}, nil
	}
	d := *m.Defaults
	return &d, nil
}

// Save stores a copy of the defaults.
func (m *MockDefaultsRepository) Save(d *domain.Defaults) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	saved := *d
	m.Defaults = &saved
	return nil
}

// MockTaskConfigStore is a test double for domain.TaskConfigStore keyed by file path.
// Fields are ordered to minimize memory padding.
type MockTaskConfigStore struct {
	Files  map[string]domain.RawTasks
	SetErr error
}

// NewMockTaskConfigStore creates an empty store.
func NewMockTaskConfigStore() *MockTaskConfigStore {
	return &MockTaskConfigStore{Files: map[string]domain.RawTasks{}}
}

// LoadTasks returns the tasks of path, or an empty map.
func (m *MockTaskConfigStore) LoadTasks(path string) (domain.RawTasks, error) {
	out := domain.RawTasks{}
	for k, v := range m.Files[path] {
		out[k] = v
	}
	return out, nil
}

// SetTask stores spec under name in path.
func (m *MockTaskConfigStore) SetTask(path, name string, spec any) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	if m.Files[path] == nil {
		m.Files[path] = domain.RawTasks{}
	}
	m.Files[path][name] = spec
	return nil
}

// MockTodoStore is a test double for domain.TodoStore keyed by file path.
// Fields are ordered to minimize memory padding.
type MockTodoStore struct {
	Lists   map[string]*domain.TodoList
	SaveErr error
}

// NewMockTodoStore creates an empty store.
func NewMockTodoStore() *MockTodoStore {
	return &MockTodoStore{Lists: map[string]*domain.TodoList{}}
}

// Load returns a copy of the list at path.
func (m *MockTodoStore) Load(path string) (*domain.TodoList, error) {
	list := &domain.TodoList{}
	if stored, ok := m.Lists[path]; ok {
		list.NextID = stored.NextID
		list.Todos = append([]domain.Todo(nil), stored.Todos...)
	}
	list.Normalize()
	return list, nil
}

// Save stores a copy of the list.
func (m *MockTodoStore) Save(path string, list *domain.TodoList) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Lists[path] = &domain.TodoList{NextID: list.NextID, Todos: append([]domain.Todo(nil), list.Todos...)}
	return nil
}

// MockCommentStore is a test double for domain.CommentStore keyed by file path.
// Fields are ordered to minimize memory padding.
type MockCommentStore struct {
	Lists   map[string]*domain.CommentList
	SaveErr error
}

// NewMockCommentStore creates an empty store.
func NewMockCommentStore() *MockCommentStore {
	return &MockCommentStore{Lists: map[string]*domain.CommentList{}}
}

// Load returns a copy of the list at path.
func (m *MockCommentStore) Load(path string) (*domain.CommentList, error) {
	list := &domain.CommentList{}
	if stored, ok := m.Lists[path]; ok {
		list.NextID = stored.NextID
		list.Comments = append([]domain.Comment(nil), stored.Comments...)
	}
	list.Normalize()
	return list, nil
}

// Save stores a copy of the list.
func (m *MockCommentStore) Save(path string, list *domain.CommentList) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Lists[path] = &domain.CommentList{NextID: list.NextID, Comments: append([]domain.Comment(nil), list.Comments...)}
	return nil
}

// MockGit is a test double for domain.Git.
// Fields are ordered to minimize memory padding.
type MockGit struct {
	Head              *domain.CommitInfo
	BranchErr         error
	ToplevelErr       error
	HeadErr           error
	GlobalErr         error
	GitPaths          map[string]string // name -> resolved path
	Branch            string
	Top               string
	GlobalExcludes    string
	SetGlobalExcludes string
}

// CurrentBranch returns the configured branch.
func (m *MockGit) CurrentBranch(_ string) (string, error) {
	if m.BranchErr != nil {
		return "", m.BranchErr
	}
	return m.Branch, nil
}

// Toplevel returns the configured toplevel.
func (m *MockGit) Toplevel(_ string) (string, error) {
	if m.ToplevelErr != nil {
		return "", m.ToplevelErr
	}
	if m.Top == "" {
		return "", domain.ErrNotGitRepository
	}
	return m.Top, nil
}

// GitPath returns the configured path for name.
func (m *MockGit) GitPath(dir, name string) (string, error) {
	if _, err := m.Toplevel(dir); err != nil {
		return "", err
	}
	if p, ok := m.GitPaths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("no git path configured for %s", name)
}

// GlobalExcludesFile returns the configured excludes file.
func (m *MockGit) GlobalExcludesFile() (string, error) {
	if m.GlobalErr != nil {
		return "", m.GlobalErr
	}
	return m.GlobalExcludes, nil
}

// SetGlobalExcludesFile records the path.
func (m *MockGit) SetGlobalExcludesFile(path string) error {
	if m.GlobalErr != nil {
		return m.GlobalErr
	}
	m.SetGlobalExcludes = path
	m.GlobalExcludes = path
	return nil
}

// HeadInfo returns the configured commit.
func (m *MockGit) HeadInfo(_ string) (*domain.CommitInfo, error) {
	if m.HeadErr != nil {
		return nil, m.HeadErr
	}
	if m.Head == nil {
		return nil, domain.ErrNotGitRepository
	}
	return m.Head, nil
}

// MockCommandRunner is a test double for domain.CommandRunner.
// Fields are ordered to minimize memory padding.
type MockCommandRunner struct {
	RunErr   error
	Paths    map[string]string // name -> resolved executable for LookPath
	Commands []*domain.ExecCommand
	ExitCode int
}

// Run records cmd and returns the configured exit code.
func (m *MockCommandRunner) Run(_ context.Context, cmd *domain.ExecCommand) (int, error) {
	m.Commands = append(m.Commands, cmd)
	if m.RunErr != nil {
		return 1, m.RunErr
	}
	return m.ExitCode, nil
}

// LookPath returns the configured path for name.
func (m *MockCommandRunner) LookPath(name string) (string, error) {
	if p, ok := m.Paths[name]; ok {
		return p, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

// Called reports whether any command was run.
func (m *MockCommandRunner) Called() bool {
	return len(m.Commands) > 0
}

// MockIgnoreFile is a test double for domain.IgnoreFile keyed by path.
// Fields are ordered to minimize memory padding.
type MockIgnoreFile struct {
	Lines map[string][]string
	Err   error
}

// NewMockIgnoreFile creates an empty ignore file set.
func NewMockIgnoreFile() *MockIgnoreFile {
	return &MockIgnoreFile{Lines: map[string][]string{}}
}

// EnsureLine appends line unless present.
func (m *MockIgnoreFile) EnsureLine(path, line string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	ok, _ := m.Contains(path, line)
	if ok {
		return false, nil
	}
	m.Lines[path] = append(m.Lines[path], line)
	return true, nil
}

// Contains reports whether path has line.
func (m *MockIgnoreFile) Contains(path, line string) (bool, error) {
	for _, l := range m.Lines[path] {
		if strings.TrimSpace(l) == line {
			return true, nil
		}
	}
	return false, nil
}

// MockRunJournal is a test double for domain.RunJournal.
// Fields are ordered to minimize memory padding.
type MockRunJournal struct {
	AppendErr error
	Entries   []domain.RunEntry
}

// Append records an entry.
func (m *MockRunJournal) Append(e domain.RunEntry) error {
	if m.AppendErr != nil {
		return m.AppendErr
	}
	m.Entries = append(m.Entries, e)
	return nil
}

// Recent returns the last limit entries.
func (m *MockRunJournal) Recent(limit int) ([]domain.RunEntry, error) {
	if limit > 0 && len(m.Entries) > limit {
		return m.Entries[len(m.Entries)-limit:], nil
	}
	return m.Entries, nil
}

// MockShellRC is a test double for domain.ShellRC.
type MockShellRC struct {
	Files map[string]string
}

// NewMockShellRC creates an empty rc file set.
func NewMockShellRC() *MockShellRC {
	return &MockShellRC{Files: map[string]string{}}
}

// Install stores block for path unless present.
func (m *MockShellRC) Install(path, block string) (bool, error) {
	if _, ok := m.Files[path]; ok {
		return false, nil
	}
	m.Files[path] = block
	return true, nil
}

// Uninstall removes the block for path.
func (m *MockShellRC) Uninstall(path string) (bool, error) {
	if _, ok := m.Files[path]; !ok {
		return false, nil
	}
	delete(m.Files, path)
	return true, nil
}

// MockPluginLoader is a test double for domain.PluginLoader.
// Fields are ordered to minimize memory padding.
type MockPluginLoader struct {
	Reserved map[string]bool
	Set      domain.PluginSet
}

// Load records reserved and returns the configured set.
func (m *MockPluginLoader) Load(reserved map[string]bool) domain.PluginSet {
	m.Reserved = reserved
	return m.Set
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Warnings []string
	Debugs   []string
}

// Debug records msg.
func (m *MockLogger) Debug(msg any, _ ...any) {
	m.Debugs = append(m.Debugs, fmt.Sprint(msg))
}

// Warn records msg.
func (m *MockLogger) Warn(msg any, _ ...any) {
	m.Warnings = append(m.Warnings, fmt.Sprint(msg))
}
