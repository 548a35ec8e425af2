package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/testutil"
	"github.com/eaglekit/ek/internal/usecase/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIgnoreApplier(git *testutil.MockGit) (shared.IgnoreApplier, *testutil.MockIgnoreFile) {
	files := testutil.NewMockIgnoreFile()
	return shared.IgnoreApplier{Git: git, Files: files, GlobalDefault: "/home/u/.config/git/ignore"}, files
}

func TestAddProject_Execute_Success(t *testing.T) {
	// Setup
	dir := t.TempDir()
	repo := testutil.NewMockRegistryRepository()
	defaults := &testutil.MockDefaultsRepository{}
	ignore, files := newIgnoreApplier(&testutil.MockGit{})
	uc := NewAddProject(repo, defaults, ignore, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), AddProjectInput{Path: dir, Name: "api"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "api", out.Project.Name)
	assert.Equal(t, domain.ResolvePath(dir), out.Project.Path)
	assert.Equal(t, "default", out.Workspace)
	assert.Equal(t, domain.IgnorePolicyNone, out.Policy)
	assert.Equal(t, 1, repo.SaveCalls)
	assert.Equal(t, domain.ProjectEntry{Path: domain.ResolvePath(dir)}, repo.Registry.Workspaces["default"].Projects["api"])
	assert.Empty(t, files.Lines)
}

func TestAddProject_Execute_DefaultsNameToBase(t *testing.T) {
	// Setup
	dir := filepath.Join(t.TempDir(), "webapp")
	require.NoError(t, os.Mkdir(dir, 0o750))
	repo := testutil.NewMockRegistryRepository()
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	uc := NewAddProject(repo, &testutil.MockDefaultsRepository{}, ignore, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), AddProjectInput{Path: dir, Workspace: "work"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "webapp", out.Project.Name)
	assert.Equal(t, "work", out.Workspace)
	assert.Contains(t, repo.Registry.Workspaces["work"].Projects, "webapp")
}

func TestAddProject_Execute_ReplacesExisting(t *testing.T) {
	// Setup
	dir := t.TempDir()
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "api", "/old/api")
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	uc := NewAddProject(repo, &testutil.MockDefaultsRepository{}, ignore, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), AddProjectInput{Path: dir, Name: "api"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Replaced)
	assert.Equal(t, domain.ResolvePath(dir), repo.Registry.Workspaces["default"].Projects["api"].Path)
}

func TestAddProject_Execute_MissingPath(t *testing.T) {
	// Setup
	repo := testutil.NewMockRegistryRepository()
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	uc := NewAddProject(repo, &testutil.MockDefaultsRepository{}, ignore, &testutil.MockLogger{})

	// Execute
	_, err := uc.Execute(context.Background(), AddProjectInput{Path: filepath.Join(t.TempDir(), "nope")})

	// Assert
	assert.ErrorIs(t, err, domain.ErrPathNotFound)
	assert.Zero(t, repo.SaveCalls)
}

func TestAddProject_Execute_FileIsNotADirectory(t *testing.T) {
	// Setup
	file := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	uc := NewAddProject(testutil.NewMockRegistryRepository(), &testutil.MockDefaultsRepository{}, ignore, &testutil.MockLogger{})

	// Execute
	_, err := uc.Execute(context.Background(), AddProjectInput{Path: file})

	// Assert
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestAddProject_Execute_AppliesRepoPolicyOutsideGit(t *testing.T) {
	// Setup
	dir := t.TempDir()
	defaults := &testutil.MockDefaultsRepository{Defaults: &domain.Defaults{
		Preferences: domain.Preferences{IgnorePolicy: domain.IgnorePolicyRepo},
	}}
	ignore, files := newIgnoreApplier(&testutil.MockGit{})
	uc := NewAddProject(testutil.NewMockRegistryRepository(), defaults, ignore, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), AddProjectInput{Path: dir, Name: "api"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.IgnorePolicyRepo, out.Policy)
	assert.True(t, out.IgnoreChanged)
	assert.Equal(t, filepath.Join(out.Project.Path, ".gitignore"), out.IgnorePath)
	assert.Equal(t, []string{".eagle/"}, files.Lines[out.IgnorePath])
}

func TestAddProject_Execute_IgnoreFailureIsNotFatal(t *testing.T) {
	// Setup
	defaults := &testutil.MockDefaultsRepository{Defaults: &domain.Defaults{
		Preferences: domain.Preferences{IgnorePolicy: domain.IgnorePolicyLocal},
	}}
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	logger := &testutil.MockLogger{}
	repo := testutil.NewMockRegistryRepository()
	uc := NewAddProject(repo, defaults, ignore, logger)

	// Execute
	out, err := uc.Execute(context.Background(), AddProjectInput{Path: t.TempDir(), Name: "api"})

	// Assert
	require.NoError(t, err)
	assert.ErrorIs(t, out.IgnoreErr, domain.ErrNotGitRepository)
	assert.Len(t, logger.Warnings, 1)
	assert.Equal(t, 1, repo.SaveCalls)
}

func TestRemoveProject_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "api", "/home/u/api")
	uc := NewRemoveProject(repo)

	// Execute
	out, err := uc.Execute(context.Background(), RemoveProjectInput{Name: "api"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/home/u/api", out.Project.Path)
	assert.Empty(t, repo.Registry.Workspaces["default"].Projects)

	_, err = uc.Execute(context.Background(), RemoveProjectInput{Name: "api"})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestRemoveProject_Execute_SaveError(t *testing.T) {
	// Setup
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "api", "/home/u/api")
	repo.SaveErr = errors.New("disk full")
	uc := NewRemoveProject(repo)

	// Execute
	_, err := uc.Execute(context.Background(), RemoveProjectInput{Name: "api"})

	// Assert
	assert.ErrorContains(t, err, "save registry")
}

func TestListProjects_Execute(t *testing.T) {
	// Setup
	present := t.TempDir()
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "web", present)
	repo.AddProject("default", "api", filepath.Join(present, "gone"))
	uc := NewListProjects(repo)

	// Execute
	out, err := uc.Execute(context.Background(), ListProjectsInput{})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Projects, 2)
	assert.Equal(t, "api", out.Projects[0].Name)
	assert.True(t, out.Projects[0].Missing)
	assert.Equal(t, "web", out.Projects[1].Name)
	assert.False(t, out.Projects[1].Missing)
}

func TestWhereProject_Execute(t *testing.T) {
	// Setup
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "api", "/home/u/api")
	uc := NewWhereProject(repo)

	// Execute
	out, err := uc.Execute(context.Background(), WhereProjectInput{ProjectRef: shared.ProjectRef{Name: "api"}})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/home/u/api", out.Project.Path)
}

func TestOpenProject_Execute(t *testing.T) {
	tests := []struct {
		paths   map[string]string
		name    string
		goos    string
		program string
	}{
		{name: "vscode", paths: map[string]string{"code": "/usr/bin/code"}, goos: "linux", program: "/usr/bin/code"},
		{name: "linux", goos: "linux", program: "xdg-open"},
		{name: "darwin", goos: "darwin", program: "open"},
		{name: "windows", goos: "windows", program: "cmd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			repo := testutil.NewMockRegistryRepository()
			repo.AddProject("default", "api", "/home/u/api")
			runner := &testutil.MockCommandRunner{Paths: tt.paths}
			uc := NewOpenProject(repo, runner)

			// Execute
			out, err := uc.Execute(context.Background(), OpenProjectInput{
				ProjectRef: shared.ProjectRef{Name: "api"},
				GOOS:       tt.goos,
			})

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.program, out.Command.Program)
			assert.Contains(t, out.Command.Args, "/home/u/api")
			assert.True(t, runner.Called())
		})
	}
}

func TestOpenProject_Execute_NonZeroExit(t *testing.T) {
	// Setup
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "api", "/home/u/api")
	uc := NewOpenProject(repo, &testutil.MockCommandRunner{ExitCode: 3})

	// Execute
	_, err := uc.Execute(context.Background(), OpenProjectInput{ProjectRef: shared.ProjectRef{Name: "api"}, GOOS: "linux"})

	// Assert
	assert.ErrorContains(t, err, "exited with status 3")
}

func TestShowStatus_Execute(t *testing.T) {
	// Setup
	root := t.TempDir()
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "api", root)
	p := domain.Project{Name: "api", Path: domain.ResolvePath(root)}

	tasks := testutil.NewMockTaskConfigStore()
	tasks.Files[p.ConfigPath()] = domain.RawTasks{"build": "make", "test": "go test"}
	tasks.Files[p.BranchConfigPath("main")] = domain.RawTasks{"lint": "golangci-lint run"}

	todos := testutil.NewMockTodoStore()
	todos.Lists[p.TodosPath()] = &domain.TodoList{NextID: 3, Todos: []domain.Todo{
		{ID: 1, Title: "a", Status: domain.TodoStatusDone},
		{ID: 2, Title: "b", Status: domain.TodoStatusTodo},
	}}
	comments := testutil.NewMockCommentStore()
	comments.Lists[p.CommentsPath()] = &domain.CommentList{NextID: 2, Comments: []domain.Comment{{ID: 1, Message: "hi"}}}
	git := &testutil.MockGit{Branch: "main", Head: &domain.CommitInfo{Hash: "0123456789abcdef", Summary: "init"}}
	uc := NewShowStatus(repo, tasks, todos, comments, git)

	// Execute
	out, err := uc.Execute(context.Background(), ShowStatusInput{Dir: root})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Matched)
	assert.Equal(t, "api", out.Project.Name)
	assert.Equal(t, "main", out.Branch)
	assert.Equal(t, 3, out.TaskCount)
	assert.Equal(t, 2, out.TodoCount)
	assert.Equal(t, 1, out.OpenTodos)
	assert.Equal(t, 1, out.CommentCount)
	require.NotNil(t, out.Head)
	assert.Equal(t, "init", out.Head.Summary)
}

func TestShowStatus_Execute_NoMatch(t *testing.T) {
	// Setup
	uc := NewShowStatus(testutil.NewMockRegistryRepository(), testutil.NewMockTaskConfigStore(),
		testutil.NewMockTodoStore(), testutil.NewMockCommentStore(), &testutil.MockGit{})

	// Execute
	out, err := uc.Execute(context.Background(), ShowStatusInput{Dir: t.TempDir()})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Matched)
	assert.Equal(t, "default", out.Workspace)
}
