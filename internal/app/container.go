// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/infra/defaults"
	"github.com/eaglekit/ek/internal/infra/envconfig"
	"github.com/eaglekit/ek/internal/infra/executor"
	"github.com/eaglekit/ek/internal/infra/git"
	"github.com/eaglekit/ek/internal/infra/ignorefile"
	"github.com/eaglekit/ek/internal/infra/journal"
	"github.com/eaglekit/ek/internal/infra/logging"
	"github.com/eaglekit/ek/internal/infra/plugins"
	"github.com/eaglekit/ek/internal/infra/recordstore"
	"github.com/eaglekit/ek/internal/infra/registry"
	"github.com/eaglekit/ek/internal/infra/shellrc"
	"github.com/eaglekit/ek/internal/infra/taskconfig"
	"github.com/eaglekit/ek/internal/usecase"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// Config holds the resolved settings of one invocation.
// Fields are ordered to minimize memory padding.
type Config struct {
	Paths          domain.Paths
	Workspace      string // EK_WORKSPACE; empty uses the registry's current workspace
	User           string // Login name, used as the fallback comment author
	Home           string
	ShellEnv       string // Value of $SHELL
	GlobalExcludes string // Default core.excludesFile when git has none configured
	GOOS           string
	Platform       domain.Platform
	NoColor        bool
}

// newConfig derives Config from the environment settings.
func newConfig(env *envconfig.Config) Config {
	home, _ := os.UserHomeDir()
	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	return Config{
		Paths:          env.Paths(),
		Workspace:      env.Workspace,
		User:           user,
		Home:           home,
		ShellEnv:       os.Getenv("SHELL"),
		GlobalExcludes: defaultGlobalExcludes(home),
		GOOS:           runtime.GOOS,
		Platform: domain.Platform{
			Python:  env.PythonInterpreter(),
			Windows: runtime.GOOS == "windows",
		},
		NoColor: env.NoColor,
	}
}

// defaultGlobalExcludes follows git's own default of $XDG_CONFIG_HOME/git/ignore.
func defaultGlobalExcludes(home string) string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "git", "ignore")
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Registry    domain.RegistryRepository
	Defaults    domain.DefaultsRepository
	TaskConfigs domain.TaskConfigStore
	Todos       domain.TodoStore
	Comments    domain.CommentStore
	Git         domain.Git
	Runner      domain.CommandRunner
	IgnoreFiles domain.IgnoreFile
	ShellRC     domain.ShellRC
	Journal     domain.RunJournal
	Plugins     domain.PluginLoader
	Clock       domain.Clock

	// Pointer fields
	Logger  *log.Logger
	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container from EK_* environment settings.
// Diagnostics go to logOut; verbose forces the debug level.
func New(logOut io.Writer, verbose bool) (*Container, error) {
	env, err := envconfig.Load()
	if err != nil {
		return nil, err
	}
	cfg := newConfig(env)
	runs := journal.New(cfg.Paths.JournalFile)

	return &Container{
		Registry:    registry.NewStore(cfg.Paths.RegistryFile),
		Defaults:    defaults.NewStore(cfg.Paths.DefaultsFile),
		TaskConfigs: taskconfig.NewStore(),
		Todos:       recordstore.NewTodoStore(),
		Comments:    recordstore.NewCommentStore(),
		Git:         git.NewClient(),
		Runner:      executor.NewClient(),
		IgnoreFiles: ignorefile.NewEditor(),
		ShellRC:     shellrc.NewEditor(),
		Journal:     runs,
		Plugins:     plugins.NewLoader(cfg.Paths.PluginsFile),
		Clock:       domain.RealClock{},
		Logger:      logging.New(logOut, env.LogLevel, verbose),
		closers:     []io.Closer{runs},
		Config:      cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Filesystem-backed stores rooted at configDir are used for everything except git and the runner.
func NewWithDeps(cfg Config, gitClient domain.Git, runner domain.CommandRunner, logger *log.Logger) *Container {
	runs := journal.New(cfg.Paths.JournalFile)
	return &Container{
		Registry:    registry.NewStore(cfg.Paths.RegistryFile),
		Defaults:    defaults.NewStore(cfg.Paths.DefaultsFile),
		TaskConfigs: taskconfig.NewStore(),
		Todos:       recordstore.NewTodoStore(),
		Comments:    recordstore.NewCommentStore(),
		Git:         gitClient,
		Runner:      runner,
		IgnoreFiles: ignorefile.NewEditor(),
		ShellRC:     shellrc.NewEditor(),
		Journal:     runs,
		Plugins:     plugins.NewLoader(cfg.Paths.PluginsFile),
		Clock:       domain.RealClock{},
		Logger:      logger,
		closers:     []io.Closer{runs},
		Config:      cfg,
	}
}

// Close releases open files such as the run journal.
func (c *Container) Close() error {
	var first error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// LoadPlugins discovers plugins, skipping names in reserved.
// Failures are logged at debug level and kept in the result.
func (c *Container) LoadPlugins(reserved map[string]bool) domain.PluginSet {
	set := c.Plugins.Load(reserved)
	for _, p := range set.Plugins {
		if p.Status == domain.PluginFailed {
			c.Logger.Debug("plugin failed to load", "plugin", p.Name, "err", p.Err)
		}
	}
	return set
}

// IgnoreApplier returns the ignore-policy applier bound to the container's git client.
func (c *Container) IgnoreApplier() shared.IgnoreApplier {
	return shared.IgnoreApplier{
		Git:           c.Git,
		Files:         c.IgnoreFiles,
		GlobalDefault: c.Config.GlobalExcludes,
	}
}

// UseCase factory methods

// AddProjectUseCase returns a new AddProject use case.
func (c *Container) AddProjectUseCase() *usecase.AddProject {
	return usecase.NewAddProject(c.Registry, c.Defaults, c.IgnoreApplier(), c.Logger)
}

// RemoveProjectUseCase returns a new RemoveProject use case.
func (c *Container) RemoveProjectUseCase() *usecase.RemoveProject {
	return usecase.NewRemoveProject(c.Registry)
}

// ListProjectsUseCase returns a new ListProjects use case.
func (c *Container) ListProjectsUseCase() *usecase.ListProjects {
	return usecase.NewListProjects(c.Registry)
}

// ShowStatusUseCase returns a new ShowStatus use case.
func (c *Container) ShowStatusUseCase() *usecase.ShowStatus {
	return usecase.NewShowStatus(c.Registry, c.TaskConfigs, c.Todos, c.Comments, c.Git)
}

// WhereProjectUseCase returns a new WhereProject use case.
func (c *Container) WhereProjectUseCase() *usecase.WhereProject {
	return usecase.NewWhereProject(c.Registry)
}

// OpenProjectUseCase returns a new OpenProject use case.
func (c *Container) OpenProjectUseCase() *usecase.OpenProject {
	return usecase.NewOpenProject(c.Registry, c.Runner)
}

// ListWorkspacesUseCase returns a new ListWorkspaces use case.
func (c *Container) ListWorkspacesUseCase() *usecase.ListWorkspaces {
	return usecase.NewListWorkspaces(c.Registry)
}

// UseWorkspaceUseCase returns a new UseWorkspace use case.
func (c *Container) UseWorkspaceUseCase() *usecase.UseWorkspace {
	return usecase.NewUseWorkspace(c.Registry)
}

// CreateWorkspaceUseCase returns a new CreateWorkspace use case.
func (c *Container) CreateWorkspaceUseCase() *usecase.CreateWorkspace {
	return usecase.NewCreateWorkspace(c.Registry)
}

// ApplyIgnoreUseCase returns a new ApplyIgnore use case.
func (c *Container) ApplyIgnoreUseCase() *usecase.ApplyIgnore {
	return usecase.NewApplyIgnore(c.IgnoreApplier())
}

// IgnoreStatusUseCase returns a new IgnoreStatus use case.
func (c *Container) IgnoreStatusUseCase() *usecase.IgnoreStatus {
	return usecase.NewIgnoreStatus(c.IgnoreApplier())
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Registry, c.TaskConfigs, c.Git)
}

// RunTaskUseCase returns a new RunTask use case.
func (c *Container) RunTaskUseCase() *usecase.RunTask {
	return usecase.NewRunTask(c.Registry, c.TaskConfigs, c.Git, c.Runner, c.Journal, c.Clock, c.Logger, c.Config.Platform)
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Registry, c.TaskConfigs, c.Git)
}

// RunHistoryUseCase returns a new RunHistory use case.
func (c *Container) RunHistoryUseCase() *usecase.RunHistory {
	return usecase.NewRunHistory(c.Journal)
}

// AddTodoUseCase returns a new AddTodo use case.
func (c *Container) AddTodoUseCase() *usecase.AddTodo {
	return usecase.NewAddTodo(c.Registry, c.Todos, c.Clock)
}

// ListTodosUseCase returns a new ListTodos use case.
func (c *Container) ListTodosUseCase() *usecase.ListTodos {
	return usecase.NewListTodos(c.Registry, c.Todos)
}

// EditTodoUseCase returns a new EditTodo use case.
func (c *Container) EditTodoUseCase() *usecase.EditTodo {
	return usecase.NewEditTodo(c.Registry, c.Todos, c.Clock)
}

// RemoveTodoUseCase returns a new RemoveTodo use case.
func (c *Container) RemoveTodoUseCase() *usecase.RemoveTodo {
	return usecase.NewRemoveTodo(c.Registry, c.Todos)
}

// AddCommentUseCase returns a new AddComment use case.
func (c *Container) AddCommentUseCase() *usecase.AddComment {
	return usecase.NewAddComment(c.Registry, c.Comments, c.Defaults, c.Clock, c.Config.User)
}

// ListCommentsUseCase returns a new ListComments use case.
func (c *Container) ListCommentsUseCase() *usecase.ListComments {
	return usecase.NewListComments(c.Registry, c.Comments)
}

// EditCommentUseCase returns a new EditComment use case.
func (c *Container) EditCommentUseCase() *usecase.EditComment {
	return usecase.NewEditComment(c.Registry, c.Comments)
}

// RemoveCommentUseCase returns a new RemoveComment use case.
func (c *Container) RemoveCommentUseCase() *usecase.RemoveComment {
	return usecase.NewRemoveComment(c.Registry, c.Comments)
}

// RunPluginUseCase returns a new RunPlugin use case.
func (c *Container) RunPluginUseCase() *usecase.RunPlugin {
	return usecase.NewRunPlugin(c.Registry, c.Runner, c.Config.Paths.ConfigDir)
}

// InstallShellUseCase returns a new InstallShell use case.
func (c *Container) InstallShellUseCase() *usecase.InstallShell {
	return usecase.NewInstallShell(c.ShellRC)
}

// UninstallShellUseCase returns a new UninstallShell use case.
func (c *Container) UninstallShellUseCase() *usecase.UninstallShell {
	return usecase.NewUninstallShell(c.ShellRC)
}

// UninstallUseCase returns a new Uninstall use case.
func (c *Container) UninstallUseCase() *usecase.Uninstall {
	return usecase.NewUninstall(c.Registry, c.ShellRC, c.Logger, c.Config.Paths.ConfigDir)
}

// LoadSetupUseCase returns a new LoadSetup use case.
func (c *Container) LoadSetupUseCase() *usecase.LoadSetup {
	return usecase.NewLoadSetup(c.Defaults, c.Config.User)
}

// SaveSetupUseCase returns a new SaveSetup use case.
func (c *Container) SaveSetupUseCase() *usecase.SaveSetup {
	return usecase.NewSaveSetup(c.Defaults)
}

// ShellInput returns the shell selection for the current user.
func (c *Container) ShellInput(shell, rcFile string) usecase.ShellInput {
	return usecase.ShellInput{
		Shell:    shell,
		ShellEnv: c.Config.ShellEnv,
		RCFile:   rcFile,
		Home:     c.Config.Home,
	}
}
