package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// RunTaskInput contains the parameters for running a task.
type RunTaskInput struct {
	shared.ProjectRef
	Task string   // Defaults to "default"
	Args []string // Appended to the command
}

// RunTaskOutput contains the result of a finished task.
// Fields are ordered to minimize memory padding.
type RunTaskOutput struct {
	Command  *domain.ExecCommand
	Project  domain.Project
	Task     string
	Branch   string
	ExitCode int
}

// RunTask is the use case for running a project task.
// Fields are ordered to minimize memory padding.
type RunTask struct {
	registry domain.RegistryRepository
	store    domain.TaskConfigStore
	git      domain.Git
	runner   domain.CommandRunner
	journal  domain.RunJournal
	clock    domain.Clock
	logger   domain.Logger
	environ  func() []string
	platform domain.Platform
}

// NewRunTask creates a new RunTask use case.
func NewRunTask(
	registry domain.RegistryRepository,
	store domain.TaskConfigStore,
	git domain.Git,
	runner domain.CommandRunner,
	journal domain.RunJournal,
	clock domain.Clock,
	logger domain.Logger,
	platform domain.Platform,
) *RunTask {
	return &RunTask{
		registry: registry,
		store:    store,
		git:      git,
		runner:   runner,
		journal:  journal,
		clock:    clock,
		logger:   logger,
		environ:  os.Environ,
		platform: platform,
	}
}

// Execute resolves and runs the task synchronously.
// Unknown tasks and malformed specs fail before anything is spawned.
// A non-zero child exit is reported through ExitCode, not as an error.
func (uc *RunTask) Execute(ctx context.Context, in RunTaskInput) (*RunTaskOutput, error) {
	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	resolved, err := shared.ResolveTasks(uc.store, uc.git, p)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Task)
	if name == "" {
		name = domain.DefaultTaskName
	}
	raw, ok := resolved.Merged[name]
	if !ok {
		if len(resolved.Merged) == 0 {
			return nil, fmt.Errorf("%w: %s (no tasks defined in %s)", domain.ErrTaskNotFound, name, p.ConfigPath())
		}
		return nil, fmt.Errorf("%w: %s (available: %s)", domain.ErrTaskNotFound, name, strings.Join(resolved.Merged.Names(), ", "))
	}

	spec, err := domain.ParseTaskSpec(raw)
	if err != nil {
		return nil, fmt.Errorf("task '%s': %w", name, err)
	}
	if script, ok := spec.(domain.ScriptCommand); ok {
		path := script.ResolvePath(p.Path)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrScriptNotFound, path)
		}
	}

	cmd, err := domain.BuildTaskCommand(spec, p.Path, in.Args, uc.environ(), uc.platform)
	if err != nil {
		return nil, fmt.Errorf("task '%s': %w", name, err)
	}

	uc.logger.Debug("running task", "project", p.Name, "task", name, "argv", cmd.Argv())
	start := uc.clock.Now()
	code, runErr := uc.runner.Run(ctx, cmd)
	uc.record(domain.RunEntry{
		Time:       start,
		Project:    p.Name,
		Task:       name,
		Branch:     resolved.BranchName,
		Kind:       spec.Kind(),
		ExitCode:   code,
		DurationMS: uc.clock.Now().Sub(start).Milliseconds(),
	}, runErr)
	if runErr != nil {
		return nil, fmt.Errorf("run task '%s': %w", name, runErr)
	}

	return &RunTaskOutput{
		Command:  cmd,
		Project:  p,
		Task:     name,
		Branch:   resolved.BranchName,
		ExitCode: code,
	}, nil
}

// record appends the run to the journal. Failures are only logged.
func (uc *RunTask) record(entry domain.RunEntry, runErr error) {
	entry.Message = "task finished"
	if runErr != nil {
		entry.Message = runErr.Error()
		entry.Level = "error"
	}
	if err := uc.journal.Append(entry); err != nil {
		uc.logger.Warn("could not write run journal", "err", err)
	}
}
