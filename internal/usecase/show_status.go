package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// ShowStatusInput contains the parameters for the status overview.
type ShowStatusInput struct {
	Dir       string // Working directory to match against registered projects
	Workspace string
}

// ShowStatusOutput summarizes the project containing Dir.
// Fields are ordered to minimize memory padding.
type ShowStatusOutput struct {
	Head         *domain.CommitInfo // nil outside a git repository
	Project      domain.Project
	Workspace    string
	Branch       string
	TaskCount    int
	TodoCount    int
	OpenTodos    int
	CommentCount int
	Matched      bool // False when no registered project contains Dir
}

// ShowStatus is the use case for `ek status`.
type ShowStatus struct {
	registry domain.RegistryRepository
	tasks    domain.TaskConfigStore
	todos    domain.TodoStore
	comments domain.CommentStore
	git      domain.Git
}

// NewShowStatus creates a new ShowStatus use case.
func NewShowStatus(
	registry domain.RegistryRepository,
	tasks domain.TaskConfigStore,
	todos domain.TodoStore,
	comments domain.CommentStore,
	git domain.Git,
) *ShowStatus {
	return &ShowStatus{
		registry: registry,
		tasks:    tasks,
		todos:    todos,
		comments: comments,
		git:      git,
	}
}

// Execute matches Dir to a project and collects its counters.
// An unmatched directory is not an error.
func (uc *ShowStatus) Execute(_ context.Context, in ShowStatusInput) (*ShowStatusOutput, error) {
	p, ws, err := shared.GetProject(uc.registry, shared.ProjectRef{Dir: in.Dir, Workspace: in.Workspace})
	if errors.Is(err, domain.ErrNoProjectForDir) {
		return &ShowStatusOutput{Workspace: ws}, nil
	}
	if err != nil {
		return nil, err
	}

	resolved, err := shared.ResolveTasks(uc.tasks, uc.git, p)
	if err != nil {
		return nil, err
	}
	todos, err := uc.todos.Load(p.TodosPath())
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	comments, err := uc.comments.Load(p.CommentsPath())
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	out := &ShowStatusOutput{
		Matched:      true,
		Project:      p,
		Workspace:    ws,
		Branch:       resolved.BranchName,
		TaskCount:    len(resolved.Merged),
		TodoCount:    len(todos.Todos),
		OpenTodos:    todos.CountOpen(),
		CommentCount: len(comments.Comments),
	}
	if head, err := uc.git.HeadInfo(p.Path); err == nil {
		out.Head = head
	}
	return out, nil
}
