package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// EditTodoInput contains the parameters for editing a TODO.
// Nil pointers and empty strings leave a field unchanged.
// Fields are ordered to minimize memory padding.
type EditTodoInput struct {
	shared.ProjectRef
	Title       *string
	Description *string
	Status      string
	Priority    string
	AddTags     []string
	RemoveTags  []string
	ID          int
}

// EditTodoOutput contains the updated TODO.
type EditTodoOutput struct {
	Project domain.Project
	Todo    domain.Todo
}

// EditTodo is the use case for `ek todo edit`, `done`, `block` and `reopen`.
type EditTodo struct {
	registry domain.RegistryRepository
	todos    domain.TodoStore
	clock    domain.Clock
}

// NewEditTodo creates a new EditTodo use case.
func NewEditTodo(registry domain.RegistryRepository, todos domain.TodoStore, clock domain.Clock) *EditTodo {
	return &EditTodo{registry: registry, todos: todos, clock: clock}
}

// Execute updates the TODO with the given id.
func (uc *EditTodo) Execute(_ context.Context, in EditTodoInput) (*EditTodoOutput, error) {
	if in.Title == nil && in.Description == nil && in.Status == "" && in.Priority == "" &&
		len(in.AddTags) == 0 && len(in.RemoveTags) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}

	var status domain.TodoStatus
	if in.Status != "" {
		var err error
		if status, err = domain.ParseTodoStatus(in.Status); err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Status)
		}
	}
	var priority domain.Priority
	if in.Priority != "" {
		var err error
		if priority, err = domain.ParsePriority(in.Priority); err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Priority)
		}
	}
	var title string
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrEmptyTitle
		}
	}

	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	list, err := uc.todos.Load(p.TodosPath())
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	todo, err := list.Find(in.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: #%d", err, in.ID)
	}

	if in.Title != nil {
		todo.Title = title
	}
	if in.Description != nil {
		todo.Description = strings.TrimSpace(*in.Description)
	}
	if status != "" {
		todo.Status = status
	}
	if priority != "" {
		todo.Priority = priority
	}
	if len(in.AddTags) > 0 || len(in.RemoveTags) > 0 {
		todo.Tags = domain.UpdateTags(todo.Tags, in.AddTags, in.RemoveTags)
	}
	todo.UpdatedAt = uc.clock.Now()

	if err := uc.todos.Save(p.TodosPath(), list); err != nil {
		return nil, fmt.Errorf("save todos: %w", err)
	}
	return &EditTodoOutput{Project: p, Todo: *todo}, nil
}
