package usecase

import (
	"context"
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// RemoveTodoInput contains the parameters for removing a TODO.
type RemoveTodoInput struct {
	shared.ProjectRef
	ID int
}

// RemoveTodoOutput contains the removed TODO.
type RemoveTodoOutput struct {
	Project domain.Project
	Todo    domain.Todo
}

// RemoveTodo is the use case for `ek todo rm`.
type RemoveTodo struct {
	registry domain.RegistryRepository
	todos    domain.TodoStore
}

// NewRemoveTodo creates a new RemoveTodo use case.
func NewRemoveTodo(registry domain.RegistryRepository, todos domain.TodoStore) *RemoveTodo {
	return &RemoveTodo{registry: registry, todos: todos}
}

// Execute removes the TODO. Its id is never reused.
func (uc *RemoveTodo) Execute(_ context.Context, in RemoveTodoInput) (*RemoveTodoOutput, error) {
	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	list, err := uc.todos.Load(p.TodosPath())
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	removed, err := list.Remove(in.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: #%d", err, in.ID)
	}
	if err := uc.todos.Save(p.TodosPath(), list); err != nil {
		return nil, fmt.Errorf("save todos: %w", err)
	}
	return &RemoveTodoOutput{Project: p, Todo: removed}, nil
}
