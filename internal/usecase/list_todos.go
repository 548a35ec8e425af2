package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// ListTodosInput contains the parameters for listing or searching TODOs.
// Fields are ordered to minimize memory padding.
type ListTodosInput struct {
	shared.ProjectRef
	Query    string // Search title, description and tags instead of filtering
	Status   string
	Priority string
	Tag      string
	All      bool // Include done items
}

// ListTodosOutput contains the matching TODOs in store order.
type ListTodosOutput struct {
	Project domain.Project
	Todos   []domain.Todo
}

// ListTodos is the use case for `ek todo list` and `ek todo search`.
type ListTodos struct {
	registry domain.RegistryRepository
	todos    domain.TodoStore
}

// NewListTodos creates a new ListTodos use case.
func NewListTodos(registry domain.RegistryRepository, todos domain.TodoStore) *ListTodos {
	return &ListTodos{registry: registry, todos: todos}
}

// Execute filters the project's TODOs in memory.
func (uc *ListTodos) Execute(_ context.Context, in ListTodosInput) (*ListTodosOutput, error) {
	filter := domain.TodoFilter{Tag: strings.TrimSpace(in.Tag), IncludeAll: in.All}
	if in.Status != "" {
		status, err := domain.ParseTodoStatus(in.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Status)
		}
		filter.Status = status
	}
	if in.Priority != "" {
		priority, err := domain.ParsePriority(in.Priority)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Priority)
		}
		filter.Priority = priority
	}

	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	list, err := uc.todos.Load(p.TodosPath())
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}

	out := &ListTodosOutput{Project: p}
	if strings.TrimSpace(in.Query) != "" {
		out.Todos = list.Search(in.Query)
	} else {
		out.Todos = list.Filter(filter)
	}
	return out, nil
}
