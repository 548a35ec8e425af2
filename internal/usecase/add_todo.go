package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// AddTodoInput contains the parameters for adding a TODO.
// Fields are ordered to minimize memory padding.
type AddTodoInput struct {
	shared.ProjectRef
	Title       string // Required
	Description string
	Priority    string // low, med or high; defaults to med
	Tags        []string
}

// AddTodoOutput contains the created TODO.
type AddTodoOutput struct {
	Project domain.Project
	Todo    domain.Todo
}

// AddTodo is the use case for `ek todo add`.
type AddTodo struct {
	registry domain.RegistryRepository
	todos    domain.TodoStore
	clock    domain.Clock
}

// NewAddTodo creates a new AddTodo use case.
func NewAddTodo(registry domain.RegistryRepository, todos domain.TodoStore, clock domain.Clock) *AddTodo {
	return &AddTodo{registry: registry, todos: todos, clock: clock}
}

// Execute appends the TODO with the next id and rewrites the store.
func (uc *AddTodo) Execute(_ context.Context, in AddTodoInput) (*AddTodoOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	priority := domain.PriorityMed
	if strings.TrimSpace(in.Priority) != "" {
		var err error
		if priority, err = domain.ParsePriority(in.Priority); err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Priority)
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

	now := uc.clock.Now()
	todo := list.Add(domain.Todo{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      domain.TodoStatusTodo,
		Priority:    priority,
		Tags:        in.Tags,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err := uc.todos.Save(p.TodosPath(), list); err != nil {
		return nil, fmt.Errorf("save todos: %w", err)
	}
	return &AddTodoOutput{Project: p, Todo: todo}, nil
}
