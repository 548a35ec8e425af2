package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/testutil"
	"github.com/eaglekit/ek/internal/usecase/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apiRef = shared.ProjectRef{Name: "api"}

func newTodoDeps() (*testutil.MockRegistryRepository, *testutil.MockTodoStore, *testutil.MockClock) {
	repo := testutil.NewMockRegistryRepository()
	repo.AddProject("default", "api", "/home/u/api")
	clock := &testutil.MockClock{NowTime: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}
	return repo, testutil.NewMockTodoStore(), clock
}

const apiTodos = "/home/u/api/.eagle/todos.yaml"

func TestAddTodo_Execute_Success(t *testing.T) {
	// Setup
	repo, store, clock := newTodoDeps()
	uc := NewAddTodo(repo, store, clock)

	// Execute
	out, err := uc.Execute(context.Background(), AddTodoInput{
		ProjectRef:  apiRef,
		Title:       "  write docs ",
		Description: "readme",
		Tags:        []string{"docs", "docs", " v1"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, out.Todo.ID)
	assert.Equal(t, "write docs", out.Todo.Title)
	assert.Equal(t, domain.PriorityMed, out.Todo.Priority)
	assert.Equal(t, domain.TodoStatusTodo, out.Todo.Status)
	assert.Equal(t, []string{"docs", "v1"}, out.Todo.Tags)
	assert.Equal(t, clock.NowTime, out.Todo.CreatedAt)
	assert.Equal(t, clock.NowTime, out.Todo.UpdatedAt)
	assert.Equal(t, 2, store.Lists[apiTodos].NextID)
}

func TestAddTodo_Execute_Validation(t *testing.T) {
	repo, store, clock := newTodoDeps()
	uc := NewAddTodo(repo, store, clock)

	_, err := uc.Execute(context.Background(), AddTodoInput{ProjectRef: apiRef, Title: "  "})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = uc.Execute(context.Background(), AddTodoInput{ProjectRef: apiRef, Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidPriority)

	assert.Empty(t, store.Lists)
}

func TestAddTodo_Execute_IDsNeverReused(t *testing.T) {
	// Setup
	repo, store, clock := newTodoDeps()
	add := NewAddTodo(repo, store, clock)
	remove := NewRemoveTodo(repo, store)
	ctx := context.Background()

	// Execute
	var ids []int
	for _, title := range []string{"a", "b", "c"} {
		out, err := add.Execute(ctx, AddTodoInput{ProjectRef: apiRef, Title: title})
		require.NoError(t, err)
		ids = append(ids, out.Todo.ID)
	}
	_, err := remove.Execute(ctx, RemoveTodoInput{ProjectRef: apiRef, ID: 3})
	require.NoError(t, err)
	out, err := add.Execute(ctx, AddTodoInput{ProjectRef: apiRef, Title: "d"})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, []int{1, 2, 3}, ids)
	assert.Equal(t, 4, out.Todo.ID)
}

func TestListTodos_Execute(t *testing.T) {
	// Setup
	repo, store, _ := newTodoDeps()
	store.Lists[apiTodos] = &domain.TodoList{NextID: 4, Todos: []domain.Todo{
		{ID: 1, Title: "Fix login", Status: domain.TodoStatusTodo, Priority: domain.PriorityHigh, Tags: []string{"auth"}},
		{ID: 2, Title: "Ship", Status: domain.TodoStatusDone, Priority: domain.PriorityMed},
		{ID: 3, Title: "Refactor", Description: "LOGIN module", Status: domain.TodoStatusBlocked, Priority: domain.PriorityLow},
	}}
	uc := NewListTodos(repo, store)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ListTodosInput
		want []int
	}{
		{name: "default hides done", in: ListTodosInput{}, want: []int{1, 3}},
		{name: "all", in: ListTodosInput{All: true}, want: []int{1, 2, 3}},
		{name: "status", in: ListTodosInput{Status: "done"}, want: []int{2}},
		{name: "priority", in: ListTodosInput{Priority: "high"}, want: []int{1}},
		{name: "tag", in: ListTodosInput{Tag: "auth"}, want: []int{1}},
		{name: "search", in: ListTodosInput{Query: "login"}, want: []int{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.ProjectRef = apiRef
			out, err := uc.Execute(ctx, tt.in)
			require.NoError(t, err)
			var ids []int
			for _, todo := range out.Todos {
				ids = append(ids, todo.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	_, err := uc.Execute(ctx, ListTodosInput{ProjectRef: apiRef, Status: "later"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestEditTodo_Execute(t *testing.T) {
	// Setup
	repo, store, clock := newTodoDeps()
	store.Lists[apiTodos] = &domain.TodoList{NextID: 2, Todos: []domain.Todo{
		{ID: 1, Title: "old", Status: domain.TodoStatusTodo, Priority: domain.PriorityLow, Tags: []string{"a", "b"}},
	}}
	uc := NewEditTodo(repo, store, clock)
	title := "new"

	// Execute
	out, err := uc.Execute(context.Background(), EditTodoInput{
		ProjectRef: apiRef,
		ID:         1,
		Title:      &title,
		Status:     "done",
		Priority:   "high",
		AddTags:    []string{"c"},
		RemoveTags: []string{"a"},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "new", out.Todo.Title)
	assert.Equal(t, domain.TodoStatusDone, out.Todo.Status)
	assert.Equal(t, domain.PriorityHigh, out.Todo.Priority)
	assert.Equal(t, []string{"b", "c"}, out.Todo.Tags)
	assert.Equal(t, clock.NowTime, out.Todo.UpdatedAt)
	assert.Equal(t, out.Todo, store.Lists[apiTodos].Todos[0])
}

func TestEditTodo_Execute_Errors(t *testing.T) {
	repo, store, clock := newTodoDeps()
	uc := NewEditTodo(repo, store, clock)
	ctx := context.Background()
	empty := " "

	_, err := uc.Execute(ctx, EditTodoInput{ProjectRef: apiRef, ID: 1})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = uc.Execute(ctx, EditTodoInput{ProjectRef: apiRef, ID: 1, Title: &empty})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = uc.Execute(ctx, EditTodoInput{ProjectRef: apiRef, ID: 9, Status: "done"})
	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
}

func TestRemoveTodo_Execute_NotFound(t *testing.T) {
	repo, store, _ := newTodoDeps()
	uc := NewRemoveTodo(repo, store)

	_, err := uc.Execute(context.Background(), RemoveTodoInput{ProjectRef: apiRef, ID: 1})

	assert.ErrorIs(t, err, domain.ErrTodoNotFound)
}
