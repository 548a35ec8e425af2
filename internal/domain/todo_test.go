package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoList_Add_AssignsMonotonicIDs(t *testing.T) {
	list := &TodoList{}

	a := list.Add(Todo{Title: "a"})
	b := list.Add(Todo{Title: "b"})
	_, err := list.Remove(b.ID)
	require.NoError(t, err)
	c := list.Add(Todo{Title: "c"})

	assert.Equal(t, 1, a.ID)
	assert.Equal(t, 2, b.ID)
	assert.Equal(t, 3, c.ID)
	assert.Equal(t, 4, list.NextID)
}

func TestTodoList_Normalize(t *testing.T) {
	tests := []struct {
		name string
		list TodoList
		want int
	}{
		{name: "empty", list: TodoList{}, want: 1},
		{name: "counter behind ids", list: TodoList{NextID: 2, Todos: []Todo{{ID: 5}, {ID: 3}}}, want: 6},
		{name: "counter ahead is kept", list: TodoList{NextID: 10, Todos: []Todo{{ID: 5}}}, want: 10},
		{name: "negative counter", list: TodoList{NextID: -4}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.list.Normalize()
			assert.Equal(t, tt.want, tt.list.NextID)
		})
	}
}

func TestTodoList_Find(t *testing.T) {
	list := &TodoList{Todos: []Todo{{ID: 1, Title: "a"}}}

	got, err := list.Find(1)
	require.NoError(t, err)
	got.Status = TodoStatusDone
	assert.Equal(t, TodoStatusDone, list.Todos[0].Status)

	_, err = list.Find(2)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoList_Remove_Missing(t *testing.T) {
	list := &TodoList{}
	_, err := list.Remove(1)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestTodoList_Filter(t *testing.T) {
	list := &TodoList{Todos: []Todo{
		{ID: 1, Status: TodoStatusTodo, Priority: PriorityHigh, Tags: []string{"api"}},
		{ID: 2, Status: TodoStatusDone, Priority: PriorityLow},
		{ID: 3, Status: TodoStatusBlocked, Priority: PriorityMed, Tags: []string{"api", "db"}},
	}}

	ids := func(todos []Todo) []int {
		out := make([]int, 0, len(todos))
		for _, td := range todos {
			out = append(out, td.ID)
		}
		return out
	}

	assert.Equal(t, []int{1, 3}, ids(list.Filter(TodoFilter{})))
	assert.Equal(t, []int{1, 2, 3}, ids(list.Filter(TodoFilter{IncludeAll: true})))
	assert.Equal(t, []int{2}, ids(list.Filter(TodoFilter{Status: TodoStatusDone})))
	assert.Equal(t, []int{1}, ids(list.Filter(TodoFilter{Priority: PriorityHigh})))
	assert.Equal(t, []int{3}, ids(list.Filter(TodoFilter{Tag: "db"})))
	assert.Equal(t, 2, list.CountOpen())
}

func TestTodoList_Search(t *testing.T) {
	list := &TodoList{Todos: []Todo{
		{ID: 1, Title: "Fix Login"},
		{ID: 2, Title: "docs", Description: "explain LOGIN flow"},
		{ID: 3, Title: "other", Tags: []string{"login-page"}},
		{ID: 4, Title: "unrelated"},
	}}

	got := list.Search("login")

	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[2].ID)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, NormalizeTags([]string{"b", " a ", "b", ""}))
	assert.Nil(t, NormalizeTags(nil))
	assert.Nil(t, NormalizeTags([]string{" "}))
}

func TestUpdateTags(t *testing.T) {
	got := UpdateTags([]string{"a", "b"}, []string{"c", "a"}, []string{"b"})
	assert.Equal(t, []string{"a", "c"}, got)
}

func TestCommentList_AddRemove(t *testing.T) {
	list := &CommentList{}

	c := list.Add(Comment{Message: "hello", Tags: []string{"x", "x"}})
	require.Equal(t, 1, c.ID)
	assert.Equal(t, []string{"x"}, c.Tags)

	_, err := list.Remove(c.ID)
	require.NoError(t, err)
	_, err = list.Remove(c.ID)
	assert.ErrorIs(t, err, ErrCommentNotFound)

	next := list.Add(Comment{Message: "again"})
	assert.Equal(t, 2, next.ID)
}

func TestCommentList_Filter(t *testing.T) {
	list := &CommentList{Comments: []Comment{
		{ID: 1, Category: CategoryBug, Tags: []string{"ui"}},
		{ID: 2, Category: CategoryNote},
		{ID: 3, Category: CategoryBug},
	}}

	assert.Len(t, list.Filter(CommentFilter{Category: CategoryBug}), 2)
	assert.Len(t, list.Filter(CommentFilter{Tag: "ui"}), 1)

	last := list.Filter(CommentFilter{Limit: 2})
	require.Len(t, last, 2)
	assert.Equal(t, 2, last[0].ID)
}

func TestCommentList_Search(t *testing.T) {
	list := &CommentList{Comments: []Comment{
		{ID: 1, Message: "Deploy broke", Author: "ana"},
		{ID: 2, Message: "ok", Author: "Deployer"},
	}}

	assert.Len(t, list.Search("deploy"), 2)
	assert.Empty(t, list.Search("nothing"))
}
