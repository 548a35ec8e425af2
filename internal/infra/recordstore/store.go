// Package recordstore persists per-project TODO and comment lists.
package recordstore

import (
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/infra/yamlfile"
)

// Ensure stores implement their domain ports.
var (
	_ domain.TodoStore    = (*TodoStore)(nil)
	_ domain.CommentStore = (*CommentStore)(nil)
)

// TodoStore implements domain.TodoStore on todos.yaml.
type TodoStore struct{}

// NewTodoStore creates a TODO store.
func NewTodoStore() *TodoStore {
	return &TodoStore{}
}

// Load reads the list. Missing or malformed files yield an empty list with next_id 1.
func (s *TodoStore) Load(path string) (*domain.TodoList, error) {
	list := &domain.TodoList{}
	if _, err := yamlfile.Read(path, list, yamlfile.EmptyOnMalformed); err != nil {
		return nil, err
	}
	if list.Todos == nil {
		list.Todos = []domain.Todo{}
	}
	list.Normalize()
	return list, nil
}

// Save writes the list, creating the metadata directory if needed.
func (s *TodoStore) Save(path string, list *domain.TodoList) error {
	list.Normalize()
	return yamlfile.Write(path, list)
}

// CommentStore implements domain.CommentStore on comments.yaml.
type CommentStore struct{}

// NewCommentStore creates a comment store.
func NewCommentStore() *CommentStore {
	return &CommentStore{}
}

// Load reads the list. Missing or malformed files yield an empty list with next_id 1.
func (s *CommentStore) Load(path string) (*domain.CommentList, error) {
	list := &domain.CommentList{}
	if _, err := yamlfile.Read(path, list, yamlfile.EmptyOnMalformed); err != nil {
		return nil, err
	}
	if list.Comments == nil {
		list.Comments = []domain.Comment{}
	}
	list.Normalize()
	return list, nil
}

// Save writes the list, creating the metadata directory if needed.
func (s *CommentStore) Save(path string, list *domain.CommentList) error {
	list.Normalize()
	return yamlfile.Write(path, list)
}
