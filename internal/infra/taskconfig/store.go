// Package taskconfig reads and writes the tasks map of .eagle config files.
package taskconfig

import (
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/infra/yamlfile"
)

// Ensure Store implements domain.TaskConfigStore.
var _ domain.TaskConfigStore = (*Store)(nil)

const tasksKey = "tasks"

// Store implements TaskConfigStore.
type Store struct{}

// NewStore creates a task config store.
func NewStore() *Store {
	return &Store{}
}

// LoadTasks returns the tasks mapping of the config at path.
// Absent files, malformed documents and non-mapping tasks values all yield an empty map.
func (s *Store) LoadTasks(path string) (domain.RawTasks, error) {
	doc, err := readDoc(path)
	if err != nil {
		return nil, err
	}
	tasks, ok := domain.StringKeyMap(doc[tasksKey])
	if !ok {
		return domain.RawTasks{}, nil
	}
	return domain.RawTasks(tasks), nil
}

// SetTask stores spec under name, keeping other keys of the document.
func (s *Store) SetTask(path, name string, spec any) error {
	doc, err := readDoc(path)
	if err != nil {
		return err
	}
	tasks, ok := domain.StringKeyMap(doc[tasksKey])
	if !ok {
		tasks = map[string]any{}
	}
	tasks[name] = spec
	doc[tasksKey] = tasks
	return yamlfile.Write(path, doc)
}

func readDoc(path string) (map[string]any, error) {
	var doc map[string]any
	if _, err := yamlfile.Read(path, &doc, yamlfile.EmptyOnMalformed); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
