package usecase

import (
	"context"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	shared.ProjectRef
}

// TaskListing is one merged task entry.
// Fields are ordered to minimize memory padding.
type TaskListing struct {
	Name    string
	Display string // Rendered spec
	Kind    string // shell, argv or script; empty when invalid
	Source  string // project or branch
	Invalid bool
}

// ListTasksOutput contains the merged task table sorted by name.
type ListTasksOutput struct {
	Project domain.Project
	Branch  string
	Tasks   []TaskListing
}

// ListTasks is the use case for `ek run list`.
type ListTasks struct {
	registry domain.RegistryRepository
	store    domain.TaskConfigStore
	git      domain.Git
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(registry domain.RegistryRepository, store domain.TaskConfigStore, git domain.Git) *ListTasks {
	return &ListTasks{registry: registry, store: store, git: git}
}

// Execute resolves the project and lists its tasks with the branch overlay applied.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	resolved, err := shared.ResolveTasks(uc.store, uc.git, p)
	if err != nil {
		return nil, err
	}

	out := &ListTasksOutput{Project: p, Branch: resolved.BranchName}
	for _, name := range resolved.Merged.Names() {
		raw := resolved.Merged[name]
		entry := TaskListing{
			Name:    name,
			Display: domain.RenderRawTask(raw),
			Source:  resolved.Source(name),
		}
		if spec, err := domain.ParseTaskSpec(raw); err != nil {
			entry.Invalid = true
		} else {
			entry.Kind = spec.Kind()
		}
		out.Tasks = append(out.Tasks, entry)
	}
	return out, nil
}
