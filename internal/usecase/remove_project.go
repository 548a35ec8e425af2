package usecase

import (
	"context"
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
)

// RemoveProjectInput contains the parameters for unregistering a project.
type RemoveProjectInput struct {
	Name      string // Project name (required)
	Workspace string // Empty uses the current workspace
}

// RemoveProjectOutput contains the result of unregistering a project.
type RemoveProjectOutput struct {
	Project   domain.Project
	Workspace string
}

// RemoveProject is the use case for unregistering a project.
// The project directory is left untouched.
type RemoveProject struct {
	registry domain.RegistryRepository
}

// NewRemoveProject creates a new RemoveProject use case.
func NewRemoveProject(registry domain.RegistryRepository) *RemoveProject {
	return &RemoveProject{registry: registry}
}

// Execute removes the registry entry.
func (uc *RemoveProject) Execute(_ context.Context, in RemoveProjectInput) (*RemoveProjectOutput, error) {
	reg, err := uc.registry.Load()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	ws := reg.WorkspaceName(in.Workspace)
	p, err := reg.Lookup(ws, in.Name)
	if err != nil {
		return nil, fmt.Errorf("%w in workspace '%s': %s", err, ws, in.Name)
	}

	delete(reg.Workspaces[ws].Projects, in.Name)
	if err := uc.registry.Save(reg); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}
	return &RemoveProjectOutput{Project: p, Workspace: ws}, nil
}
