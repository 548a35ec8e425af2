package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
)

// WorkspaceSummary describes one workspace.
type WorkspaceSummary struct {
	Name     string
	Projects int
	Current  bool
}

// ListWorkspacesOutput contains every workspace sorted by name.
type ListWorkspacesOutput struct {
	Current    string
	Workspaces []WorkspaceSummary
}

// ListWorkspaces is the use case for `ek ws list`.
type ListWorkspaces struct {
	registry domain.RegistryRepository
}

// NewListWorkspaces creates a new ListWorkspaces use case.
func NewListWorkspaces(registry domain.RegistryRepository) *ListWorkspaces {
	return &ListWorkspaces{registry: registry}
}

// Execute lists the workspaces.
func (uc *ListWorkspaces) Execute(_ context.Context) (*ListWorkspacesOutput, error) {
	reg, err := uc.registry.Load()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	current := reg.WorkspaceName("")
	out := &ListWorkspacesOutput{Current: current}
	for _, name := range reg.WorkspaceNames() {
		out.Workspaces = append(out.Workspaces, WorkspaceSummary{
			Name:     name,
			Projects: len(reg.Workspaces[name].Projects),
			Current:  name == current,
		})
	}
	return out, nil
}

// WorkspaceInput names a workspace.
type WorkspaceInput struct {
	Name string
}

// WorkspaceOutput reports the outcome of a workspace change.
type WorkspaceOutput struct {
	Name    string
	Created bool
}

// UseWorkspace is the use case for `ek ws use`. Missing workspaces are created.
type UseWorkspace struct {
	registry domain.RegistryRepository
}

// NewUseWorkspace creates a new UseWorkspace use case.
func NewUseWorkspace(registry domain.RegistryRepository) *UseWorkspace {
	return &UseWorkspace{registry: registry}
}

// Execute switches the current workspace.
func (uc *UseWorkspace) Execute(_ context.Context, in WorkspaceInput) (*WorkspaceOutput, error) {
	return updateWorkspace(uc.registry, in.Name, true)
}

// CreateWorkspace is the use case for `ek ws create`.
type CreateWorkspace struct {
	registry domain.RegistryRepository
}

// NewCreateWorkspace creates a new CreateWorkspace use case.
func NewCreateWorkspace(registry domain.RegistryRepository) *CreateWorkspace {
	return &CreateWorkspace{registry: registry}
}

// Execute creates the workspace if it does not exist.
func (uc *CreateWorkspace) Execute(_ context.Context, in WorkspaceInput) (*WorkspaceOutput, error) {
	return updateWorkspace(uc.registry, in.Name, false)
}

func updateWorkspace(repo domain.RegistryRepository, name string, makeCurrent bool) (*WorkspaceOutput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: workspace", domain.ErrEmptyName)
	}
	reg, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	_, exists := reg.Workspaces[name]
	reg.Workspace(name)
	if makeCurrent {
		reg.CurrentWorkspace = name
	}
	if exists && !makeCurrent {
		return &WorkspaceOutput{Name: name}, nil
	}
	if err := repo.Save(reg); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}
	return &WorkspaceOutput{Name: name, Created: !exists}, nil
}
