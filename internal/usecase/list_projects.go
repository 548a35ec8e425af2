package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/eaglekit/ek/internal/domain"
)

// ListProjectsInput contains the parameters for listing projects.
type ListProjectsInput struct {
	Workspace string // Empty uses the current workspace
}

// ProjectListing is a registered project with its on-disk state.
type ProjectListing struct {
	domain.Project
	Missing bool // The registered path no longer exists
}

// ListProjectsOutput contains the projects of a workspace sorted by name.
type ListProjectsOutput struct {
	Workspace string
	Projects  []ProjectListing
}

// ListProjects is the use case for listing registered projects.
type ListProjects struct {
	registry domain.RegistryRepository
}

// NewListProjects creates a new ListProjects use case.
func NewListProjects(registry domain.RegistryRepository) *ListProjects {
	return &ListProjects{registry: registry}
}

// Execute returns the projects of the selected workspace.
func (uc *ListProjects) Execute(_ context.Context, in ListProjectsInput) (*ListProjectsOutput, error) {
	reg, err := uc.registry.Load()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	ws := reg.WorkspaceName(in.Workspace)

	out := &ListProjectsOutput{Workspace: ws}
	for _, p := range reg.Projects(ws) {
		_, statErr := os.Stat(p.Path)
		out.Projects = append(out.Projects, ProjectListing{Project: p, Missing: statErr != nil})
	}
	return out, nil
}
