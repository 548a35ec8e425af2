package usecase

import (
	"context"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// WhereProjectInput contains the parameters for locating a project.
type WhereProjectInput struct {
	shared.ProjectRef
}

// WhereProjectOutput contains the located project.
type WhereProjectOutput struct {
	Project   domain.Project
	Workspace string
}

// WhereProject is the use case behind `ek where` and `ek cd --path`.
type WhereProject struct {
	registry domain.RegistryRepository
}

// NewWhereProject creates a new WhereProject use case.
func NewWhereProject(registry domain.RegistryRepository) *WhereProject {
	return &WhereProject{registry: registry}
}

// Execute resolves the project by name, or by directory when no name is given.
func (uc *WhereProject) Execute(_ context.Context, in WhereProjectInput) (*WhereProjectOutput, error) {
	p, ws, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	return &WhereProjectOutput{Project: p, Workspace: ws}, nil
}
