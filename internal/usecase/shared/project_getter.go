// Package shared holds helpers used by several use cases.
package shared

import (
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
)

// ProjectRef selects a project by name, or by directory when Name is empty.
type ProjectRef struct {
	Name      string // Registered project name
	Workspace string // Workspace override; empty uses the current workspace
	Dir       string // Working directory used when Name is empty
}

// GetProject loads the registry and resolves ref within the selected workspace.
// It returns the project together with the workspace name that was used.
func GetProject(repo domain.RegistryRepository, ref ProjectRef) (domain.Project, string, error) {
	reg, err := repo.Load()
	if err != nil {
		return domain.Project{}, "", fmt.Errorf("load registry: %w", err)
	}
	ws := reg.WorkspaceName(ref.Workspace)

	if ref.Name != "" {
		p, err := reg.Lookup(ws, ref.Name)
		if err != nil {
			return domain.Project{}, ws, fmt.Errorf("%w in workspace '%s': %s", err, ws, ref.Name)
		}
		return p, ws, nil
	}

	p, err := reg.ResolveByDir(ws, ref.Dir)
	if err != nil {
		return domain.Project{}, ws, fmt.Errorf("%w (workspace '%s'); pass a project name or --ws, or run inside a registered project", err, ws)
	}
	return p, ws, nil
}
