package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// AddProjectInput contains the parameters for registering a project.
type AddProjectInput struct {
	Path      string // Project directory (required, ~ expanded)
	Name      string // Defaults to the directory base name
	Workspace string // Empty uses the current workspace
}

// AddProjectOutput contains the result of registering a project.
// Fields are ordered to minimize memory padding.
type AddProjectOutput struct {
	IgnoreErr     error // Set when applying the ignore policy failed
	Project       domain.Project
	Workspace     string
	Policy        domain.IgnorePolicy
	IgnorePath    string
	IgnoreChanged bool
	Replaced      bool // An entry with the same name was overwritten
}

// AddProject is the use case for registering a project directory.
type AddProject struct {
	registry domain.RegistryRepository
	defaults domain.DefaultsRepository
	logger   domain.Logger
	ignore   shared.IgnoreApplier
}

// NewAddProject creates a new AddProject use case.
func NewAddProject(registry domain.RegistryRepository, defaults domain.DefaultsRepository, ignore shared.IgnoreApplier, logger domain.Logger) *AddProject {
	return &AddProject{
		registry: registry,
		defaults: defaults,
		ignore:   ignore,
		logger:   logger,
	}
}

// Execute registers the project and applies the default ignore policy.
// Ignore failures are reported in the output, never returned.
func (uc *AddProject) Execute(_ context.Context, in AddProjectInput) (*AddProjectOutput, error) {
	if strings.TrimSpace(in.Path) == "" {
		return nil, fmt.Errorf("%w: path", domain.ErrEmptyName)
	}
	path := domain.ResolvePath(in.Path)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPathNotFound, in.Path)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotADirectory, in.Path)
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = filepath.Base(path)
	}

	reg, err := uc.registry.Load()
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	ws := reg.WorkspaceName(in.Workspace)
	projects := reg.Workspace(ws).Projects
	_, replaced := projects[name]
	projects[name] = domain.ProjectEntry{Path: path}
	if err := uc.registry.Save(reg); err != nil {
		return nil, fmt.Errorf("save registry: %w", err)
	}

	out := &AddProjectOutput{
		Project:   domain.Project{Name: name, Path: path},
		Workspace: ws,
		Policy:    domain.IgnorePolicyNone,
		Replaced:  replaced,
	}

	defaults, err := uc.defaults.Load()
	if err != nil {
		uc.logger.Warn("could not read defaults, skipping ignore policy", "err", err)
		return out, nil
	}
	out.Policy = defaults.EffectiveIgnorePolicy()
	if out.Policy == domain.IgnorePolicyNone {
		return out, nil
	}

	out.IgnorePath, out.IgnoreChanged, out.IgnoreErr = uc.ignore.Apply(out.Policy, path, true)
	if out.IgnoreErr != nil {
		uc.logger.Warn("could not apply ignore policy", "policy", out.Policy, "err", out.IgnoreErr)
	}
	return out, nil
}
