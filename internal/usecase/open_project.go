package usecase

import (
	"context"
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// OpenProjectInput contains the parameters for opening a project.
type OpenProjectInput struct {
	shared.ProjectRef
	GOOS string // Target platform, e.g. runtime.GOOS
}

// OpenProjectOutput contains the command used to open the project.
type OpenProjectOutput struct {
	Command *domain.ExecCommand
	Project domain.Project
}

// OpenProject is the use case for opening a project in an editor or file browser.
type OpenProject struct {
	registry domain.RegistryRepository
	runner   domain.CommandRunner
}

// NewOpenProject creates a new OpenProject use case.
func NewOpenProject(registry domain.RegistryRepository, runner domain.CommandRunner) *OpenProject {
	return &OpenProject{registry: registry, runner: runner}
}

// Execute opens the project with `code` when available, else the platform opener.
func (uc *OpenProject) Execute(ctx context.Context, in OpenProjectInput) (*OpenProjectOutput, error) {
	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}

	cmd := uc.opener(p.Path, in.GOOS)
	code, err := uc.runner.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p.Name, err)
	}
	if code != 0 {
		return nil, fmt.Errorf("open %s: %s exited with status %d", p.Name, cmd.Program, code)
	}
	return &OpenProjectOutput{Project: p, Command: cmd}, nil
}

func (uc *OpenProject) opener(path, goos string) *domain.ExecCommand {
	if code, err := uc.runner.LookPath("code"); err == nil {
		return domain.NewCommand(code, []string{path}, path)
	}
	switch goos {
	case "darwin":
		return domain.NewCommand("open", []string{path}, path)
	case "windows":
		return domain.NewCommand("cmd", []string{"/c", "start", "", path}, path)
	default:
		return domain.NewCommand("xdg-open", []string{path}, path)
	}
}
