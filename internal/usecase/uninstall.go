package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/eaglekit/ek/internal/domain"
)

// UninstallInput contains the parameters for removing eaglekit data.
type UninstallInput struct {
	Shell         ShellInput
	Yes           bool // Without it nothing is removed
	PurgeProjects bool // Also remove every registered project's .eagle/ directory
}

// UninstallOutput lists what was (or would be) removed.
type UninstallOutput struct {
	ShellRC      string
	Targets      []string // Directories removed, config directory last
	Removed      bool
	ShellRemoved bool
}

// Uninstall is the use case for `ek uninstall`.
type Uninstall struct {
	registry  domain.RegistryRepository
	rc        domain.ShellRC
	logger    domain.Logger
	configDir string
}

// NewUninstall creates a new Uninstall use case.
func NewUninstall(registry domain.RegistryRepository, rc domain.ShellRC, logger domain.Logger, configDir string) *Uninstall {
	return &Uninstall{registry: registry, rc: rc, logger: logger, configDir: configDir}
}

// Execute removes the shell block, project metadata when asked, and the config directory.
func (uc *Uninstall) Execute(_ context.Context, in UninstallInput) (*UninstallOutput, error) {
	_, rc := in.Shell.resolve()
	out := &UninstallOutput{ShellRC: rc}

	if in.PurgeProjects {
		reg, err := uc.registry.Load()
		if err != nil {
			return nil, fmt.Errorf("load registry: %w", err)
		}
		seen := map[string]bool{}
		for _, ws := range reg.WorkspaceNames() {
			for _, p := range reg.Projects(ws) {
				meta := p.MetaDir()
				if seen[meta] {
					continue
				}
				seen[meta] = true
				if _, err := os.Stat(meta); err == nil {
					out.Targets = append(out.Targets, meta)
				}
			}
		}
	}
	out.Targets = append(out.Targets, uc.configDir)

	if !in.Yes {
		return out, nil
	}

	removed, err := uc.rc.Uninstall(rc)
	if err != nil {
		uc.logger.Warn("could not remove shell integration", "rc", rc, "err", err)
	}
	out.ShellRemoved = removed

	for _, dir := range out.Targets {
		if err := os.RemoveAll(dir); err != nil {
			return out, fmt.Errorf("remove %s: %w", dir, err)
		}
	}
	out.Removed = true
	return out, nil
}
