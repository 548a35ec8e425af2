package usecase

import (
	"context"
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
)

// ShellInput selects the shell and rc file.
type ShellInput struct {
	Shell    string // bash, zsh or fish; detected from ShellEnv when empty
	ShellEnv string // Value of $SHELL
	RCFile   string // Overrides the rc file derived from Home
	Home     string
}

// ShellOutput reports the rc file that was edited.
type ShellOutput struct {
	Shell   string
	RCFile  string
	Changed bool // False when the block was already present (install) or absent (uninstall)
}

func (in ShellInput) resolve() (shell, rc string) {
	shell = in.Shell
	if shell == "" {
		shell = domain.DetectShell(in.ShellEnv)
	}
	rc = in.RCFile
	if rc == "" {
		rc = domain.RCFile(in.Home, shell)
	}
	return shell, rc
}

// InstallShell is the use case for `ek shell install`.
type InstallShell struct {
	rc domain.ShellRC
}

// NewInstallShell creates a new InstallShell use case.
func NewInstallShell(rc domain.ShellRC) *InstallShell {
	return &InstallShell{rc: rc}
}

// Execute appends the marked ek function block unless it is already installed.
func (uc *InstallShell) Execute(_ context.Context, in ShellInput) (*ShellOutput, error) {
	shell, rc := in.resolve()
	block, err := domain.ShellBlock(shell)
	if err != nil {
		return nil, err
	}
	changed, err := uc.rc.Install(rc, block)
	if err != nil {
		return nil, fmt.Errorf("install shell integration: %w", err)
	}
	return &ShellOutput{Shell: shell, RCFile: rc, Changed: changed}, nil
}

// UninstallShell is the use case for `ek shell uninstall`.
type UninstallShell struct {
	rc domain.ShellRC
}

// NewUninstallShell creates a new UninstallShell use case.
func NewUninstallShell(rc domain.ShellRC) *UninstallShell {
	return &UninstallShell{rc: rc}
}

// Execute removes the marked block from the rc file.
func (uc *UninstallShell) Execute(_ context.Context, in ShellInput) (*ShellOutput, error) {
	shell, rc := in.resolve()
	changed, err := uc.rc.Uninstall(rc)
	if err != nil {
		return nil, fmt.Errorf("uninstall shell integration: %w", err)
	}
	return &ShellOutput{Shell: shell, RCFile: rc, Changed: changed}, nil
}
