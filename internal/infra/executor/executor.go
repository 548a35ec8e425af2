// Package executor launches task processes.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/eaglekit/ek/internal/domain"
)

// Client implements domain.CommandRunner interface.
// Fields are ordered to minimize memory padding.
type Client struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewClient creates a runner attached to the process stdio.
func NewClient() *Client {
	return &Client{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Ensure Client implements domain.CommandRunner interface.
var _ domain.CommandRunner = (*Client)(nil)

// Run executes cmd synchronously and returns its exit code.
// A non-zero exit is not an error; an error means the process could not be started or waited on.
func (c *Client) Run(ctx context.Context, cmd *domain.ExecCommand) (int, error) {
	// #nosec G204 - commands come from the user's own task configuration
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if cmd.Env != nil {
		execCmd.Env = cmd.Env
	}
	execCmd.Stdin = c.Stdin
	execCmd.Stdout = c.Stdout
	execCmd.Stderr = c.Stderr

	err := execCmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		// Killed by a signal: report 128+N like the shell does
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal()), nil
		}
		return 1, nil
	}
	return 1, fmt.Errorf("start %s: %w", cmd.Program, err)
}

// LookPath searches PATH for an executable.
func (c *Client) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
