// Package git provides git operations.
package git

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/eaglekit/ek/internal/domain"
)

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)

// Client runs the git executable for repository queries and uses go-git to read commits.
type Client struct {
	bin string
}

// NewClient creates a git client that runs the git found on PATH.
func NewClient() *Client {
	return &Client{bin: "git"}
}

// CurrentBranch returns the abbreviated name of HEAD in dir.
// A detached HEAD is reported as "HEAD" by git.
func (c *Client) CurrentBranch(dir string) (string, error) {
	out, err := c.output(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return out, nil
}

// Toplevel returns the root of the working tree containing dir.
func (c *Client) Toplevel(dir string) (string, error) {
	out, err := c.output(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", domain.ErrNotGitRepository
	}
	return filepath.Clean(out), nil
}

// GitPath resolves name inside the git directory of dir. Relative results are joined to the toplevel.
func (c *Client) GitPath(dir, name string) (string, error) {
	top, err := c.Toplevel(dir)
	if err != nil {
		return "", err
	}
	out, err := c.output(top, "rev-parse", "--git-path", name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve git path %s: %w", name, err)
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(top, out)
	}
	return filepath.Clean(out), nil
}

// GlobalExcludesFile returns core.excludesFile from the global config, or "" when unset.
func (c *Client) GlobalExcludesFile() (string, error) {
	out, err := c.output("", "config", "--global", "core.excludesFile")
	if err != nil {
		// git config exits 1 when the key is not set
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", fmt.Errorf("failed to read core.excludesFile: %w", err)
	}
	return out, nil
}

// SetGlobalExcludesFile writes core.excludesFile into the global config.
func (c *Client) SetGlobalExcludesFile(path string) error {
	cmd := exec.Command(c.bin, "config", "--global", "core.excludesFile", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("failed to set core.excludesFile: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// HeadInfo reads the HEAD commit of the repository containing dir.
func (c *Client) HeadInfo(dir string) (*domain.CommitInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, domain.ErrNotGitRepository
		}
		return nil, fmt.Errorf("open repository: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("read HEAD commit: %w", err)
	}

	summary, _, _ := strings.Cut(strings.TrimSpace(commit.Message), "\n")
	return &domain.CommitInfo{
		Hash:    commit.Hash.String(),
		Summary: summary,
		Author:  commit.Author.Name,
		When:    commit.Author.When,
	}, nil
}

func (c *Client) output(dir string, args ...string) (string, error) {
	cmd := exec.Command(c.bin, args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
