package shared

import (
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
)

// CurrentBranch returns the branch checked out in dir, or "detached" when git fails or prints nothing.
// A detached checkout reads as "HEAD".
func CurrentBranch(git domain.Git, dir string) string {
	branch, err := git.CurrentBranch(dir)
	if err != nil || strings.TrimSpace(branch) == "" {
		return domain.DetachedBranch
	}
	return strings.TrimSpace(branch)
}

// ResolvedTasks is the task table of a project with the branch overlay applied.
// Fields are ordered to minimize memory padding.
type ResolvedTasks struct {
	Project    domain.RawTasks // From .eagle/config.yaml
	Branch     domain.RawTasks // From .eagle/branches/<branch>/config.yaml
	Merged     domain.RawTasks // Branch entries override project entries
	BranchName string
}

// Source returns "branch" when name comes from the overlay, else "project".
func (r *ResolvedTasks) Source(name string) string {
	if _, ok := r.Branch[name]; ok {
		return "branch"
	}
	return "project"
}

// ResolveTasks reads the project and branch task maps of p and merges them.
// No shape validation happens here.
func ResolveTasks(store domain.TaskConfigStore, git domain.Git, p domain.Project) (*ResolvedTasks, error) {
	projectTasks, err := store.LoadTasks(p.ConfigPath())
	if err != nil {
		return nil, fmt.Errorf("load project tasks: %w", err)
	}
	branch := CurrentBranch(git, p.Path)
	branchTasks, err := store.LoadTasks(p.BranchConfigPath(branch))
	if err != nil {
		return nil, fmt.Errorf("load branch tasks: %w", err)
	}
	return &ResolvedTasks{
		Project:    projectTasks,
		Branch:     branchTasks,
		Merged:     domain.MergeTasks(projectTasks, branchTasks),
		BranchName: branch,
	}, nil
}
