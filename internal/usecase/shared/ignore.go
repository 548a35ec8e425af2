package shared

import (
	"fmt"
	"path/filepath"

	"github.com/eaglekit/ek/internal/domain"
)

// IgnoreApplier writes the .eagle/ line into the file chosen by an ignore policy.
// Fields are ordered to minimize memory padding.
type IgnoreApplier struct {
	Git           domain.Git
	Files         domain.IgnoreFile
	GlobalDefault string // Used when core.excludesFile is unset, e.g. ~/.config/git/ignore
}

// Target returns the ignore file for policy relative to dir.
// For the repo policy outside a repository, dir itself is used when allowOutside is set.
func (a IgnoreApplier) Target(policy domain.IgnorePolicy, dir string, allowOutside bool) (string, error) {
	switch policy {
	case domain.IgnorePolicyRepo:
		top, err := a.Git.Toplevel(dir)
		if err != nil {
			if !allowOutside {
				return "", domain.ErrNotGitRepository
			}
			top = dir
		}
		return filepath.Join(top, ".gitignore"), nil
	case domain.IgnorePolicyLocal:
		if _, err := a.Git.Toplevel(dir); err != nil {
			return "", domain.ErrNotGitRepository
		}
		path, err := a.Git.GitPath(dir, "info/exclude")
		if err != nil {
			return "", fmt.Errorf("resolve info/exclude: %w", err)
		}
		return path, nil
	case domain.IgnorePolicyGlobal:
		return a.ensureGlobalExcludes()
	case domain.IgnorePolicyNone:
		return "", nil
	default:
		return "", domain.ErrInvalidPolicy
	}
}

// Apply ensures the ignore line for policy. It returns the file touched (empty for none)
// and whether the line was added.
func (a IgnoreApplier) Apply(policy domain.IgnorePolicy, dir string, allowOutside bool) (string, bool, error) {
	path, err := a.Target(policy, dir, allowOutside)
	if err != nil || path == "" {
		return path, false, err
	}
	changed, err := a.Files.EnsureLine(path, domain.IgnoreLine)
	if err != nil {
		return path, false, err
	}
	return path, changed, nil
}

// GlobalExcludesPath returns the configured global excludes file, or the default guess.
// Git failures fall back to the default.
func (a IgnoreApplier) GlobalExcludesPath() string {
	path, err := a.Git.GlobalExcludesFile()
	if err != nil || path == "" {
		return a.GlobalDefault
	}
	return domain.ExpandHome(path)
}

// ensureGlobalExcludes returns core.excludesFile, configuring the default when unset.
func (a IgnoreApplier) ensureGlobalExcludes() (string, error) {
	path, err := a.Git.GlobalExcludesFile()
	if err != nil {
		return "", err
	}
	if path != "" {
		return domain.ExpandHome(path), nil
	}
	if err := a.Git.SetGlobalExcludesFile(a.GlobalDefault); err != nil {
		return "", err
	}
	return a.GlobalDefault, nil
}
