package usecase

import (
	"context"
	"path/filepath"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// IgnoreStatusInput contains the parameters for inspecting ignore files.
type IgnoreStatusInput struct {
	Dir string
}

// IgnoreLocation is one candidate ignore file.
// Fields are ordered to minimize memory padding.
type IgnoreLocation struct {
	Err     error // Set when the file could not be read
	Policy  domain.IgnorePolicy
	Path    string
	Present bool
}

// IgnoreStatusOutput lists the repo, local and global locations in that order.
type IgnoreStatusOutput struct {
	Toplevel  string
	Locations []IgnoreLocation
}

// IgnoreStatus is the use case for `ek ignore status`.
type IgnoreStatus struct {
	git    domain.Git
	files  domain.IgnoreFile
	ignore shared.IgnoreApplier
}

// NewIgnoreStatus creates a new IgnoreStatus use case.
func NewIgnoreStatus(ignore shared.IgnoreApplier) *IgnoreStatus {
	return &IgnoreStatus{git: ignore.Git, files: ignore.Files, ignore: ignore}
}

// Execute reports whether .eagle/ is listed in each location. It never writes.
func (uc *IgnoreStatus) Execute(_ context.Context, in IgnoreStatusInput) (*IgnoreStatusOutput, error) {
	top, err := uc.git.Toplevel(in.Dir)
	if err != nil {
		return nil, domain.ErrNotGitRepository
	}

	out := &IgnoreStatusOutput{Toplevel: top}
	out.Locations = append(out.Locations, uc.check(domain.IgnorePolicyRepo, filepath.Join(top, ".gitignore")))

	local, err := uc.git.GitPath(in.Dir, "info/exclude")
	if err != nil {
		out.Locations = append(out.Locations, IgnoreLocation{Policy: domain.IgnorePolicyLocal, Err: err})
	} else {
		out.Locations = append(out.Locations, uc.check(domain.IgnorePolicyLocal, local))
	}

	out.Locations = append(out.Locations, uc.check(domain.IgnorePolicyGlobal, uc.ignore.GlobalExcludesPath()))
	return out, nil
}

func (uc *IgnoreStatus) check(policy domain.IgnorePolicy, path string) IgnoreLocation {
	present, err := uc.files.Contains(path, domain.IgnoreLine)
	return IgnoreLocation{Policy: policy, Path: path, Present: present, Err: err}
}
