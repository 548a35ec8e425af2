package usecase

import (
	"context"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// ApplyIgnoreInput contains the parameters for writing the .eagle/ ignore line.
type ApplyIgnoreInput struct {
	Policy string // repo, local, global or none
	Dir    string // Directory inside the target repository
}

// ApplyIgnoreOutput reports where the line went.
type ApplyIgnoreOutput struct {
	Policy  domain.IgnorePolicy
	Path    string // Empty for none
	Changed bool   // False when the line was already present
}

// ApplyIgnore is the use case for `ek ignore repo|local|global`.
type ApplyIgnore struct {
	ignore shared.IgnoreApplier
}

// NewApplyIgnore creates a new ApplyIgnore use case.
func NewApplyIgnore(ignore shared.IgnoreApplier) *ApplyIgnore {
	return &ApplyIgnore{ignore: ignore}
}

// Execute applies the policy. repo and local require a git repository.
func (uc *ApplyIgnore) Execute(_ context.Context, in ApplyIgnoreInput) (*ApplyIgnoreOutput, error) {
	policy, err := domain.ParseIgnorePolicy(in.Policy)
	if err != nil {
		return nil, err
	}
	path, changed, err := uc.ignore.Apply(policy, in.Dir, false)
	if err != nil {
		return nil, err
	}
	return &ApplyIgnoreOutput{Policy: policy, Path: path, Changed: changed}, nil
}
