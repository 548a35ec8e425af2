package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
)

// SetupState is the current setup, used to prefill the wizard.
type SetupState struct {
	Name         string
	Policy       domain.IgnorePolicy
	FirstRunDone bool
}

// LoadSetup is the use case that reads the setup state.
type LoadSetup struct {
	defaults domain.DefaultsRepository
	user     string
}

// NewLoadSetup creates a new LoadSetup use case.
func NewLoadSetup(defaults domain.DefaultsRepository, user string) *LoadSetup {
	return &LoadSetup{defaults: defaults, user: user}
}

// Execute returns the configured values, falling back to $USER and the local policy.
func (uc *LoadSetup) Execute(_ context.Context) (*SetupState, error) {
	d, err := uc.defaults.Load()
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	policy := d.Preferences.IgnorePolicy
	if !policy.IsValid() {
		policy = domain.IgnorePolicyLocal
	}
	return &SetupState{
		Name:         d.AuthorName(uc.user),
		Policy:       policy,
		FirstRunDone: d.FirstRunDone,
	}, nil
}

// SaveSetupInput contains the answers of the setup wizard.
type SaveSetupInput struct {
	Name   string
	Policy string
}

// SaveSetup is the use case that persists the setup answers and marks the first run done.
type SaveSetup struct {
	defaults domain.DefaultsRepository
}

// NewSaveSetup creates a new SaveSetup use case.
func NewSaveSetup(defaults domain.DefaultsRepository) *SaveSetup {
	return &SaveSetup{defaults: defaults}
}

// Execute validates and saves the answers. Other preferences are preserved.
func (uc *SaveSetup) Execute(_ context.Context, in SaveSetupInput) (*SetupState, error) {
	policy, err := domain.ParseIgnorePolicy(in.Policy)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, in.Policy)
	}
	d, err := uc.defaults.Load()
	if err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		d.User.Name = name
	}
	d.Preferences.IgnorePolicy = policy
	d.FirstRunDone = true
	if err := uc.defaults.Save(d); err != nil {
		return nil, fmt.Errorf("save defaults: %w", err)
	}
	return &SetupState{Name: d.User.Name, Policy: policy, FirstRunDone: true}, nil
}
