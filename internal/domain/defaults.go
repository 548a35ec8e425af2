package domain

import "strings"

// IgnorePolicy selects where the .eagle/ ignore line is written.
type IgnorePolicy string

const (
	IgnorePolicyRepo   IgnorePolicy = "repo"   // <toplevel>/.gitignore
	IgnorePolicyLocal  IgnorePolicy = "local"  // .git/info/exclude
	IgnorePolicyGlobal IgnorePolicy = "global" // core.excludesFile
	IgnorePolicyNone   IgnorePolicy = "none"
)

// AllIgnorePolicies returns the policies in the order the wizard offers them.
func AllIgnorePolicies() []IgnorePolicy {
	return []IgnorePolicy{IgnorePolicyLocal, IgnorePolicyGlobal, IgnorePolicyRepo, IgnorePolicyNone}
}

// IsValid returns true if the policy is a known value.
func (p IgnorePolicy) IsValid() bool {
	switch p {
	case IgnorePolicyRepo, IgnorePolicyLocal, IgnorePolicyGlobal, IgnorePolicyNone:
		return true
	default:
		return false
	}
}

// Describe returns a one-line explanation of the policy.
func (p IgnorePolicy) Describe() string {
	switch p {
	case IgnorePolicyRepo:
		return "append .eagle/ to the repository .gitignore (shared with collaborators)"
	case IgnorePolicyLocal:
		return "append .eagle/ to .git/info/exclude (this clone only)"
	case IgnorePolicyGlobal:
		return "append .eagle/ to the global core.excludesFile (every repository)"
	case IgnorePolicyNone:
		return "leave ignore files untouched"
	default:
		return ""
	}
}

// ParseIgnorePolicy normalizes and validates a policy string.
func ParseIgnorePolicy(s string) (IgnorePolicy, error) {
	p := IgnorePolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrInvalidPolicy
	}
	return p, nil
}

// Defaults holds user preferences stored in defaults.yaml.
type Defaults struct {
	User         UserDefaults `yaml:"user"`
	Preferences  Preferences  `yaml:"preferences"`
	FirstRunDone bool         `yaml:"first_run_done"`
}

// UserDefaults identifies the user for comment authorship.
type UserDefaults struct {
	Name string `yaml:"name,omitempty"`
}

// Preferences holds tool behavior settings.
type Preferences struct {
	Extra        map[string]any `yaml:",inline"`
	IgnorePolicy IgnorePolicy   `yaml:"ignore_policy,omitempty"`
}

// EffectiveIgnorePolicy returns the configured policy, or none when unset or invalid.
func (d *Defaults) EffectiveIgnorePolicy() IgnorePolicy {
	if d == nil || !d.Preferences.IgnorePolicy.IsValid() {
		return IgnorePolicyNone
	}
	return d.Preferences.IgnorePolicy
}

// AuthorName picks the comment author: the configured name, then user, then "dev".
func (d *Defaults) AuthorName(user string) string {
	if d != nil && strings.TrimSpace(d.User.Name) != "" {
		return strings.TrimSpace(d.User.Name)
	}
	if strings.TrimSpace(user) != "" {
		return strings.TrimSpace(user)
	}
	return "dev"
}
