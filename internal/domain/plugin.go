package domain

// PluginStatus is the outcome of loading a plugin.
type PluginStatus string

const (
	PluginLoaded    PluginStatus = "loaded"
	PluginFailed    PluginStatus = "failed"
	PluginAvailable PluginStatus = "available"
)

// PluginSource tells where a plugin was discovered.
type PluginSource string

const (
	PluginSourceManifest PluginSource = "manifest"
	PluginSourcePath     PluginSource = "path"
)

// Plugin is an external executable exposed as an ek subcommand.
// Fields are ordered to minimize memory padding.
type Plugin struct {
	Err         error
	Name        string
	Command     string // As written in the manifest, or the file name on PATH
	Executable  string // Resolved absolute path; empty when not found
	Description string
	Source      PluginSource
	Status      PluginStatus
}

// Detail returns the error text for failed plugins, else the description.
func (p Plugin) Detail() string {
	if p.Err != nil {
		return p.Err.Error()
	}
	return p.Description
}

// PluginSet holds the load results for one invocation.
type PluginSet struct {
	Plugins []Plugin
}

// Loaded returns the plugins that can be executed.
func (s PluginSet) Loaded() []Plugin {
	var out []Plugin
	for _, p := range s.Plugins {
		if p.Status == PluginLoaded {
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many plugins have the given status.
func (s PluginSet) Count(status PluginStatus) int {
	n := 0
	for _, p := range s.Plugins {
		if p.Status == status {
			n++
		}
	}
	return n
}
