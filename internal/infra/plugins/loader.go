// Package plugins discovers external ek-<name> commands.
package plugins

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/eaglekit/ek/internal/domain"
)

// Ensure Loader implements domain.PluginLoader.
var _ domain.PluginLoader = (*Loader)(nil)

// manifest is the plugins.toml document.
type manifest struct {
	Plugins []manifestEntry `toml:"plugin"`
}

type manifestEntry struct {
	Name        string `toml:"name"`
	Command     string `toml:"command"`
	Description string `toml:"description"`
}

// Loader finds plugins in the TOML manifest and on PATH.
// Fields are ordered to minimize memory padding.
type Loader struct {
	lookPath     func(string) (string, error)
	manifestPath string
	pathEnv      string
}

// NewLoader creates a loader for the manifest at manifestPath, scanning the current PATH.
func NewLoader(manifestPath string) *Loader {
	return NewLoaderWithPath(manifestPath, os.Getenv("PATH"))
}

// NewLoaderWithPath creates a loader scanning pathEnv instead of $PATH.
// This is useful for testing.
func NewLoaderWithPath(manifestPath, pathEnv string) *Loader {
	l := &Loader{manifestPath: manifestPath, pathEnv: pathEnv}
	l.lookPath = l.search
	return l
}

// Load returns every discovered plugin sorted by name.
// Manifest entries take precedence over PATH executables of the same name.
func (l *Loader) Load(reserved map[string]bool) domain.PluginSet {
	seen := map[string]bool{}
	var out []domain.Plugin

	entries, err := l.readManifest()
	if err != nil {
		out = append(out, domain.Plugin{
			Name:   filepath.Base(l.manifestPath),
			Source: domain.PluginSourceManifest,
			Status: domain.PluginFailed,
			Err:    err,
		})
	}
	for _, e := range entries {
		p := l.loadManifestEntry(e, reserved)
		if p.Name != "" {
			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
		}
		out = append(out, p)
	}

	for _, p := range l.scanPath() {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		if reserved[p.Name] {
			p.Status = domain.PluginAvailable
			p.Err = fmt.Errorf("name clashes with built-in command %q", p.Name)
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return domain.PluginSet{Plugins: out}
}

func (l *Loader) readManifest() ([]manifestEntry, error) {
	if l.manifestPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(l.manifestPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plugin manifest: %w", err)
	}
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse plugin manifest: %w", err)
	}
	return m.Plugins, nil
}

func (l *Loader) loadManifestEntry(e manifestEntry, reserved map[string]bool) domain.Plugin {
	p := domain.Plugin{
		Name:        strings.TrimSpace(e.Name),
		Command:     strings.TrimSpace(e.Command),
		Description: e.Description,
		Source:      domain.PluginSourceManifest,
	}
	if p.Name == "" {
		p.Status = domain.PluginFailed
		p.Err = errors.New("manifest entry without name")
		return p
	}
	if p.Command == "" {
		p.Command = domain.PluginCommandPrefix + p.Name
	}
	if reserved[p.Name] {
		p.Status = domain.PluginFailed
		p.Err = fmt.Errorf("name clashes with built-in command %q", p.Name)
		return p
	}
	exe, err := l.lookPath(domain.ExpandHome(p.Command))
	if err != nil {
		p.Status = domain.PluginFailed
		p.Err = fmt.Errorf("%w: %s", domain.ErrPluginNotFound, p.Command)
		return p
	}
	p.Executable = exe
	p.Status = domain.PluginLoaded
	return p
}

// scanPath lists ek-<name> executables in PATH order, first match per name.
func (l *Loader) scanPath() []domain.Plugin {
	seen := map[string]bool{}
	var out []domain.Plugin
	for _, dir := range filepath.SplitList(l.pathEnv) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name, ok := domain.PluginNameFromExecutable(entry.Name())
			if !ok || seen[name] {
				continue
			}
			full := filepath.Join(dir, entry.Name())
			if !isExecutable(full) {
				continue
			}
			seen[name] = true
			out = append(out, domain.Plugin{
				Name:       name,
				Command:    entry.Name(),
				Executable: full,
				Source:     domain.PluginSourcePath,
				Status:     domain.PluginLoaded,
			})
		}
	}
	return out
}

// search resolves command like exec.LookPath but against the loader's PATH.
func (l *Loader) search(command string) (string, error) {
	if strings.ContainsRune(command, os.PathSeparator) || filepath.IsAbs(command) {
		if isExecutable(command) {
			return filepath.Abs(command)
		}
		return "", exec.ErrNotFound
	}
	for _, dir := range filepath.SplitList(l.pathEnv) {
		if dir == "" {
			continue
		}
		for _, candidate := range candidates(filepath.Join(dir, command)) {
			if isExecutable(candidate) {
				return candidate, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

func candidates(path string) []string {
	if runtime.GOOS == "windows" && filepath.Ext(path) == "" {
		return []string{path + ".exe", path + ".bat", path + ".cmd"}
	}
	return []string{path}
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		ext := strings.ToLower(filepath.Ext(path))
		return ext == ".exe" || ext == ".bat" || ext == ".cmd"
	}
	return info.Mode().Perm()&0o111 != 0
}
