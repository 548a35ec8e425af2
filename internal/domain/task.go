// Package domain contains core business entities and interfaces.
package domain

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// TaskSpec is a parsed task definition.
// It is one of ShellCommand, ArgvCommand or ScriptCommand.
type TaskSpec interface {
	// Kind returns "shell", "argv" or "script".
	Kind() string
	// String renders the spec for listings.
	String() string
}

// ShellCommand is a command line run through the system shell.
type ShellCommand struct {
	Line string
}

// Kind implements TaskSpec.
func (ShellCommand) Kind() string { return "shell" }

func (s ShellCommand) String() string { return s.Line }

// ArgvCommand is executed directly without shell interpretation.
type ArgvCommand struct {
	Argv []string
}

// Kind implements TaskSpec.
func (ArgvCommand) Kind() string { return "argv" }

func (a ArgvCommand) String() string {
	b, err := json.Marshal(a.Argv)
	if err != nil {
		return strings.Join(a.Argv, " ")
	}
	return string(b)
}

// ScriptCommand runs a script file with an interpreter chosen by Shell.
// Fields are ordered to minimize memory padding.
type ScriptCommand struct {
	Env   map[string]string
	Path  string
	Shell string
}

// Kind implements TaskSpec.
func (ScriptCommand) Kind() string { return "script" }

func (s ScriptCommand) String() string {
	shell := s.Shell
	if shell == "" {
		shell = ShellPython
	}
	return fmt.Sprintf("script %s (%s)", s.Path, shell)
}

// ResolvePath returns the script path, relative paths resolved against root.
func (s ScriptCommand) ResolvePath(root string) string {
	if filepath.IsAbs(s.Path) {
		return s.Path
	}
	return filepath.Join(root, s.Path)
}

// Shells understood by script descriptors.
const (
	ShellPython     = "python"
	ShellBash       = "bash"
	ShellPwsh       = "pwsh"
	ShellPowershell = "powershell"
	ShellCmd        = "cmd"
	ShellBat        = "bat"
)

// RawTasks maps task names to their undecoded YAML values.
type RawTasks map[string]any

// Names returns the task names sorted.
func (t RawTasks) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MergeTasks returns project overlaid with branch. Branch entries win on name collision.
func MergeTasks(project, branch RawTasks) RawTasks {
	merged := make(RawTasks, len(project)+len(branch))
	for name, spec := range project {
		merged[name] = spec
	}
	for name, spec := range branch {
		merged[name] = spec
	}
	return merged
}

// ParseTaskSpec converts a raw YAML value into a TaskSpec.
func ParseTaskSpec(raw any) (TaskSpec, error) {
	switch v := raw.(type) {
	case string:
		return ShellCommand{Line: v}, nil
	case []any:
		argv := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := scalarString(item)
			if !ok {
				return nil, ErrInvalidTaskSpec
			}
			argv = append(argv, s)
		}
		if len(argv) == 0 {
			return nil, ErrInvalidTaskSpec
		}
		return ArgvCommand{Argv: argv}, nil
	case []string:
		if len(v) == 0 {
			return nil, ErrInvalidTaskSpec
		}
		return ArgvCommand{Argv: append([]string(nil), v...)}, nil
	case map[string]any, map[any]any:
		m, _ := StringKeyMap(v)
		return parseScript(m)
	default:
		return nil, ErrInvalidTaskSpec
	}
}

func parseScript(m map[string]any) (TaskSpec, error) {
	if typ, _ := m["type"].(string); typ != "script" {
		return nil, ErrInvalidTaskSpec
	}
	path, _ := scalarString(m["path"])
	if path == "" {
		return nil, ErrScriptPathMissing
	}
	shell, _ := scalarString(m["shell"])
	script := ScriptCommand{Path: path, Shell: shell}
	if env, ok := StringKeyMap(m["env"]); ok {
		script.Env = make(map[string]string, len(env))
		for k, v := range env {
			script.Env[k] = scalarText(v)
		}
	}
	return script, nil
}

// scalarString stringifies YAML scalars. Collections and nil are rejected.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	case map[string]any, map[any]any, []any:
		return "", false
	default:
		return scalarText(s), true
	}
}

// scalarText renders a YAML scalar as text. Null is empty and booleans are lowercase.
func scalarText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprint(s)
	}
}

// StringKeyMap returns v as a mapping with string keys.
// yaml.v3 decodes mappings with any non-string key into map[any]any; such keys are rendered with scalarText.
func StringKeyMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case RawTasks:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[scalarText(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// RenderRawTask renders an unparsed task for listings.
func RenderRawTask(raw any) string {
	spec, err := ParseTaskSpec(raw)
	if err != nil {
		return fmt.Sprintf("%v (invalid)", raw)
	}
	return spec.String()
}
