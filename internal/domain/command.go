package domain

import (
	"fmt"
	"sort"

	"github.com/kballard/go-shellquote"
)

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
// Fields are ordered to minimize memory padding.
type ExecCommand struct {
	Env     []string // Full environment; nil inherits the current process environment
	Args    []string
	Program string
	Dir     string
}

// NewCommand creates a command that runs program directly.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{Program: program, Args: args, Dir: dir}
}

// NewShellCommand creates a command run through sh -c.
func NewShellCommand(line, dir string) *ExecCommand {
	return &ExecCommand{Program: "sh", Args: []string{"-c", line}, Dir: dir}
}

// Argv returns the program followed by its arguments.
func (c *ExecCommand) Argv() []string {
	return append([]string{c.Program}, c.Args...)
}

// Platform describes the host details needed to build task commands.
type Platform struct {
	Python  string // Python interpreter executable
	Windows bool
}

// BuildTaskCommand turns a task spec into the command to run in root.
// env is the inherited environment (KEY=VALUE form); script env entries override it.
func BuildTaskCommand(spec TaskSpec, root string, extra []string, env []string, pf Platform) (*ExecCommand, error) {
	switch s := spec.(type) {
	case ShellCommand:
		line := s.Line
		if len(extra) > 0 {
			line += " " + shellquote.Join(extra...)
		}
		cmd := NewShellCommand(line, root)
		if pf.Windows {
			cmd = NewCommand("cmd.exe", []string{"/C", line}, root)
		}
		cmd.Env = env
		return cmd, nil
	case ArgvCommand:
		argv := append(append([]string(nil), s.Argv...), extra...)
		cmd := NewCommand(argv[0], argv[1:], root)
		cmd.Env = env
		return cmd, nil
	case ScriptCommand:
		if s.Path == "" {
			return nil, ErrScriptPathMissing
		}
		script := s.ResolvePath(root)
		var cmd *ExecCommand
		switch s.Shell {
		case "", ShellPython:
			cmd = NewCommand(pf.Python, append([]string{script}, extra...), root)
		case ShellBash:
			cmd = NewCommand("bash", append([]string{script}, extra...), root)
		case ShellPwsh, ShellPowershell:
			cmd = NewCommand("pwsh", append([]string{"-File", script}, extra...), root)
		case ShellCmd, ShellBat:
			cmd = NewCommand("cmd.exe", append([]string{"/c", script}, extra...), root)
		default:
			cmd = NewCommand(script, append([]string(nil), extra...), root)
		}
		cmd.Env = MergeEnv(env, s.Env)
		return cmd, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidTaskSpec, spec)
	}
}

// MergeEnv overlays overrides onto base (KEY=VALUE entries). Later keys win.
func MergeEnv(base []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return base
	}
	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range base {
		key := kv
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				key = kv[:i]
				break
			}
		}
		if _, ok := overrides[key]; ok {
			continue
		}
		out = append(out, kv)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out = append(out, k+"="+overrides[k])
	}
	return out
}
