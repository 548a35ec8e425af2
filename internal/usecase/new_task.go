package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// ScriptKind selects the scaffold created by `ek run new`.
type ScriptKind string

// Script kinds.
const (
	ScriptNone   ScriptKind = ""
	ScriptBash   ScriptKind = "bash"
	ScriptPython ScriptKind = "python"
	ScriptBatch  ScriptKind = "batch"
	ScriptPwsh   ScriptKind = "pwsh"
)

// scaffold describes the file written for a script kind.
type scaffold struct {
	ext     string
	shell   string
	content string
	mode    fs.FileMode
}

var scaffolds = map[ScriptKind]scaffold{
	ScriptBash: {
		ext:     ".sh",
		shell:   domain.ShellBash,
		content: "#!/usr/bin/env bash\nset -euo pipefail\necho \"Hello from $0\"\n",
		mode:    0o775,
	},
	ScriptPython: {
		ext:     ".py",
		shell:   domain.ShellPython,
		content: "#!/usr/bin/env python3\nimport sys\nprint('Hello from', sys.argv[0])\n",
		mode:    0o775,
	},
	ScriptBatch: {
		ext:     ".bat",
		shell:   domain.ShellCmd,
		content: "@echo off\r\necho Hello from %~nx0\r\n",
		mode:    0o644,
	},
	ScriptPwsh: {
		ext:     ".ps1",
		shell:   domain.ShellPwsh,
		content: "param([String[]]$Args)\nWrite-Host \"Hello from $($MyInvocation.MyCommand.Name)\"\n",
		mode:    0o644,
	},
}

// NewTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	shared.ProjectRef
	Task   string     // Task name (required)
	Cmd    string     // Shell command; ignored when Script is set
	Script ScriptKind // Scaffold a script instead of a command
	Branch bool       // Write to the current branch overlay
}

// NewTaskOutput contains the result of creating a task.
// Fields are ordered to minimize memory padding.
type NewTaskOutput struct {
	Spec       any
	Project    domain.Project
	ConfigPath string
	ScriptPath string // Empty for command tasks
	Branch     string // Empty unless written to the overlay
	Scaffolded bool   // False when the script already existed
}

// NewTask is the use case for `ek run new`.
type NewTask struct {
	registry domain.RegistryRepository
	store    domain.TaskConfigStore
	git      domain.Git
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(registry domain.RegistryRepository, store domain.TaskConfigStore, git domain.Git) *NewTask {
	return &NewTask{registry: registry, store: store, git: git}
}

// Execute writes the task into the project or branch config.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	name := strings.TrimSpace(in.Task)
	if name == "" {
		return nil, fmt.Errorf("%w: task", domain.ErrEmptyName)
	}
	cmdLine := strings.TrimSpace(in.Cmd)
	if in.Script == ScriptNone && cmdLine == "" {
		return nil, domain.ErrNoTaskSource
	}

	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}

	out := &NewTaskOutput{Project: p, ConfigPath: p.ConfigPath()}
	if in.Branch {
		out.Branch = shared.CurrentBranch(uc.git, p.Path)
		out.ConfigPath = p.BranchConfigPath(out.Branch)
	}

	if in.Script == ScriptNone {
		out.Spec = cmdLine
	} else {
		sc, ok := scaffolds[in.Script]
		if !ok {
			return nil, fmt.Errorf("%w: unknown script kind %q", domain.ErrInvalidTaskSpec, in.Script)
		}
		out.ScriptPath = filepath.Join(p.ScriptsDir(), name+sc.ext)
		out.Scaffolded, err = writeScaffold(out.ScriptPath, sc)
		if err != nil {
			return nil, err
		}
		out.Spec = map[string]any{
			"type":  "script",
			"path":  path.Join(domain.MetaDirName, "scripts", name+sc.ext),
			"shell": sc.shell,
		}
	}

	if err := uc.store.SetTask(out.ConfigPath, name, out.Spec); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return out, nil
}

// writeScaffold creates the script unless it already exists.
func writeScaffold(file string, sc scaffold) (bool, error) {
	if _, err := os.Stat(file); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat script: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return false, fmt.Errorf("create scripts dir: %w", err)
	}
	if err := os.WriteFile(file, []byte(sc.content), sc.mode); err != nil {
		return false, fmt.Errorf("write script: %w", err)
	}
	return true, nil
}
