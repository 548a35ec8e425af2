package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTaskCommand_Shell(t *testing.T) {
	env := []string{"PATH=/bin"}

	cmd, err := BuildTaskCommand(ShellCommand{Line: "echo"}, "/proj", []string{"a b", "c"}, env, Platform{})

	require.NoError(t, err)
	assert.Equal(t, []string{"sh", "-c", "echo 'a b' c"}, cmd.Argv())
	assert.Equal(t, "/proj", cmd.Dir)
	assert.Equal(t, env, cmd.Env)
}

func TestBuildTaskCommand_ShellWindows(t *testing.T) {
	cmd, err := BuildTaskCommand(ShellCommand{Line: "dir"}, `C:\proj`, nil, nil, Platform{Windows: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"cmd.exe", "/C", "dir"}, cmd.Argv())
}

func TestBuildTaskCommand_Argv(t *testing.T) {
	spec := ArgvCommand{Argv: []string{"go", "test"}}

	cmd, err := BuildTaskCommand(spec, "/proj", []string{"-run", "X Y"}, nil, Platform{})

	require.NoError(t, err)
	assert.Equal(t, []string{"go", "test", "-run", "X Y"}, cmd.Argv())
	assert.Equal(t, []string{"go", "test"}, spec.Argv, "spec must not be mutated")
}

func TestBuildTaskCommand_Script(t *testing.T) {
	pf := Platform{Python: "python3"}
	tests := []struct {
		shell string
		want  []string
	}{
		{"", []string{"python3", "/proj/s", "x"}},
		{"python", []string{"python3", "/proj/s", "x"}},
		{"bash", []string{"bash", "/proj/s", "x"}},
		{"pwsh", []string{"pwsh", "-File", "/proj/s", "x"}},
		{"powershell", []string{"pwsh", "-File", "/proj/s", "x"}},
		{"cmd", []string{"cmd.exe", "/c", "/proj/s", "x"}},
		{"bat", []string{"cmd.exe", "/c", "/proj/s", "x"}},
		{"zsh", []string{"/proj/s", "x"}},
	}

	for _, tt := range tests {
		t.Run("shell="+tt.shell, func(t *testing.T) {
			cmd, err := BuildTaskCommand(ScriptCommand{Path: "s", Shell: tt.shell}, "/proj", []string{"x"}, nil, pf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.Argv())
			assert.Equal(t, "/proj", cmd.Dir)
		})
	}
}

func TestBuildTaskCommand_ScriptEnvOverrides(t *testing.T) {
	spec := ScriptCommand{Path: "s.sh", Shell: "bash", Env: map[string]string{"MODE": "prod", "NEW": "1"}}

	cmd, err := BuildTaskCommand(spec, "/proj", nil, []string{"MODE=dev", "HOME=/h"}, Platform{})

	require.NoError(t, err)
	assert.Equal(t, []string{"HOME=/h", "MODE=prod", "NEW=1"}, cmd.Env)
}

func TestBuildTaskCommand_ScriptMissingPath(t *testing.T) {
	_, err := BuildTaskCommand(ScriptCommand{}, "/proj", nil, nil, Platform{})
	assert.ErrorIs(t, err, ErrScriptPathMissing)
}

func TestMergeEnv_NoOverrides(t *testing.T) {
	base := []string{"A=1"}
	assert.Equal(t, base, MergeEnv(base, nil))
}
