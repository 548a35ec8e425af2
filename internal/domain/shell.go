package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Markers delimit the block written into shell rc files.
const (
	ShellBlockBegin = "# >>> eaglekit >>>"
	ShellBlockEnd   = "# <<< eaglekit <<<"
)

// Shells supported by shell integration.
const (
	ShellNameBash = "bash"
	ShellNameZsh  = "zsh"
	ShellNameFish = "fish"
)

const posixFunction = `ek() {
    if [ "$1" = "cd" ] && [ -n "$2" ] && [ "$#" -eq 2 ]; then
        local project_path
        project_path=$(command ek cd --path "$2" 2>/dev/null)
        if [ $? -eq 0 ] && [ -n "$project_path" ] && [ -d "$project_path" ]; then
            cd "$project_path" || return 1
            echo "$2 -> $project_path"
            return 0
        fi
    fi
    command ek "$@"
}`

const fishFunction = `function ek
    if test (count $argv) -eq 2; and test "$argv[1]" = "cd"
        set -l project_path (command ek cd --path $argv[2] 2>/dev/null)
        if test $status -eq 0; and test -n "$project_path"; and test -d "$project_path"
            cd $project_path; or return 1
            echo "$argv[2] -> $project_path"
            return 0
        end
    end
    command ek $argv
end`

// ShellFunction returns the ek wrapper function for shell.
func ShellFunction(shell string) (string, error) {
	switch shell {
	case "", ShellNameBash, ShellNameZsh:
		return posixFunction, nil
	case ShellNameFish:
		return fishFunction, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}
}

// ShellBlock wraps the shell function in rc-file markers.
func ShellBlock(shell string) (string, error) {
	fn, err := ShellFunction(shell)
	if err != nil {
		return "", err
	}
	return ShellBlockBegin + "\n" + fn + "\n" + ShellBlockEnd + "\n", nil
}

// DetectShell returns the shell name from a $SHELL value, defaulting to bash.
func DetectShell(shellEnv string) string {
	switch name := strings.TrimSuffix(filepath.Base(shellEnv), ".exe"); name {
	case ShellNameZsh, ShellNameFish:
		return name
	default:
		return ShellNameBash
	}
}

// RCFile returns the rc file for shell under home.
func RCFile(home, shell string) string {
	switch shell {
	case ShellNameZsh:
		return filepath.Join(home, ".zshrc")
	case ShellNameFish:
		return filepath.Join(home, ".config", "fish", "config.fish")
	default:
		return filepath.Join(home, ".bashrc")
	}
}
