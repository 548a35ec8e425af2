package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// ExitError reports a non-zero exit code of a task or plugin process.
// main exits with Code without printing anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

func exitWith(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}

// RouteArgs rewrites `ek TASK ARGS...` into `ek run task TASK -- ARGS...`
// when TASK is not a builtin command, plugin or flag.
func RouteArgs(root *cobra.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}
	first := args[0]
	if strings.HasPrefix(first, "-") || commandNames(root, true)[first] {
		return args
	}
	routed := make([]string, 0, len(args)+3)
	routed = append(routed, "run", "task", first, "--")
	return append(routed, args[1:]...)
}
