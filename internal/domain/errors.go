package domain

import "errors"

// Domain errors.
var (
	ErrProjectNotFound   = errors.New("unknown project")
	ErrNoProjectForDir   = errors.New("no project matched the current directory")
	ErrPathNotFound      = errors.New("path does not exist")
	ErrTaskNotFound      = errors.New("unknown task")
	ErrInvalidTaskSpec   = errors.New("task spec must be string, list, or {type: script} mapping")
	ErrScriptPathMissing = errors.New("script task missing 'path'")
	ErrScriptNotFound    = errors.New("script not found")
	ErrNoTaskSource      = errors.New("provide --cmd or one of --bash/--python/--batch/--pwsh")
	ErrTodoNotFound      = errors.New("todo not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyMessage      = errors.New("message cannot be empty")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidPolicy     = errors.New("invalid ignore policy")
	ErrNotGitRepository  = errors.New("not a git repository (or any of the parent directories)")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
	ErrPluginNotFound    = errors.New("plugin executable not found")
	ErrUnsupportedShell  = errors.New("unsupported shell")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrNotADirectory     = errors.New("not a directory")
)

// usageErrors are reported to the user and end the invocation with status 1.
var usageErrors = []error{
	ErrProjectNotFound,
	ErrNoProjectForDir,
	ErrPathNotFound,
	ErrTaskNotFound,
	ErrInvalidTaskSpec,
	ErrScriptPathMissing,
	ErrScriptNotFound,
	ErrNoTaskSource,
	ErrTodoNotFound,
	ErrCommentNotFound,
	ErrEmptyTitle,
	ErrEmptyMessage,
	ErrInvalidStatus,
	ErrInvalidPriority,
	ErrInvalidCategory,
	ErrInvalidPolicy,
	ErrNotGitRepository,
	ErrNoFieldsToUpdate,
	ErrUnsupportedShell,
	ErrEmptyName,
	ErrNotADirectory,
}

// IsUsageError reports whether err wraps one of the user-facing usage errors.
func IsUsageError(err error) bool {
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
