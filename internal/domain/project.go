package domain

import "path/filepath"

// Project is a registered directory used to scope tasks, TODOs and comments.
type Project struct {
	Name string
	Path string // Absolute project root
}

// MetaDir returns the project's metadata directory.
func (p Project) MetaDir() string {
	return filepath.Join(p.Path, MetaDirName)
}

// ConfigPath returns the project-scope task config.
func (p Project) ConfigPath() string {
	return ProjectConfigPath(p.MetaDir())
}

// BranchConfigPath returns the task config overlay for branch.
func (p Project) BranchConfigPath(branch string) string {
	return BranchConfigPath(p.MetaDir(), branch)
}

// TodosPath returns the TODO store file.
func (p Project) TodosPath() string {
	return TodosPath(p.MetaDir())
}

// CommentsPath returns the comment store file.
func (p Project) CommentsPath() string {
	return CommentsPath(p.MetaDir())
}

// ScriptsDir returns the directory for scaffolded scripts.
func (p Project) ScriptsDir() string {
	return ScriptsDir(p.MetaDir())
}
