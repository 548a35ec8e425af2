package usecase

import (
	"context"
	"testing"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyIgnore_Execute_Idempotent(t *testing.T) {
	// Setup
	ignore, files := newIgnoreApplier(&testutil.MockGit{Top: "/p"})
	uc := NewApplyIgnore(ignore)

	// Execute
	first, err := uc.Execute(context.Background(), ApplyIgnoreInput{Policy: "repo", Dir: "/p"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), ApplyIgnoreInput{Policy: "repo", Dir: "/p"})
	require.NoError(t, err)

	// Assert
	assert.True(t, first.Changed)
	assert.False(t, second.Changed)
	assert.Equal(t, "/p/.gitignore", first.Path)
	assert.Equal(t, []string{".eagle/"}, files.Lines["/p/.gitignore"])
}

func TestApplyIgnore_Execute_RequiresRepo(t *testing.T) {
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	uc := NewApplyIgnore(ignore)

	_, err := uc.Execute(context.Background(), ApplyIgnoreInput{Policy: "repo", Dir: "/tmp"})
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)

	_, err = uc.Execute(context.Background(), ApplyIgnoreInput{Policy: "local", Dir: "/tmp"})
	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}

func TestApplyIgnore_Execute_InvalidPolicy(t *testing.T) {
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	uc := NewApplyIgnore(ignore)

	_, err := uc.Execute(context.Background(), ApplyIgnoreInput{Policy: "everywhere"})

	assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
}

func TestIgnoreStatus_Execute(t *testing.T) {
	// Setup
	git := &testutil.MockGit{
		Top:      "/p",
		GitPaths: map[string]string{"info/exclude": "/p/.git/info/exclude"},
	}
	ignore, files := newIgnoreApplier(git)
	files.Lines["/p/.git/info/exclude"] = []string{"*.log", ".eagle/"}
	uc := NewIgnoreStatus(ignore)

	// Execute
	out, err := uc.Execute(context.Background(), IgnoreStatusInput{Dir: "/p"})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Locations, 3)
	assert.Equal(t, IgnoreLocation{Policy: domain.IgnorePolicyRepo, Path: "/p/.gitignore"}, out.Locations[0])
	assert.Equal(t, IgnoreLocation{Policy: domain.IgnorePolicyLocal, Path: "/p/.git/info/exclude", Present: true}, out.Locations[1])
	assert.Equal(t, "/home/u/.config/git/ignore", out.Locations[2].Path)
	assert.Empty(t, git.SetGlobalExcludes)
}

func TestIgnoreStatus_Execute_NotARepo(t *testing.T) {
	ignore, _ := newIgnoreApplier(&testutil.MockGit{})
	uc := NewIgnoreStatus(ignore)

	_, err := uc.Execute(context.Background(), IgnoreStatusInput{Dir: "/tmp"})

	assert.ErrorIs(t, err, domain.ErrNotGitRepository)
}
