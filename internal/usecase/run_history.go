package usecase

import (
	"context"
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
)

// RunHistoryInput contains the parameters for reading the run journal.
type RunHistoryInput struct {
	Project string // Only runs of this project when set
	Limit   int
}

// RunHistoryOutput contains journal entries, oldest first.
type RunHistoryOutput struct {
	Entries []domain.RunEntry
}

// RunHistory is the use case for `ek run history`.
type RunHistory struct {
	journal domain.RunJournal
}

// NewRunHistory creates a new RunHistory use case.
func NewRunHistory(journal domain.RunJournal) *RunHistory {
	return &RunHistory{journal: journal}
}

// Execute returns the most recent runs.
func (uc *RunHistory) Execute(_ context.Context, in RunHistoryInput) (*RunHistoryOutput, error) {
	limit := in.Limit
	if in.Project != "" {
		limit = 0
	}
	entries, err := uc.journal.Recent(limit)
	if err != nil {
		return nil, fmt.Errorf("read run journal: %w", err)
	}
	if in.Project == "" {
		return &RunHistoryOutput{Entries: entries}, nil
	}

	var filtered []domain.RunEntry
	for _, e := range entries {
		if e.Project == in.Project {
			filtered = append(filtered, e)
		}
	}
	if in.Limit > 0 && len(filtered) > in.Limit {
		filtered = filtered[len(filtered)-in.Limit:]
	}
	return &RunHistoryOutput{Entries: filtered}, nil
}
