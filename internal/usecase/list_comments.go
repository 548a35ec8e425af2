package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// ListCommentsInput contains the parameters for listing or searching comments.
// Fields are ordered to minimize memory padding.
type ListCommentsInput struct {
	shared.ProjectRef
	Query    string // Search message, author and tags instead of filtering
	Category string
	Tag      string
	Limit    int // Keep only the most recent entries when > 0
}

// ListCommentsOutput contains the comments in store order.
type ListCommentsOutput struct {
	Project  domain.Project
	Comments []domain.Comment
}

// ListComments is the use case for `ek comment list` and `ek comment search`.
type ListComments struct {
	registry domain.RegistryRepository
	comments domain.CommentStore
}

// NewListComments creates a new ListComments use case.
func NewListComments(registry domain.RegistryRepository, comments domain.CommentStore) *ListComments {
	return &ListComments{registry: registry, comments: comments}
}

// Execute returns the matching comments.
func (uc *ListComments) Execute(_ context.Context, in ListCommentsInput) (*ListCommentsOutput, error) {
	filter := domain.CommentFilter{Tag: strings.TrimSpace(in.Tag), Limit: in.Limit}
	if in.Category != "" {
		category, err := domain.ParseCategory(in.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Category)
		}
		filter.Category = category
	}

	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	list, err := uc.comments.Load(p.CommentsPath())
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	out := &ListCommentsOutput{Project: p}
	if strings.TrimSpace(in.Query) != "" {
		out.Comments = list.Search(in.Query)
	} else {
		out.Comments = list.Filter(filter)
	}
	return out, nil
}
