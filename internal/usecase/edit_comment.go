package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// EditCommentInput contains the parameters for editing a comment.
// Fields are ordered to minimize memory padding.
type EditCommentInput struct {
	shared.ProjectRef
	Message    *string
	Category   string
	AddTags    []string
	RemoveTags []string
	ID         int
}

// EditCommentOutput contains the updated comment.
type EditCommentOutput struct {
	Project domain.Project
	Comment domain.Comment
}

// EditComment is the use case for editing an existing comment.
type EditComment struct {
	registry domain.RegistryRepository
	comments domain.CommentStore
}

// NewEditComment creates a new EditComment use case.
func NewEditComment(registry domain.RegistryRepository, comments domain.CommentStore) *EditComment {
	return &EditComment{registry: registry, comments: comments}
}

// Execute edits the comment with the given id.
func (uc *EditComment) Execute(_ context.Context, in EditCommentInput) (*EditCommentOutput, error) {
	if in.Message == nil && in.Category == "" && len(in.AddTags) == 0 && len(in.RemoveTags) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}
	var message string
	if in.Message != nil {
		message = strings.TrimSpace(*in.Message)
		if message == "" {
			return nil, domain.ErrEmptyMessage
		}
	}
	var category domain.Category
	if in.Category != "" {
		var err error
		if category, err = domain.ParseCategory(in.Category); err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Category)
		}
	}

	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	list, err := uc.comments.Load(p.CommentsPath())
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	comment, err := list.Find(in.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: #%d", err, in.ID)
	}

	if in.Message != nil {
		comment.Message = message
	}
	if category != "" {
		comment.Category = category
	}
	if len(in.AddTags) > 0 || len(in.RemoveTags) > 0 {
		comment.Tags = domain.UpdateTags(comment.Tags, in.AddTags, in.RemoveTags)
	}

	if err := uc.comments.Save(p.CommentsPath(), list); err != nil {
		return nil, fmt.Errorf("save comments: %w", err)
	}
	return &EditCommentOutput{Project: p, Comment: *comment}, nil
}
