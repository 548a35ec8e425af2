package usecase

import (
	"context"
	"fmt"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// RemoveCommentInput contains the parameters for removing a comment.
type RemoveCommentInput struct {
	shared.ProjectRef
	ID int
}

// RemoveCommentOutput contains the removed comment.
type RemoveCommentOutput struct {
	Project domain.Project
	Comment domain.Comment
}

// RemoveComment is the use case for `ek comment rm`.
type RemoveComment struct {
	registry domain.RegistryRepository
	comments domain.CommentStore
}

// NewRemoveComment creates a new RemoveComment use case.
func NewRemoveComment(registry domain.RegistryRepository, comments domain.CommentStore) *RemoveComment {
	return &RemoveComment{registry: registry, comments: comments}
}

// Execute removes the comment.
func (uc *RemoveComment) Execute(_ context.Context, in RemoveCommentInput) (*RemoveCommentOutput, error) {
	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}
	list, err := uc.comments.Load(p.CommentsPath())
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	removed, err := list.Remove(in.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: #%d", err, in.ID)
	}
	if err := uc.comments.Save(p.CommentsPath(), list); err != nil {
		return nil, fmt.Errorf("save comments: %w", err)
	}
	return &RemoveCommentOutput{Project: p, Comment: removed}, nil
}
