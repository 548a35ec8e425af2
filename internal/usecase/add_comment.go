package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// AddCommentInput contains the parameters for adding a comment.
// Fields are ordered to minimize memory padding.
type AddCommentInput struct {
	shared.ProjectRef
	Message  string // Comment text (required)
	Category string // Defaults to note
	Author   string // Defaults to the configured user name
	Tags     []string
}

// AddCommentOutput contains the result of adding a comment.
type AddCommentOutput struct {
	Project domain.Project
	Comment domain.Comment // The created comment
}

// AddComment is the use case for adding a comment to a project.
type AddComment struct {
	registry domain.RegistryRepository
	comments domain.CommentStore
	defaults domain.DefaultsRepository
	clock    domain.Clock
	user     string // Login name used when no author is configured
}

// NewAddComment creates a new AddComment use case.
func NewAddComment(
	registry domain.RegistryRepository,
	comments domain.CommentStore,
	defaults domain.DefaultsRepository,
	clock domain.Clock,
	user string,
) *AddComment {
	return &AddComment{
		registry: registry,
		comments: comments,
		defaults: defaults,
		clock:    clock,
		user:     user,
	}
}

// Execute adds a comment to the project.
func (uc *AddComment) Execute(_ context.Context, in AddCommentInput) (*AddCommentOutput, error) {
	// Validate message
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, domain.ErrEmptyMessage
	}
	category := domain.CategoryNote
	if strings.TrimSpace(in.Category) != "" {
		var err error
		if category, err = domain.ParseCategory(in.Category); err != nil {
			return nil, fmt.Errorf("%w: %s", err, in.Category)
		}
	}

	p, _, err := shared.GetProject(uc.registry, in.ProjectRef)
	if err != nil {
		return nil, err
	}

	author := strings.TrimSpace(in.Author)
	if author == "" {
		defaults, err := uc.defaults.Load()
		if err != nil {
			defaults = nil
		}
		author = defaults.AuthorName(uc.user)
	}

	list, err := uc.comments.Load(p.CommentsPath())
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	comment := list.Add(domain.Comment{
		Message:   message,
		Category:  category,
		Author:    author,
		Tags:      in.Tags,
		CreatedAt: uc.clock.Now(),
	})
	if err := uc.comments.Save(p.CommentsPath(), list); err != nil {
		return nil, fmt.Errorf("save comments: %w", err)
	}
	return &AddCommentOutput{Project: p, Comment: comment}, nil
}
