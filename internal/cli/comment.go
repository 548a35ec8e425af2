package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase"
)

// newCommentCommand creates the comment command group.
func newCommentCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Manage project comments",
		Long: `Manage categorized project comments stored in .eagle/comments.yaml.

Categories: note, idea, bug, warning, done, log.`,
	}
	cmd.PersistentFlags().StringP("project", "P", "", "Project name (default: project of the current directory)")

	cmd.AddCommand(
		newCommentAddCommand(c),
		newCommentListCommand(c),
		newCommentEditCommand(c),
		newCommentRemoveCommand(c),
		newCommentSearchCommand(c),
	)
	return cmd
}

func newCommentAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Category string
		Author   string
		Tags     []string
	}

	cmd := &cobra.Command{
		Use:   "add MESSAGE",
		Short: "Add a comment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			out, err := c.AddCommentUseCase().Execute(cmd.Context(), usecase.AddCommentInput{
				ProjectRef: ref,
				Message:    strings.Join(args, " "),
				Category:   opts.Category,
				Author:     opts.Author,
				Tags:       opts.Tags,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s comment #%d to %s\n", out.Comment.Category, out.Comment.ID, out.Project.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category (default: note)")
	cmd.Flags().StringVar(&opts.Author, "author", "", "Author (default: configured user name)")
	cmd.Flags().StringArrayVarP(&opts.Tags, "tag", "t", nil, "Tag (can specify multiple)")
	return cmd
}

func newCommentListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Category string
		Tag      string
		Limit    int
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List comments",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			out, err := c.ListCommentsUseCase().Execute(cmd.Context(), usecase.ListCommentsInput{
				ProjectRef: ref,
				Category:   opts.Category,
				Tag:        opts.Tag,
				Limit:      opts.Limit,
			})
			if err != nil {
				return err
			}
			printComments(newPrinterFor(c, cmd), out.Project, out.Comments, "No comments.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Filter by category")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Filter by tag")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Show only the most recent N comments")
	return cmd
}

func newCommentSearchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search comment messages, authors and tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			out, err := c.ListCommentsUseCase().Execute(cmd.Context(), usecase.ListCommentsInput{
				ProjectRef: ref,
				Query:      query,
			})
			if err != nil {
				return err
			}
			printComments(newPrinterFor(c, cmd), out.Project, out.Comments, fmt.Sprintf("No comments match %q.", query))
			return nil
		},
	}
}

func printComments(p *printer, project domain.Project, comments []domain.Comment, empty string) {
	if len(comments) == 0 {
		p.println(empty)
		return
	}
	rows := make([][]string, 0, len(comments))
	for _, cm := range comments {
		rows = append(rows, []string{
			fmt.Sprintf("%d", cm.ID),
			p.category(cm.Category),
			cm.Author,
			cm.CreatedAt.Local().Format("2006-01-02 15:04"),
			cm.Message,
			strings.Join(cm.Tags, ", "),
		})
	}
	p.println(p.muted.Render("Project: " + project.Name))
	p.table([]string{"ID", "CATEGORY", "AUTHOR", "DATE", "MESSAGE", "TAGS"}, rows)
}

func (p *printer) category(cat domain.Category) string {
	switch cat {
	case domain.CategoryBug:
		return p.failure.Render(string(cat))
	case domain.CategoryWarning:
		return p.warning.Render(string(cat))
	case domain.CategoryDone:
		return p.success.Render(string(cat))
	default:
		return string(cat)
	}
}

func newCommentEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Message    string
		Category   string
		AddTags    []string
		RemoveTags []string
	}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			in := usecase.EditCommentInput{
				ProjectRef: ref,
				ID:         id,
				Category:   opts.Category,
				AddTags:    opts.AddTags,
				RemoveTags: opts.RemoveTags,
			}
			if cmd.Flags().Changed("message") {
				in.Message = &opts.Message
			}
			out, err := c.EditCommentUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated comment #%d\n", out.Comment.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "New message")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "New category")
	cmd.Flags().StringArrayVar(&opts.AddTags, "add-tag", nil, "Add a tag (can specify multiple)")
	cmd.Flags().StringArrayVar(&opts.RemoveTags, "rm-tag", nil, "Remove a tag (can specify multiple)")
	return cmd
}

func newCommentRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a comment",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			out, err := c.RemoveCommentUseCase().Execute(cmd.Context(), usecase.RemoveCommentInput{ProjectRef: ref, ID: id})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed comment #%d\n", out.Comment.ID)
			return nil
		},
	}
}
