package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// newTodoCommand creates the todo command group.
func newTodoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage project TODOs",
		Long: `Manage project TODOs stored in .eagle/todos.yaml.

The project is --project, or the registered project containing the current
directory.`,
	}
	cmd.PersistentFlags().StringP("project", "P", "", "Project name (default: project of the current directory)")

	cmd.AddCommand(
		newTodoAddCommand(c),
		newTodoListCommand(c),
		newTodoStatusCommand(c, "done", "Mark a TODO as done", domain.TodoStatusDone),
		newTodoStatusCommand(c, "block", "Mark a TODO as blocked", domain.TodoStatusBlocked),
		newTodoStatusCommand(c, "reopen", "Reopen a TODO", domain.TodoStatusTodo),
		newTodoEditCommand(c),
		newTodoRemoveCommand(c),
		newTodoSearchCommand(c),
	)
	return cmd
}

// notesRef selects the --project flag, or the project of the working directory.
func notesRef(c *app.Container, cmd *cobra.Command) (shared.ProjectRef, error) {
	name, _ := cmd.Flags().GetString("project")
	return projectRef(c, cmd, name)
}

// parseID parses a TODO or comment id argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(s, "#"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", s)
	}
	return id, nil
}

func newTodoAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Description string
		Priority    string
		Tags        []string
	}

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a TODO",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			out, err := c.AddTodoUseCase().Execute(cmd.Context(), usecase.AddTodoInput{
				ProjectRef:  ref,
				Title:       strings.Join(args, " "),
				Description: opts.Description,
				Priority:    opts.Priority,
				Tags:        opts.Tags,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added TODO #%d to %s: %s\n", out.Todo.ID, out.Project.Name, out.Todo.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "Description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: low, med or high (default: med)")
	cmd.Flags().StringArrayVarP(&opts.Tags, "tag", "t", nil, "Tag (can specify multiple)")
	return cmd
}

func newTodoListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Priority string
		Tag      string
		All      bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List TODOs (done items are hidden unless --all)",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			out, err := c.ListTodosUseCase().Execute(cmd.Context(), usecase.ListTodosInput{
				ProjectRef: ref,
				Status:     opts.Status,
				Priority:   opts.Priority,
				Tag:        opts.Tag,
				All:        opts.All,
			})
			if err != nil {
				return err
			}
			printTodos(newPrinterFor(c, cmd), out.Project, out.Todos, "No TODOs.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "Filter by status: todo, done or blocked")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Filter by priority")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Filter by tag")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Include done items")
	return cmd
}

func newTodoSearchCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Search TODO titles, descriptions and tags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := notesRef(c, cmd)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			out, err := c.ListTodosUseCase().Execute(cmd.Context(), usecase.ListTodosInput{
				ProjectRef: ref,
				Query:      query,
			})
			if err != nil {
				return err
			}
			printTodos(newPrinterFor(c, cmd), out.Project, out.Todos, fmt.Sprintf("No TODOs match %q.", query))
			return nil
		},
	}
}

func printTodos(p *printer, project domain.Project, todos []domain.Todo, empty string) {
	if len(todos) == 0 {
		p.println(empty)
		return
	}
	rows := make([][]string, 0, len(todos))
	for _, t := range todos {
		rows = append(rows, []string{
			fmt.Sprintf("%d", t.ID),
			p.todoStatus(t.Status),
			p.priority(t.Priority),
			t.Title,
			strings.Join(t.Tags, ", "),
		})
	}
	p.println(p.muted.Render("Project: " + project.Name))
	p.table([]string{"ID", "STATUS", "PRIORITY", "TITLE", "TAGS"}, rows)
}

func (p *printer) todoStatus(s domain.TodoStatus) string {
	switch s {
	case domain.TodoStatusDone:
		return p.success.Render(string(s))
	case domain.TodoStatusBlocked:
		return p.failure.Render(string(s))
	default:
		return string(s)
	}
}

func (p *printer) priority(pr domain.Priority) string {
	switch pr {
	case domain.PriorityHigh:
		return p.failure.Render(string(pr))
	case domain.PriorityLow:
		return p.muted.Render(string(pr))
	default:
		return string(pr)
	}
}

func newTodoStatusCommand(c *app.Container, use, short string, status domain.TodoStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
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
			out, err := c.EditTodoUseCase().Execute(cmd.Context(), usecase.EditTodoInput{
				ProjectRef: ref,
				ID:         id,
				Status:     string(status),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "TODO #%d is now %s: %s\n", out.Todo.ID, out.Todo.Status, out.Todo.Title)
			return nil
		},
	}
}

func newTodoEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Status      string
		Priority    string
		AddTags     []string
		RemoveTags  []string
	}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a TODO",
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
			in := usecase.EditTodoInput{
				ProjectRef: ref,
				ID:         id,
				Status:     opts.Status,
				Priority:   opts.Priority,
				AddTags:    opts.AddTags,
				RemoveTags: opts.RemoveTags,
			}
			if cmd.Flags().Changed("title") {
				in.Title = &opts.Title
			}
			if cmd.Flags().Changed("desc") {
				in.Description = &opts.Description
			}
			out, err := c.EditTodoUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated TODO #%d: %s\n", out.Todo.ID, out.Todo.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "desc", "d", "", "New description")
	cmd.Flags().StringVarP(&opts.Status, "status", "s", "", "New status: todo, done or blocked")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority: low, med or high")
	cmd.Flags().StringArrayVar(&opts.AddTags, "add-tag", nil, "Add a tag (can specify multiple)")
	cmd.Flags().StringArrayVar(&opts.RemoveTags, "rm-tag", nil, "Remove a tag (can specify multiple)")
	return cmd
}

func newTodoRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Delete a TODO",
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
			out, err := c.RemoveTodoUseCase().Execute(cmd.Context(), usecase.RemoveTodoInput{ProjectRef: ref, ID: id})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed TODO #%d: %s\n", out.Todo.ID, out.Todo.Title)
			return nil
		},
	}
}
