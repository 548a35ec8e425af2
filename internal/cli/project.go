package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/usecase"
)

// newAddCommand creates the add command for registering a project.
func newAddCommand(c *app.Container) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add PATH",
		Short: "Register a project directory",
		Long: `Register a project directory in the current workspace.

The name defaults to the directory's base name; an existing project with the
same name is replaced. The default ignore policy from 'ek setup' is applied
so that .eagle/ stays out of version control.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddProjectUseCase().Execute(cmd.Context(), usecase.AddProjectInput{
				Path:      args[0],
				Name:      name,
				Workspace: workspaceOverride(c, cmd),
			})
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			verb := "Added"
			if out.Replaced {
				verb = "Updated"
			}
			p.printf("%s project %s -> %s (workspace: %s)\n", verb, out.Project.Name, out.Project.Path, out.Workspace)
			switch {
			case out.IgnoreErr != nil:
				p.println(p.warning.Render(fmt.Sprintf("Ignore policy '%s' not applied: %v", out.Policy, out.IgnoreErr)))
			case out.IgnorePath != "" && out.IgnoreChanged:
				p.printf("Ignore policy %s: added .eagle/ to %s\n", out.Policy, out.IgnorePath)
			case out.IgnorePath != "":
				p.printf("Ignore policy %s: .eagle/ already listed in %s\n", out.Policy, out.IgnorePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")
	return cmd
}

// newRemoveCommand creates the remove command.
func newRemoveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "remove NAME",
		Aliases: []string{"rm"},
		Short:   "Unregister a project (files are kept)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RemoveProjectUseCase().Execute(cmd.Context(), usecase.RemoveProjectInput{
				Name:      args[0],
				Workspace: workspaceOverride(c, cmd),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed project %s from workspace %s\n", out.Project.Name, out.Workspace)
			return nil
		},
	}
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List projects in the workspace",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListProjectsUseCase().Execute(cmd.Context(), usecase.ListProjectsInput{
				Workspace: workspaceOverride(c, cmd),
			})
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			if len(out.Projects) == 0 {
				p.printf("No projects in workspace %s. Add one with 'ek add PATH'.\n", out.Workspace)
				return nil
			}
			rows := make([][]string, 0, len(out.Projects))
			for _, proj := range out.Projects {
				path := proj.Path
				if proj.Missing {
					path += " " + p.failure.Render("(missing)")
				}
				rows = append(rows, []string{proj.Name, path})
			}
			p.println(p.muted.Render("Workspace: " + out.Workspace))
			p.table([]string{"NAME", "PATH"}, rows)
			return nil
		},
	}
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the project containing the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}
			out, err := c.ShowStatusUseCase().Execute(cmd.Context(), usecase.ShowStatusInput{
				Dir:       dir,
				Workspace: workspaceOverride(c, cmd),
			})
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			if !out.Matched {
				p.printf("Not inside a registered project (workspace: %s)\n", out.Workspace)
				return nil
			}
			p.field("Workspace", out.Workspace)
			p.field("Project", out.Project.Name)
			p.field("Path", out.Project.Path)
			if out.Branch != "" {
				p.field("Branch", out.Branch)
			}
			if out.Head != nil {
				p.field("HEAD", fmt.Sprintf("%s %s %s", out.Head.ShortHash(), out.Head.Summary, p.muted.Render("("+out.Head.Author+")")))
			}
			p.field("Tasks", fmt.Sprintf("%d", out.TaskCount))
			p.field("TODOs", fmt.Sprintf("%d open / %d total", out.OpenTodos, out.TodoCount))
			p.field("Comments", fmt.Sprintf("%d", out.CommentCount))
			return nil
		},
	}
}

// newWhereCommand creates the where command.
func newWhereCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "where NAME",
		Short: "Print a project's path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printProjectPath(c, cmd, args[0])
		},
	}
}

// newCdCommand creates the cd command. The shell function turns its output into a directory change.
func newCdCommand(c *app.Container) *cobra.Command {
	var pathOnly bool

	cmd := &cobra.Command{
		Use:   "cd NAME",
		Short: "Change to a project directory (requires shell integration)",
		Long: `Change to a project directory.

A process cannot change its parent's directory, so this only works through the
shell function installed by 'ek shell install'. With --path the project path is
printed for the function to use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !pathOnly {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Shell integration not active; run 'ek shell install' or use: cd \"$(ek where "+args[0]+")\"")
			}
			return printProjectPath(c, cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&pathOnly, "path", false, "Only print the project path")
	return cmd
}

func printProjectPath(c *app.Container, cmd *cobra.Command, name string) error {
	ref, err := projectRef(c, cmd, name)
	if err != nil {
		return err
	}
	out, err := c.WhereProjectUseCase().Execute(cmd.Context(), usecase.WhereProjectInput{ProjectRef: ref})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Project.Path)
	return nil
}

// newOpenCommand creates the open command.
func newOpenCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "open [NAME]",
		Short: "Open a project in VS Code or the file manager",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := projectRef(c, cmd, optionalArg(args, 0))
			if err != nil {
				return err
			}
			out, err := c.OpenProjectUseCase().Execute(cmd.Context(), usecase.OpenProjectInput{
				ProjectRef: ref,
				GOOS:       c.Config.GOOS,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Opened %s with %s\n", out.Project.Name, out.Command.Program)
			return nil
		},
	}
}

// optionalArg returns args[i] or "".
func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
