package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/usecase"
)

// newWorkspaceCommand creates the ws command group.
func newWorkspaceCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ws",
		Aliases: []string{"workspace"},
		Short:   "Manage workspaces",
		Long: `Manage workspaces.

A workspace is a named group of projects. Commands act on the current
workspace unless --ws or EK_WORKSPACE selects another one.`,
	}

	cmd.AddCommand(
		newWorkspaceListCommand(c),
		newWorkspaceUseCommand(c),
		newWorkspaceCreateCommand(c),
	)
	return cmd
}

func newWorkspaceListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workspaces",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListWorkspacesUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			rows := make([][]string, 0, len(out.Workspaces))
			for _, ws := range out.Workspaces {
				marker := ""
				if ws.Current {
					marker = p.success.Render("*")
				}
				rows = append(rows, []string{marker, ws.Name, fmt.Sprintf("%d", ws.Projects)})
			}
			p.table([]string{"", "WORKSPACE", "PROJECTS"}, rows)
			return nil
		},
	}
}

func newWorkspaceUseCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "use NAME",
		Short: "Switch the current workspace (created if missing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.UseWorkspaceUseCase().Execute(cmd.Context(), usecase.WorkspaceInput{Name: args[0]})
			if err != nil {
				return err
			}
			suffix := ""
			if out.Created {
				suffix = " (created)"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Current workspace: %s%s\n", out.Name, suffix)
			return nil
		},
	}
}

func newWorkspaceCreateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a workspace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.CreateWorkspaceUseCase().Execute(cmd.Context(), usecase.WorkspaceInput{Name: args[0]})
			if err != nil {
				return err
			}
			if !out.Created {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Workspace %s already exists\n", out.Name)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created workspace %s\n", out.Name)
			return nil
		},
	}
}
