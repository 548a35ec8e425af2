package cli

import (
	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/usecase"
)

// newUninstallCommand creates the uninstall command.
func newUninstallCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Shell         string
		RCFile        string
		Yes           bool
		PurgeProjects bool
	}

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove eaglekit configuration and shell integration",
		Long: `Remove eaglekit configuration and shell integration.

Deletes the shell block and the config directory (registry, defaults, plugin
manifest, run history). With --purge-projects the .eagle/ directory of every
registered project is deleted as well. Without --yes nothing is removed.
The ek binary itself is left in place.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.UninstallUseCase().Execute(cmd.Context(), usecase.UninstallInput{
				Shell:         c.ShellInput(opts.Shell, opts.RCFile),
				Yes:           opts.Yes,
				PurgeProjects: opts.PurgeProjects,
			})
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			if !out.Removed {
				p.println("The following would be removed:")
				p.printf("  shell integration in %s\n", out.ShellRC)
				for _, t := range out.Targets {
					p.printf("  %s\n", t)
				}
				p.println(p.warning.Render("Re-run with --yes to remove them."))
				return nil
			}
			if out.ShellRemoved {
				p.printf("Removed shell integration from %s\n", out.ShellRC)
			}
			for _, t := range out.Targets {
				p.printf("Removed %s\n", t)
			}
			p.println("eaglekit data removed. Delete the ek binary to finish uninstalling.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Remove without asking")
	cmd.Flags().BoolVar(&opts.PurgeProjects, "purge-projects", false, "Also delete every registered project's .eagle/ directory")
	cmd.Flags().StringVar(&opts.Shell, "shell", "", "Shell whose rc file is cleaned (default: from $SHELL)")
	cmd.Flags().StringVar(&opts.RCFile, "rc", "", "RC file to clean")
	return cmd
}
