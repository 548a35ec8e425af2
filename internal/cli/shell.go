package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/domain"
)

// newShellCommand creates the shell integration command group.
func newShellCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Shell integration for 'ek cd'",
		Long: `Shell integration for 'ek cd'.

The ek shell function runs 'ek cd NAME' in the current shell so that it can
change directory. Every other invocation is passed to the ek binary.`,
	}

	cmd.AddCommand(
		newShellInitCommand(c),
		newShellInstallCommand(c),
		newShellUninstallCommand(c),
	)
	return cmd
}

func newShellInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:       "init [bash|zsh|fish]",
		Short:     "Print the shell function",
		Example:   `  eval "$(ek shell init bash)"`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{domain.ShellNameBash, domain.ShellNameZsh, domain.ShellNameFish},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := optionalArg(args, 0)
			if shell == "" {
				shell = domain.DetectShell(c.Config.ShellEnv)
			}
			fn, err := domain.ShellFunction(shell)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), fn)
			return nil
		},
	}
}

func newShellInstallCommand(c *app.Container) *cobra.Command {
	var shell, rcFile string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Add the shell function to your rc file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InstallShellUseCase().Execute(cmd.Context(), c.ShellInput(shell, rcFile))
			if err != nil {
				return err
			}
			if !out.Changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Shell integration already installed in %s\n", out.RCFile)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Installed %s integration in %s\nRestart your shell or run: source %s\n", out.Shell, out.RCFile, out.RCFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", "Shell: bash, zsh or fish (default: from $SHELL)")
	cmd.Flags().StringVar(&rcFile, "rc", "", "RC file to edit (default: the shell's usual rc file)")
	return cmd
}

func newShellUninstallCommand(c *app.Container) *cobra.Command {
	var shell, rcFile string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the shell function from your rc file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.UninstallShellUseCase().Execute(cmd.Context(), c.ShellInput(shell, rcFile))
			if err != nil {
				return err
			}
			if !out.Changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No shell integration found in %s\n", out.RCFile)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed shell integration from %s\n", out.RCFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&shell, "shell", "", "Shell: bash, zsh or fish (default: from $SHELL)")
	cmd.Flags().StringVar(&rcFile, "rc", "", "RC file to edit (default: the shell's usual rc file)")
	return cmd
}
