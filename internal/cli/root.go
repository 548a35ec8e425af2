// Package cli provides the command-line interface for eaglekit.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/tui/wizard"
	"github.com/eaglekit/ek/internal/usecase"
	"github.com/eaglekit/ek/internal/usecase/shared"
)

// Command group IDs.
const (
	groupProject = "project"
	groupTask    = "task"
	groupNotes   = "notes"
	groupSetup   = "setup"
	groupPlugins = "plugins"
)

// isTerminalFunc reports whether stdin and stdout are a terminal, allowing it to be mocked in tests.
var isTerminalFunc = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// launchWizardFunc is a function variable for launching the setup wizard, allowing it to be mocked in tests.
var launchWizardFunc = func(ctx context.Context, in io.Reader, out io.Writer, name string, policy domain.IgnorePolicy) (wizard.Answers, error) {
	return wizard.Run(ctx, in, out, name, policy)
}

// NewRootCommand creates the root command for eaglekit.
// It receives the container for dependency injection and version for display.
// Loaded plugins are registered as additional subcommands.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "ek",
		Short: "Personal project manager",
		Long: `eaglekit keeps a registry of your development projects grouped into workspaces.
Each project can define tasks, TODOs and comments under its .eagle/ directory.

Run 'ek TASK [ARGS...]' inside a project as a shortcut for 'ek run task TASK'.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose && c != nil && c.Logger != nil {
				c.Logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.LoadSetupUseCase().Execute(cmd.Context())
			if err != nil {
				c.Logger.Debug("load setup state", "err", err)
				return cmd.Help()
			}
			if state.FirstRunDone || !isTerminalFunc() {
				return cmd.Help()
			}
			saved, err := runWizard(cmd, c, state)
			if err != nil {
				return err
			}
			if saved != nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Setup complete. Run 'ek add PATH' to register a project or 'ek --help' for all commands.")
			}
			return nil
		},
	}

	root.PersistentFlags().StringP("ws", "w", "", "Workspace to use instead of the current one")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupProject, Title: "Projects & Workspaces:"},
		&cobra.Group{ID: groupTask, Title: "Tasks:"},
		&cobra.Group{ID: groupNotes, Title: "TODOs & Comments:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)

	grouped := []struct {
		cmd   *cobra.Command
		group string
	}{
		{newAddCommand(c), groupProject},
		{newRemoveCommand(c), groupProject},
		{newListCommand(c), groupProject},
		{newStatusCommand(c), groupProject},
		{newWhereCommand(c), groupProject},
		{newCdCommand(c), groupProject},
		{newOpenCommand(c), groupProject},
		{newWorkspaceCommand(c), groupProject},
		{newIgnoreCommand(c), groupProject},
		{newRunCommand(c), groupTask},
		{newTodoCommand(c), groupNotes},
		{newCommentCommand(c), groupNotes},
		{newSetupCommand(c), groupSetup},
		{newShellCommand(c), groupSetup},
		{newPluginsCommand(c), groupSetup},
		{newUninstallCommand(c), groupSetup},
	}
	for _, g := range grouped {
		g.cmd.GroupID = g.group
		root.AddCommand(g.cmd)
	}

	addPluginCommands(root, c)

	return root
}

// addPluginCommands registers loaded plugins under their own group.
// Names already taken by builtin commands are passed as reserved.
func addPluginCommands(root *cobra.Command, c *app.Container) {
	if c == nil || c.Plugins == nil {
		return
	}
	set := c.LoadPlugins(builtinNames(root))
	loaded := set.Loaded()
	if len(loaded) == 0 {
		return
	}
	root.AddGroup(&cobra.Group{ID: groupPlugins, Title: "Plugins:"})
	for _, p := range loaded {
		cmd := newPluginCommand(c, p)
		cmd.GroupID = groupPlugins
		root.AddCommand(cmd)
	}
}

// pluginAnnotation marks subcommands that run plugins.
const pluginAnnotation = "ek/plugin"

// builtinNames returns the builtin command names and aliases reachable as a first argument.
func builtinNames(root *cobra.Command) map[string]bool {
	return commandNames(root, false)
}

// commandNames returns the first-level command names and aliases, optionally with plugins.
func commandNames(root *cobra.Command, withPlugins bool) map[string]bool {
	names := map[string]bool{
		"help":                          true,
		"completion":                    true,
		cobra.ShellCompRequestCmd:       true,
		cobra.ShellCompNoDescRequestCmd: true,
	}
	for _, cmd := range root.Commands() {
		if _, ok := cmd.Annotations[pluginAnnotation]; ok && !withPlugins {
			continue
		}
		names[cmd.Name()] = true
		for _, alias := range cmd.Aliases {
			names[alias] = true
		}
	}
	return names
}

// newPluginCommand creates a subcommand that execs the plugin with the remaining args.
func newPluginCommand(c *app.Container, p domain.Plugin) *cobra.Command {
	short := p.Description
	if short == "" {
		short = fmt.Sprintf("Run plugin %s", p.Command)
	}
	return &cobra.Command{
		Use:                p.Name + " [args...]",
		Short:              short,
		DisableFlagParsing: true,
		Annotations:        map[string]string{pluginAnnotation: p.Executable},
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RunPluginUseCase().Execute(cmd.Context(), usecase.RunPluginInput{
				Plugin:    p,
				Workspace: workspaceOverride(c, cmd),
				Args:      args,
			})
			if err != nil {
				return err
			}
			return exitWith(out.ExitCode)
		},
	}
}

// runWizard shows the setup wizard prefilled from state and saves the answers.
// It returns nil without error when the user cancels.
func runWizard(cmd *cobra.Command, c *app.Container, state *usecase.SetupState) (*usecase.SetupState, error) {
	answers, err := launchWizardFunc(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), state.Name, state.Policy)
	if err != nil {
		return nil, err
	}
	if answers.Cancelled {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Setup cancelled.")
		return nil, nil
	}
	return c.SaveSetupUseCase().Execute(cmd.Context(), usecase.SaveSetupInput{
		Name:   answers.Name,
		Policy: string(answers.Policy),
	})
}

// workspaceOverride returns the --ws flag when given, else EK_WORKSPACE.
func workspaceOverride(c *app.Container, cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("ws"); f != nil && f.Changed {
		return f.Value.String()
	}
	return c.Config.Workspace
}

// projectRef selects the named project, or the one containing the working directory.
func projectRef(c *app.Container, cmd *cobra.Command, name string) (shared.ProjectRef, error) {
	ref := shared.ProjectRef{Name: name, Workspace: workspaceOverride(c, cmd)}
	if name == "" {
		dir, err := os.Getwd()
		if err != nil {
			return ref, fmt.Errorf("get current directory: %w", err)
		}
		ref.Dir = dir
	}
	return ref, nil
}

// newPrinterFor returns a printer for the command's stdout.
func newPrinterFor(c *app.Container, cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), c.Config.NoColor)
}
