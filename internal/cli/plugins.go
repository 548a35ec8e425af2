package cli

import (
	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/domain"
)

// newPluginsCommand creates the plugins command.
func newPluginsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List discovered plugins",
		Long: `List discovered plugins.

Plugins are executables declared in plugins.toml under the config directory,
or named ek-<name> on PATH. Loaded plugins run as 'ek <name> [args...]' with
EK_CONFIG_DIR and EK_WORKSPACE set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set := c.LoadPlugins(builtinNames(cmd.Root()))
			p := newPrinterFor(c, cmd)
			if len(set.Plugins) == 0 {
				p.println("No plugins found.")
				p.println(p.muted.Render("Add [[plugin]] entries (name, command) to " + c.Config.Paths.PluginsFile + " or put an ek-NAME executable on PATH."))
				return nil
			}

			rows := make([][]string, 0, len(set.Plugins))
			for _, pl := range set.Plugins {
				rows = append(rows, []string{pl.Name, p.pluginStatus(pl.Status), string(pl.Source), pl.Command, pl.Detail()})
			}
			p.table([]string{"NAME", "STATUS", "SOURCE", "COMMAND", "DETAIL"}, rows)
			p.printf("%d loaded, %d failed, %d available\n",
				set.Count(domain.PluginLoaded), set.Count(domain.PluginFailed), set.Count(domain.PluginAvailable))
			return nil
		},
	}
}

func (p *printer) pluginStatus(s domain.PluginStatus) string {
	switch s {
	case domain.PluginLoaded:
		return p.success.Render(string(s))
	case domain.PluginFailed:
		return p.failure.Render(string(s))
	default:
		return p.warning.Render(string(s))
	}
}
