package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/usecase"
)

// newSetupCommand creates the setup command.
func newSetupCommand(c *app.Container) *cobra.Command {
	var name, policy string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set your name and the default ignore policy",
		Long: `Set your name and the default ignore policy.

Without flags an interactive wizard is shown. With --name or --policy the
answers are saved directly; the missing one keeps its current value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.LoadSetupUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			var saved *usecase.SetupState
			if cmd.Flags().Changed("name") || cmd.Flags().Changed("policy") {
				in := usecase.SaveSetupInput{Name: state.Name, Policy: string(state.Policy)}
				if cmd.Flags().Changed("name") {
					in.Name = name
				}
				if cmd.Flags().Changed("policy") {
					in.Policy = policy
				}
				saved, err = c.SaveSetupUseCase().Execute(cmd.Context(), in)
			} else {
				saved, err = runWizard(cmd, c, state)
			}
			if err != nil {
				return err
			}
			if saved == nil {
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved: name=%s, ignore policy=%s\n", saved.Name, saved.Policy)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name, used as the comment author")
	cmd.Flags().StringVar(&policy, "policy", "", "Default ignore policy: local, global, repo or none")
	return cmd
}
