package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase"
)

// newIgnoreCommand creates the ignore command group.
func newIgnoreCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ignore",
		Short: "Keep .eagle/ out of version control",
		Long: `Keep .eagle/ out of version control.

Each subcommand adds the .eagle/ line to one ignore file, once.
Use 'ek ignore explain' to compare the options.`,
	}

	for _, policy := range []domain.IgnorePolicy{domain.IgnorePolicyRepo, domain.IgnorePolicyLocal, domain.IgnorePolicyGlobal} {
		cmd.AddCommand(newApplyIgnoreCommand(c, policy))
	}
	cmd.AddCommand(
		newIgnoreStatusCommand(c),
		newIgnoreExplainCommand(c),
	)
	return cmd
}

func newApplyIgnoreCommand(c *app.Container, policy domain.IgnorePolicy) *cobra.Command {
	return &cobra.Command{
		Use:   string(policy),
		Short: "Add .eagle/ to " + ignoreTarget(policy),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}
			out, err := c.ApplyIgnoreUseCase().Execute(cmd.Context(), usecase.ApplyIgnoreInput{
				Policy: string(policy),
				Dir:    dir,
			})
			if err != nil {
				return err
			}
			if out.Changed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added .eagle/ to %s\n", out.Path)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), ".eagle/ already listed in %s\n", out.Path)
			}
			return nil
		},
	}
}

func newIgnoreStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where .eagle/ is ignored for the current repository",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get current directory: %w", err)
			}
			p := newPrinterFor(c, cmd)
			out, err := c.IgnoreStatusUseCase().Execute(cmd.Context(), usecase.IgnoreStatusInput{Dir: dir})
			if errors.Is(err, domain.ErrNotGitRepository) {
				p.println("Not a git repository.")
				return nil
			}
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(out.Locations))
			for _, loc := range out.Locations {
				path, state := loc.Path, p.muted.Render("no")
				switch {
				case loc.Err != nil && path == "":
					path, state = "(n/a)", p.failure.Render(loc.Err.Error())
				case loc.Err != nil:
					state = p.failure.Render(loc.Err.Error())
				case loc.Present:
					state = p.success.Render("yes")
				}
				rows = append(rows, []string{fmt.Sprintf("%s (%s)", loc.Policy, ignoreTarget(loc.Policy)), path, state})
			}
			p.println(p.muted.Render("Repository: " + filepath.Base(out.Toplevel)))
			p.table([]string{"SCOPE", "FILE", "CONTAINS .eagle/"}, rows)
			return nil
		},
	}
}

func newIgnoreExplainCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Explain the ignore policies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrinterFor(c, cmd)
			rows := make([][]string, 0, len(domain.AllIgnorePolicies()))
			for _, policy := range domain.AllIgnorePolicies() {
				name := string(policy)
				if policy == domain.IgnorePolicyLocal {
					name += " (recommended)"
				}
				rows = append(rows, []string{name, policy.Describe()})
			}
			p.table([]string{"POLICY", "EFFECT"}, rows)
			p.println(p.muted.Render("Set the default for new projects with 'ek setup'."))
			return nil
		},
	}
}

// ignoreTarget names the file a policy writes to.
func ignoreTarget(policy domain.IgnorePolicy) string {
	switch policy {
	case domain.IgnorePolicyRepo:
		return ".gitignore"
	case domain.IgnorePolicyLocal:
		return ".git/info/exclude"
	case domain.IgnorePolicyGlobal:
		return "core.excludesFile"
	default:
		return "nothing"
	}
}
