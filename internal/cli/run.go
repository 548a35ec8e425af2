package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/domain"
	"github.com/eaglekit/ek/internal/usecase"
)

// newRunCommand creates the run command group.
func newRunCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "List, create and run project tasks",
		Long: `List, create and run project tasks.

Tasks live in .eagle/config.yaml and can be overridden per git branch in
.eagle/branches/<branch>/config.yaml. A task is a shell string, an argv list, or a
script mapping:

  tasks:
    test: go test ./...
    fmt: [gofmt, -l, .]
    deploy: {type: script, path: .eagle/scripts/deploy.sh, shell: bash}

Arguments after -- are appended to the command.`,
	}

	cmd.AddCommand(
		newRunListCommand(c),
		newRunDoCommand(c),
		newRunTaskCommand(c),
		newRunNewCommand(c),
		newRunHistoryCommand(c),
	)
	return cmd
}

// splitAtDash separates positional args from the args after --.
func splitAtDash(cmd *cobra.Command, args []string) (positional, extra []string) {
	if n := cmd.ArgsLenAtDash(); n >= 0 {
		return args[:n], args[n:]
	}
	return args, nil
}

// positionalRange validates the number of args before --.
func positionalRange(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		pos, _ := splitAtDash(cmd, args)
		if len(pos) < minArgs || len(pos) > maxArgs {
			return fmt.Errorf("accepts between %d and %d arg(s) before --, received %d", minArgs, maxArgs, len(pos))
		}
		return nil
	}
}

func newRunListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list [NAME]",
		Aliases: []string{"ls"},
		Short:   "List tasks of a project",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := projectRef(c, cmd, optionalArg(args, 0))
			if err != nil {
				return err
			}
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{ProjectRef: ref})
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			if len(out.Tasks) == 0 {
				p.printf("No tasks defined for %s. Create one with 'ek run new TASK --cmd \"...\"'.\n", out.Project.Name)
				return nil
			}
			rows := make([][]string, 0, len(out.Tasks))
			for _, t := range out.Tasks {
				kind := t.Kind
				if t.Invalid {
					kind = p.failure.Render("invalid")
				}
				rows = append(rows, []string{t.Name, kind, t.Source, t.Display})
			}
			p.println(p.muted.Render(fmt.Sprintf("Project: %s  Branch: %s", out.Project.Name, out.Branch)))
			p.table([]string{"TASK", "KIND", "SOURCE", "COMMAND"}, rows)
			return nil
		},
	}
}

func newRunDoCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "do [NAME] [TASK] [-- ARGS...]",
		Short: "Run a task of a project (default task: " + domain.DefaultTaskName + ")",
		Args:  positionalRange(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, extra := splitAtDash(cmd, args)
			return runTask(c, cmd, optionalArg(pos, 0), optionalArg(pos, 1), extra)
		},
	}
}

func newRunTaskCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "task TASK [NAME] [-- ARGS...]",
		Short: "Run a task by name",
		Long: `Run a task by name.

The project is NAME, or the registered project containing the current
directory. 'ek TASK ARGS...' is a shortcut for 'ek run task TASK -- ARGS...'.`,
		Args: positionalRange(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, extra := splitAtDash(cmd, args)
			return runTask(c, cmd, optionalArg(pos, 1), pos[0], extra)
		},
	}
}

// runTask runs the task and turns a non-zero child exit into an ExitError.
func runTask(c *app.Container, cmd *cobra.Command, name, task string, extra []string) error {
	ref, err := projectRef(c, cmd, name)
	if err != nil {
		return err
	}
	out, err := c.RunTaskUseCase().Execute(cmd.Context(), usecase.RunTaskInput{
		ProjectRef: ref,
		Task:       task,
		Args:       extra,
	})
	if err != nil {
		return err
	}
	return exitWith(out.ExitCode)
}

func newRunNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Cmd    string
		Bash   bool
		Python bool
		Batch  bool
		Pwsh   bool
		Branch bool
	}

	cmd := &cobra.Command{
		Use:   "new TASK [NAME]",
		Short: "Create a task from a command or a script scaffold",
		Long: `Create a task from a command or a script scaffold.

With --cmd the task runs the given shell string. The script flags create
.eagle/scripts/TASK.<ext> (an existing file is kept) and map the task to it.
With --branch the task is written to the current branch's overlay.`,
		Example: `  ek run new test --cmd "go test ./..."
  ek run new deploy --bash
  ek run new lint myproject --cmd "golangci-lint run" --branch`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := projectRef(c, cmd, optionalArg(args, 1))
			if err != nil {
				return err
			}

			script := usecase.ScriptNone
			switch {
			case opts.Bash:
				script = usecase.ScriptBash
			case opts.Python:
				script = usecase.ScriptPython
			case opts.Batch:
				script = usecase.ScriptBatch
			case opts.Pwsh:
				script = usecase.ScriptPwsh
			}

			out, err := c.NewTaskUseCase().Execute(cmd.Context(), usecase.NewTaskInput{
				ProjectRef: ref,
				Task:       args[0],
				Cmd:        opts.Cmd,
				Script:     script,
				Branch:     opts.Branch,
			})
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			scope := "project"
			if out.Branch != "" {
				scope = "branch " + out.Branch
			}
			p.printf("Created task %s for %s (%s) in %s\n", args[0], out.Project.Name, scope, out.ConfigPath)
			switch {
			case out.ScriptPath != "" && out.Scaffolded:
				p.printf("Scaffolded %s\n", out.ScriptPath)
			case out.ScriptPath != "":
				p.printf("Kept existing %s\n", out.ScriptPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Cmd, "cmd", "", "Shell command to run")
	cmd.Flags().BoolVar(&opts.Bash, "bash", false, "Scaffold a bash script (.sh)")
	cmd.Flags().BoolVar(&opts.Python, "python", false, "Scaffold a Python script (.py)")
	cmd.Flags().BoolVar(&opts.Batch, "batch", false, "Scaffold a batch script (.bat)")
	cmd.Flags().BoolVar(&opts.Pwsh, "pwsh", false, "Scaffold a PowerShell script (.ps1)")
	cmd.Flags().BoolVar(&opts.Branch, "branch", false, "Write to the current branch overlay instead of the project config")
	return cmd
}

func newRunHistoryCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [NAME]",
		Short: "Show recent task runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.RunHistoryUseCase().Execute(cmd.Context(), usecase.RunHistoryInput{
				Project: optionalArg(args, 0),
				Limit:   limit,
			})
			if err != nil {
				return err
			}

			p := newPrinterFor(c, cmd)
			if len(out.Entries) == 0 {
				p.println("No task runs recorded yet.")
				return nil
			}
			rows := make([][]string, 0, len(out.Entries))
			for _, e := range out.Entries {
				result := p.success.Render("ok")
				if e.Failed() {
					result = p.failure.Render(failureText(e))
				}
				duration := (time.Duration(e.DurationMS) * time.Millisecond).String()
				rows = append(rows, []string{
					e.Time.Local().Format("2006-01-02 15:04:05"),
					e.Project,
					e.Task,
					e.Branch,
					result,
					duration,
				})
			}
			p.table([]string{"TIME", "PROJECT", "TASK", "BRANCH", "RESULT", "DURATION"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	return cmd
}

func failureText(e domain.RunEntry) string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("exit %d", e.ExitCode)
	}
	if msg := strings.TrimSpace(e.Message); msg != "" {
		return msg
	}
	return "error"
}
