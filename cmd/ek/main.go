// Package main is the entry point for the ek CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eaglekit/ek/internal/app"
	"github.com/eaglekit/ek/internal/cli"
	"github.com/eaglekit/ek/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(exitCode(err, os.Stderr))
	}
}

func run(args []string) error {
	// Create dependency injection container
	container, err := app.New(os.Stderr, false)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() { _ = container.Close() }()

	// Create and execute root command; unknown first words run a task
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(cli.RouteArgs(rootCmd, args))
	return rootCmd.Execute()
}

// exitCode reports err on stderr and returns the process exit code.
// Task and plugin exit codes are passed through silently.
func exitCode(err error, stderr io.Writer) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	if domain.IsUsageError(err) {
		_, _ = fmt.Fprintln(stderr, "Run 'ek --help' for usage.")
	}
	return 1
}
