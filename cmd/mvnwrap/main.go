// Package main is the entry point for the mvnwrap CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/runoshun/mvnwrap/internal/cli"
	"github.com/runoshun/mvnwrap/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		os.Exit(exitCode(os.Stderr, err))
	}
}

func run() error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Create dependency injection container
	container := app.New(cwd)
	defer func() { _ = container.Close() }()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	return rootCmd.Execute()
}

// exitCode maps err to the process exit code.
// A failed build exits with Maven's own code and prints nothing,
// since the status line already described it. Other errors are printed.
func exitCode(w io.Writer, err error) int {
	var failure *domain.Failure
	if errors.As(err, &failure) {
		if failure.Signaled() || failure.ExitCode <= 0 {
			return 1
		}
		return failure.ExitCode
	}
	_, _ = fmt.Fprintln(w, "Error:", err)
	return 1
}
