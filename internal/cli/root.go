// Package cli provides the command-line interface for mvnwrap.
package cli

import (
	"fmt"

	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupBuild = "build"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for mvnwrap.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "mvnwrap",
		Short: "Run Apache Maven with project defaults",
		Long: `mvnwrap runs Apache Maven (./mvnw when the project has one, mvn otherwise)
with options taken from .mvnwrap.toml, the global config and the command line.

Maven's output streams straight to the terminal and mvnwrap exits with
Maven's exit code.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The template does not depend on existing config files.
			if cmd.Name() == "template" || cmd.Name() == "init" {
				return nil
			}

			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command itself
				return nil
			}

			printWarnings(cmd, cfg.Warnings)
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupBuild, Title: "Build Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupBuild

	argsCmd := newArgsCommand(c)
	argsCmd.GroupID = groupBuild

	whichCmd := newWhichCommand(c)
	whichCmd.GroupID = groupBuild

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		runCmd,
		argsCmd,
		whichCmd,
		configCmd,
	)

	return root
}

// printWarnings writes config warnings to stderr.
func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, w := range warnings {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
}
