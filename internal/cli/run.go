package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/runoshun/mvnwrap/internal/usecase"
	"github.com/spf13/cobra"
)

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var flags mavenFlags
	var noStatus bool

	cmd := &cobra.Command{
		Use:   "run [goals...]",
		Short: "Run Maven",
		Long: `Run Maven with the given goals and phases.

Without goals, maven.goals from the config is used.
Flags override config values only when given. Pass raw Maven
arguments after "--", e.g. mvnwrap run -- -rf :core install.

Examples:
  mvnwrap run clean install
  mvnwrap run -q -P ci -D skipTests test
  mvnwrap run --pl core,api --am package`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.resolveRequest(cmd, c, args)
			if err != nil {
				return err
			}

			out, err := c.RunBuildUseCase().Execute(cmd.Context(), usecase.RunBuildInput{Request: *req})
			if out != nil {
				c.Logger.Debug("maven finished",
					"run", out.RunID,
					"dir", out.Invocation.Dir,
					"argv", strings.Join(out.Invocation.Argv(), " "),
					"duration", out.Duration)
				if !noStatus && !req.Options.Quiet {
					_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderStatus(out, err))
				}
			}
			return err
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&noStatus, "no-status", false, "Do not print the status line after the build")

	return cmd
}
