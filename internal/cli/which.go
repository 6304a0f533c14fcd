package cli

import (
	"fmt"

	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/runoshun/mvnwrap/internal/usecase"
	"github.com/spf13/cobra"
)

// newWhichCommand creates the which command.
func newWhichCommand(c *app.Container) *cobra.Command {
	var flags mavenFlags

	cmd := &cobra.Command{
		Use:   "which",
		Short: "Print the Maven executable that would be run",
		Long: `Print the Maven executable "run" would start: --executable or maven.executable
when set, ./mvnw when the working directory has one, mvn otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.resolveRequest(cmd, c, nil)
			if err != nil {
				return err
			}

			out, err := c.ShowArgsUseCase().Execute(cmd.Context(), usecase.ShowArgsInput{Request: *req})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Invocation.Executable)
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}
