package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/mvnwrap/internal/app"
	"github.com/runoshun/mvnwrap/internal/usecase"
	"github.com/spf13/cobra"
)

// newArgsCommand creates the args command.
func newArgsCommand(c *app.Container) *cobra.Command {
	var flags mavenFlags

	cmd := &cobra.Command{
		Use:   "args [goals...]",
		Short: "Print the Maven command line without running it",
		Long: `Print the working directory and the command line "run" would start.
Accepts the same flags as "run".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.resolveRequest(cmd, c, args)
			if err != nil {
				return err
			}

			out, err := c.ShowArgsUseCase().Execute(cmd.Context(), usecase.ShowArgsInput{Request: *req})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "cd %s\n", quoteArg(out.Invocation.Dir))
			_, _ = fmt.Fprintln(w, joinArgs(out.Invocation.Argv()))
			return nil
		},
	}

	flags.bind(cmd)

	return cmd
}

// joinArgs renders argv as one line, quoting arguments that contain blanks or shell metacharacters.
func joinArgs(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = quoteArg(a)
	}
	return strings.Join(quoted, " ")
}

// quoteArg quotes a when it contains characters a shell would interpret.
func quoteArg(a string) string {
	if a == "" {
		return `""`
	}
	if strings.ContainsAny(a, " \t\n\"'\\$`|&;<>()*?[]#~") {
		return strconv.Quote(a)
	}
	return a
}
