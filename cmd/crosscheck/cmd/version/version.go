// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/crosscheck/cmd/application"
)

// NewCommand creates the version command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "crosscheck %s (%s/%s, %s)\n",
				app.Version(), runtime.GOOS, runtime.GOARCH, runtime.Version())
			fmt.Fprintf(out, "  commit: %s\n", app.Commit())
			fmt.Fprintf(out, "  built:  %s\n", app.Date())
			return nil
		},
	}
}
