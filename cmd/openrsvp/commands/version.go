package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	buildinfo "github.com/brandonleon/invite/cmd"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version information",
		Long:  `Print the version, commit, and build date of openrsvp.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "openrsvp version %s\n", buildinfo.Version)
			fmt.Fprintf(w, "  commit: %s\n", buildinfo.Commit)
			fmt.Fprintf(w, "  built:  %s\n", buildinfo.Date)
		},
	}
}
