// Package rsvps provides commands for managing RSVPs.
package rsvps

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/internal/output"
	"github.com/brandonleon/invite/internal/resource"
)

// NewCmd returns the parent command for all RSVP subcommands.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsvps",
		Short: "Manage RSVPs for events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		newCreateCmd(),
		newListCmd(),
		newApproveCmd(),
		newRejectCmd(),
		newDeleteCmd(),
	)
	return cmd
}

var rsvpColumns = []output.Column{
	{Title: resource.RSVPHeaders[0], Color: "6"},
	{Title: resource.RSVPHeaders[1]},
	{Title: resource.RSVPHeaders[2]},
	{Title: resource.RSVPHeaders[3], Color: "3"},
	{Title: resource.RSVPHeaders[4], Color: "5"},
}
