// Package events provides commands for managing OpenRSVP events.
package events

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/internal/output"
	"github.com/brandonleon/invite/internal/resource"
)

// NewCmd returns the parent command for all event subcommands.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage OpenRSVP events",
		Long:  `Commands for listing, creating, inspecting and deleting events.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(
		newListCmd(),
		newCreateCmd(),
		newShowCmd(),
		newDeleteCmd(),
		newPublicCmd(),
	)
	return cmd
}

var eventColumns = []output.Column{
	{Title: resource.EventHeaders[0], Color: "6"},
	{Title: resource.EventHeaders[1]},
	{Title: resource.EventHeaders[2], Color: "2"},
	{Title: resource.EventHeaders[3], Color: "2"},
	{Title: resource.EventHeaders[4], Color: "5"},
	{Title: resource.EventHeaders[5], Color: "3"},
	{Title: resource.EventHeaders[6], Color: "3"},
}

func showDetail(p *output.Printer, payload any) {
	e, _ := resource.AsRecord(payload)
	p.Detail("Event", resource.EventDetail(e))
}
