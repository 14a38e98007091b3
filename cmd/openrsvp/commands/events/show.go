package events

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/resource"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <event-id>",
		Short: "Show details for a single event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			payload, err := rt.Get(cmd.Context(), resource.EventPath(args[0]))
			if err != nil {
				return err
			}

			event := resource.UnwrapEvent(payload)
			if done, err := rt.Emit(event); done {
				return err
			}
			showDetail(rt.Printer, event)
			return nil
		},
	}
}
