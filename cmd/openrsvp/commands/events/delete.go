package events

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/resource"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <event-id>",
		Short: "Delete an event by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			id := args[0]
			payload, err := rt.Delete(cmd.Context(), resource.EventPath(id))
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}
			rt.Printer.Success("Deleted event %s.", id)
			return nil
		},
	}
}
