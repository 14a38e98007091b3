package rsvps

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/resource"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <event-id>",
		Short: "List RSVPs for an event",
		Long: `List the RSVPs of one event. Listing usually needs the event's admin
token (--token, OPENRSVP_TOKEN or the config file).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			payload, err := rt.Get(cmd.Context(), resource.EventRSVPsPath(args[0]))
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			rsvps := resource.ExtractRSVPs(payload)
			if len(rsvps) == 0 {
				rt.Printer.Notice("No RSVPs found.")
				return nil
			}
			rows := make([][]string, len(rsvps))
			for i, r := range rsvps {
				rows[i] = resource.RSVPRow(r)
			}
			rt.Printer.Table("RSVPs", rsvpColumns, rows)
			return nil
		},
	}
}
