package events

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/resource"
)

func newListCmd() *cobra.Command {
	var (
		channel    string
		publicOnly bool
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events",
		Long: `List events.

With --channel (or a default channel) the channel's events are listed.
Otherwise, with a token, the events owned by that admin token are listed.
Without either, the server's event list is used.`,
		Example: `  # Events of one channel
  openrsvp events list --channel friends

  # Hide private events
  openrsvp events list --public-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			path := resource.EventsPath()
			target := channel
			if target == "" {
				target, _ = rt.Settings.DefaultChannel()
			}
			switch token, hasToken := rt.Settings.Token(); {
			case target != "":
				path = resource.ChannelPath(target)
			case hasToken:
				path = resource.AdminEventsPath(token)
			}

			payload, err := rt.Get(cmd.Context(), path)
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			events := resource.ExtractEvents(payload)
			if publicOnly && !all {
				events = resource.PublicOnly(events)
			}
			if len(events) == 0 {
				rt.Printer.Notice("No events found.")
				return nil
			}

			rows := make([][]string, len(events))
			for i, e := range events {
				rows[i] = resource.EventRow(e)
			}
			rt.Printer.Table("Events", eventColumns, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "list the events of this channel")
	cmd.Flags().BoolVar(&publicOnly, "public-only", false, "show only public events")
	cmd.Flags().BoolVar(&all, "all", false, "show private events too (default)")
	cmd.MarkFlagsMutuallyExclusive("public-only", "all")
	return cmd
}
