package events

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/resource"
)

func newCreateCmd() *cobra.Command {
	var (
		req      resource.EventRequest
		tzOffset int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new event",
		Long: `Create a new event.

--start and --end must be ISO-8601 date-times such as 2024-03-01T10:00:00.
They are checked before anything is sent. When the server returns an admin
token for the new event it is printed; save it, it is not shown again.`,
		Example: `  openrsvp events create --title "Board games" --description "Bring snacks" \
    --start 2024-03-01T18:00:00 --end 2024-03-01T22:00:00 --channel friends`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			body := req
			if cmd.Flags().Changed("tz-offset") {
				off := tzOffset
				body.TimezoneOffsetMinutes = &off
			}
			if err := body.Validate(); err != nil {
				return err
			}

			payload, err := rt.Post(cmd.Context(), resource.EventsPath(), body)
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			created := resource.ParseCreatedEvent(payload)
			rt.Printer.Detail("Event", resource.EventDetail(created.Event))
			rt.Printer.Success("Event created successfully.")

			if created.AdminToken != "" {
				rt.Printer.Println("")
				rt.Printer.Notice("Admin token (save this):")
				rt.Printer.Println(created.AdminToken)
				if created.AdminLink != "" {
					rt.Printer.Println("Admin URL: " + created.AdminLink)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Title, "title", "", "event title")
	f.StringVar(&req.Description, "description", "", "event description")
	f.StringVar(&req.StartTime, "start", "", "start time (ISO-8601)")
	f.StringVar(&req.EndTime, "end", "", "end time (ISO-8601)")
	f.StringVar(&req.ChannelName, "channel", "", "channel name")
	f.StringVar(&req.Location, "location", "", "location or venue")
	f.IntVar(&tzOffset, "tz-offset", 0, "minutes offset from UTC for the supplied times")
	f.StringVar(&req.ChannelVisibility, "channel-visibility", "", "visibility if the channel is created: public or private")
	f.BoolVar(&req.IsPrivate, "is-private", false, "mark the event private")
	f.BoolVar(&req.AdminApprovalRequired, "requires-approval", false, "require approval for RSVPs")

	for _, name := range []string{"title", "description", "start", "end", "channel"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
