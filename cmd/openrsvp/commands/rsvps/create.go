package rsvps

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/resource"
)

func newCreateCmd() *cobra.Command {
	var req resource.RSVPRequest

	cmd := &cobra.Command{
		Use:     "create <event-id>",
		Short:   "Create an RSVP for an event",
		Example: `  openrsvp rsvps create 42 --name "Ann Lee" --email ann@example.com --guests 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			body := req
			body.EventID = args[0]
			if err := body.Validate(); err != nil {
				return err
			}

			payload, err := rt.Post(cmd.Context(), resource.RSVPsPath(), body)
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			r, _ := resource.AsRecord(payload)
			rt.Printer.Detail("RSVP", resource.RSVPDetail(r))
			rt.Printer.Success("RSVP created.")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "attendee name")
	f.StringVar(&req.Email, "email", "", "attendee email")
	f.IntVar(&req.Guests, "guests", 1, "number of guests including the attendee")
	f.StringVar(&req.Note, "note", "", "note for the host")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
