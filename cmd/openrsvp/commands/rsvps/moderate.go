package rsvps

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/resource"
)

// moderation runs one request against an RSVP and confirms with done,
// e.g. "approved".
func moderation(cmd *cobra.Command, id, done string, call func(context.Context, *cmdutil.Runtime) (any, error)) error {
	rt, err := cmdutil.FromCommand(cmd)
	if err != nil {
		return err
	}

	payload, err := call(cmd.Context(), rt)
	if err != nil {
		return err
	}
	if ok, err := rt.Emit(payload); ok {
		return err
	}
	rt.Printer.Success("RSVP %s %s.", id, done)
	return nil
}

func newApproveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "approve <rsvp-id>",
		Short: "Approve an RSVP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return moderation(cmd, id, "approved", func(ctx context.Context, rt *cmdutil.Runtime) (any, error) {
				return rt.Post(ctx, resource.RSVPActionPath(id, "approve"), nil)
			})
		},
	}
}

func newRejectCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:     "reject <rsvp-id>",
		Short:   "Reject an RSVP with a reason",
		Example: `  openrsvp rsvps reject 7 --reason "event is full"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			body := resource.RejectRequest{Reason: reason}
			if err := body.Validate(); err != nil {
				return err
			}
			return moderation(cmd, id, "rejected", func(ctx context.Context, rt *cmdutil.Runtime) (any, error) {
				return rt.Post(ctx, resource.RSVPActionPath(id, "reject"), body)
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "reason for rejection")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <rsvp-id>",
		Short: "Delete an RSVP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return moderation(cmd, id, "deleted", func(ctx context.Context, rt *cmdutil.Runtime) (any, error) {
				return rt.Delete(ctx, resource.RSVPPath(id))
			})
		},
	}
}
