// Package channels provides commands for managing channels.
package channels

import (
	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/output"
	"github.com/brandonleon/invite/internal/resource"
)

// NewCmd returns the parent command for all channel subcommands.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "Manage channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newListCmd(), newCreateCmd(), newShowCmd())
	return cmd
}

var channelColumns = []output.Column{
	{Title: resource.ChannelHeaders[0], Color: "6"},
	{Title: resource.ChannelHeaders[1], Color: "3"},
	{Title: resource.ChannelHeaders[2], Color: "5"},
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			payload, err := rt.Get(cmd.Context(), resource.ChannelsPath())
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			channels := resource.ExtractChannels(payload)
			if len(channels) == 0 {
				rt.Printer.Notice("No channels found.")
				return nil
			}
			rows := make([][]string, len(channels))
			for i, c := range channels {
				rows[i] = resource.ChannelRow(c)
			}
			rt.Printer.Table("Channels", channelColumns, rows)
			return nil
		},
	}
}

func newCreateCmd() *cobra.Command {
	var req resource.ChannelRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new channel",
		Long: `Create a new channel. --visibility is public or private, in any case.
Private channels can be joined with the invite code.`,
		Example: `  openrsvp channels create --name friends --visibility private --invite-code s3cret`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			body := req
			if err := body.Validate(); err != nil {
				return err
			}

			payload, err := rt.Post(cmd.Context(), resource.ChannelsPath(), body)
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			c, _ := resource.AsRecord(payload)
			rt.Printer.Detail("Channel", resource.ChannelDetail(c))
			rt.Printer.Success("Channel created.")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Name, "name", "", "channel name")
	f.StringVar(&req.Visibility, "visibility", "", "channel visibility: public or private")
	f.StringVar(&req.InviteCode, "invite-code", "", "invite code for private channels")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("visibility")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show details for a single channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}

			payload, err := rt.Get(cmd.Context(), resource.ChannelPath(args[0]))
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			c, _ := resource.AsRecord(payload)
			rt.Printer.Detail("Channel", resource.ChannelDetail(c))
			return nil
		},
	}
}
