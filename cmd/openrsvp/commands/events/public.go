package events

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd/openrsvp/commands/cmdutil"
	"github.com/brandonleon/invite/internal/api"
	"github.com/brandonleon/invite/internal/errors"
	"github.com/brandonleon/invite/internal/resource"
)

// defaultFeed is the channel slug that holds the public feed.
const defaultFeed = "public"

func newPublicCmd() *cobra.Command {
	var (
		slug string
		page int
	)

	cmd := &cobra.Command{
		Use:   "public",
		Short: "Show public events sorted by start time",
		Long: `Show one page of a channel's events, earliest first.

Events without a readable start time are listed last.`,
		Example: `  openrsvp events public
  openrsvp events public --channel friends --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := cmdutil.FromCommand(cmd)
			if err != nil {
				return err
			}
			if page < 1 {
				return errors.NewValidationError("--page", strconv.Itoa(page), "must be at least 1")
			}

			ctx := cmd.Context()
			payload, err := rt.Call(ctx, func(c *api.Client) (any, error) {
				return c.Get(ctx, resource.ChannelPath(slug), url.Values{"page": {strconv.Itoa(page)}})
			})
			if err != nil {
				return err
			}
			if done, err := rt.Emit(payload); done {
				return err
			}

			events := resource.CollectFeed(payload)
			if len(events) == 0 {
				rt.Printer.Notice("No public events found.")
				return nil
			}
			resource.SortByStart(events)

			rt.Printer.Heading("Public events (channel: %s, page %d):", slug, page)
			for _, e := range events {
				line, link := resource.FeedLine(e)
				rt.Printer.Println(line)
				if link != "" {
					rt.Printer.Println(fmt.Sprintf("  public: %s", link))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&slug, "channel", "c", defaultFeed, "channel slug to read")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page of the feed to fetch")
	return cmd
}
