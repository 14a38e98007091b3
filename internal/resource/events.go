package resource

import (
	"fmt"
	"sort"
	"time"

	"github.com/brandonleon/invite/internal/errors"
)

// Keys under which list endpoints may wrap their events.
var eventListKeys = []string{"events", "items", "results", "data"}

// EventHeaders are the columns of the events table.
var EventHeaders = []string{"ID", "Title", "Start", "End", "Channel", "Private", "Approval"}

// ExtractEvents normalizes a list response into events. Unknown shapes
// yield an empty list.
func ExtractEvents(payload any) []Record {
	events, _ := unwrapList(payload, eventListKeys...)
	return events
}

// UnwrapEvent returns payload["event"] when the payload is an object with
// that key, and the payload unchanged otherwise.
func UnwrapEvent(payload any) any {
	if m, ok := AsRecord(payload); ok {
		if inner, ok := m["event"]; ok {
			return inner
		}
	}
	return payload
}

// PublicOnly drops events marked private.
func PublicOnly(events []Record) []Record {
	out := make([]Record, 0, len(events))
	for _, e := range events {
		if !Truthy(e["is_private"]) {
			out = append(out, e)
		}
	}
	return out
}

// ChannelLabel renders an event's channel, which may be a plain value or an
// object identified by slug, name or id.
func ChannelLabel(v any) string {
	if m, ok := AsRecord(v); ok {
		return m.First("slug", "name", "id")
	}
	return Stringify(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// EventRow is one line of the events table.
func EventRow(e Record) []string {
	return []string{
		e.String("id"),
		e.String("title"),
		e.First("start_time", "start"),
		e.First("end_time", "end"),
		ChannelLabel(e["channel"]),
		yesNo(e.Flag("is_private")),
		yesNo(e.Flag("admin_approval_required", "requires_approval")),
	}
}

// EventDetail is the key/value view of a single event.
func EventDetail(e Record) [][]string {
	return [][]string{
		{"id", e.String("id")},
		{"title", e.String("title")},
		{"description", e.String("description")},
		{"start_time", e.First("start_time", "start")},
		{"end_time", e.First("end_time", "end")},
		{"location", e.String("location")},
		{"channel", ChannelLabel(e["channel"])},
		{"is_private", e.String("is_private")},
		{"admin_approval_required", e.First("admin_approval_required", "requires_approval")},
		{"public_link", e.Nested("links").String("public")},
	}
}

// EventRequest is the body of POST /api/v1/events.
type EventRequest struct {
	Title                 string `json:"title"`
	Description           string `json:"description"`
	StartTime             string `json:"start_time"`
	EndTime               string `json:"end_time"`
	ChannelName           string `json:"channel_name"`
	IsPrivate             bool   `json:"is_private"`
	AdminApprovalRequired bool   `json:"admin_approval_required"`

	Location              string `json:"location,omitempty"`
	TimezoneOffsetMinutes *int   `json:"timezone_offset_minutes,omitempty"`
	ChannelVisibility     string `json:"channel_visibility,omitempty"`
}

// maxOffsetMinutes is one day either side of UTC.
const maxOffsetMinutes = 24 * 60

// Validate checks the request before it is sent and normalizes the channel
// visibility in place.
func (r *EventRequest) Validate() error {
	if err := requireText("--title", r.Title); err != nil {
		return err
	}
	if err := requireText("--channel", r.ChannelName); err != nil {
		return err
	}
	start, ok := ParseTimestamp(r.StartTime)
	if !ok {
		return errors.NewValidationError("--start", r.StartTime, timestampHint)
	}
	end, ok := ParseTimestamp(r.EndTime)
	if !ok {
		return errors.NewValidationError("--end", r.EndTime, timestampHint)
	}
	if end.Before(start) {
		return errors.NewValidationError("--end", r.EndTime, "must not be before --start")
	}
	if off := r.TimezoneOffsetMinutes; off != nil && (*off < -maxOffsetMinutes || *off > maxOffsetMinutes) {
		return errors.NewValidationError("--tz-offset", fmt.Sprint(*off),
			fmt.Sprintf("must be between -%d and %d", maxOffsetMinutes, maxOffsetMinutes))
	}
	if r.ChannelVisibility != "" {
		v, err := NormalizeVisibility("--channel-visibility", r.ChannelVisibility)
		if err != nil {
			return err
		}
		r.ChannelVisibility = v
	}
	return nil
}

// CreatedEvent is what POST /api/v1/events returned, probed for the fields
// worth showing.
type CreatedEvent struct {
	Event      Record
	AdminToken string
	AdminLink  string
}

// ParseCreatedEvent reads a create response, which is either the event
// itself or {"event": ..., "admin_token": ...}.
func ParseCreatedEvent(payload any) CreatedEvent {
	var out CreatedEvent
	top, _ := AsRecord(payload)
	out.Event, _ = AsRecord(UnwrapEvent(payload))
	if top != nil {
		out.AdminToken = top.String("admin_token")
	}
	if out.Event != nil {
		out.AdminLink = out.Event.Nested("links").String("admin")
	}
	return out
}

// CollectFeed extracts the events of a channel page, found either at
// "events" or at "channel.events".
func CollectFeed(payload any) []Record {
	m, ok := AsRecord(payload)
	if !ok {
		return nil
	}
	if items, ok := m["events"].([]any); ok {
		return Records(items)
	}
	if ch := m.Nested("channel"); ch != nil {
		if items, ok := ch["events"].([]any); ok {
			return Records(items)
		}
	}
	return nil
}

// SortByStart orders events by start_time. Events whose start time is
// missing or unparsable keep their relative order after all others.
func SortByStart(events []Record) {
	type keyed struct {
		e  Record
		t  time.Time
		ok bool
	}
	ks := make([]keyed, len(events))
	for i, e := range events {
		t, ok := ParseTimestamp(e.String("start_time"))
		ks[i] = keyed{e, t, ok}
	}
	sort.SliceStable(ks, func(a, b int) bool {
		if ks[a].ok != ks[b].ok {
			return ks[a].ok
		}
		return ks[a].ok && ks[a].t.Before(ks[b].t)
	})
	for i := range ks {
		events[i] = ks[i].e
	}
}

// FeedLine formats one event of the public feed. link is the public URL,
// or "" when the event has none.
func FeedLine(e Record) (line, link string) {
	start := orDefault(e.String("start_time"), "?")
	title := orDefault(e.String("title"), "(untitled)")
	id := orDefault(e.String("id"), "unknown")

	line = fmt.Sprintf("- %s | %s (id: %s)", start, title, id)
	if loc := e.String("location"); loc != "" {
		line += " @ " + loc
	}
	return line, e.Nested("links").String("public")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
