package resource

import "net/url"

const apiPrefix = "/api/v1"

// Endpoint paths. User-supplied segments are escaped.

// EventsPath lists or creates events.
func EventsPath() string { return apiPrefix + "/events" }

// EventPath addresses a single event.
func EventPath(id string) string { return EventsPath() + "/" + url.PathEscape(id) }

// EventRSVPsPath lists the RSVPs of an event.
func EventRSVPsPath(eventID string) string { return EventPath(eventID) + "/rsvps" }

// RSVPsPath creates RSVPs.
func RSVPsPath() string { return apiPrefix + "/rsvps" }

// RSVPPath addresses a single RSVP.
func RSVPPath(id string) string { return RSVPsPath() + "/" + url.PathEscape(id) }

// RSVPActionPath is the path for approve or reject.
func RSVPActionPath(id, action string) string { return RSVPPath(id) + "/" + action }

// ChannelsPath lists or creates channels.
func ChannelsPath() string { return apiPrefix + "/channels" }

// ChannelPath addresses a channel and its event feed.
func ChannelPath(name string) string { return ChannelsPath() + "/" + url.PathEscape(name) }

// AdminEventsPath lists the events owned by an admin token. The token is a
// path segment, so callers must not log the result unmasked.
func AdminEventsPath(token string) string { return "/admin/" + url.PathEscape(token) + "/events" }
