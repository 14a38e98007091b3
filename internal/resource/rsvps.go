package resource

import (
	"fmt"

	"github.com/brandonleon/invite/internal/errors"
)

// RSVPHeaders are the columns of the RSVP table.
var RSVPHeaders = []string{"ID", "Name", "Email", "Status", "Guests"}

// ExtractRSVPs normalizes an RSVP list response. A lone object is treated
// as a list of one.
func ExtractRSVPs(payload any) []Record {
	return listOrSingle(payload, "rsvps", "items", "results", "data")
}

// RSVPRow is one line of the RSVP table.
func RSVPRow(r Record) []string {
	return []string{
		r.String("id"),
		r.String("name"),
		r.String("email"),
		r.String("status"),
		r.String("guests"),
	}
}

// RSVPDetail is the key/value view of a single RSVP.
func RSVPDetail(r Record) [][]string {
	keys := []string{"id", "event_id", "name", "email", "status", "guests", "note"}
	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, r.String(k)}
	}
	return rows
}

// RSVPRequest is the body of POST /api/v1/rsvps.
type RSVPRequest struct {
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Guests  int    `json:"guests"`
	Note    string `json:"note,omitempty"`
}

// Validate checks the request before it is sent.
func (r RSVPRequest) Validate() error {
	if err := requireText("event id", r.EventID); err != nil {
		return err
	}
	if err := requireText("--name", r.Name); err != nil {
		return err
	}
	if err := requireText("--email", r.Email); err != nil {
		return err
	}
	if r.Guests < 1 {
		return errors.NewValidationError("--guests", fmt.Sprint(r.Guests), "must be at least 1")
	}
	return nil
}

// RejectRequest is the body of POST /api/v1/rsvps/{id}/reject.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// Validate checks the request before it is sent.
func (r RejectRequest) Validate() error {
	return requireText("--reason", r.Reason)
}
