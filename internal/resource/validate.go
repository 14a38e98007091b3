package resource

import (
	"strings"
	"time"

	"github.com/brandonleon/invite/internal/errors"
)

// Visibility values accepted for channels.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// timestampLayouts are the ISO-8601 forms accepted on input, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

const timestampHint = "must be ISO-8601, e.g. 2024-03-01T10:00:00"

// ParseTimestamp parses an ISO-8601 date or date-time. Values without an
// offset are read as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ValidateTimestamp returns a ValidationError naming field when value is not
// ISO-8601.
func ValidateTimestamp(field, value string) error {
	if _, ok := ParseTimestamp(value); !ok {
		return errors.NewValidationError(field, value, timestampHint)
	}
	return nil
}

// NormalizeVisibility lowercases value and checks it is public or private.
func NormalizeVisibility(field, value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v != VisibilityPublic && v != VisibilityPrivate {
		return "", errors.NewValidationError(field, value, "must be 'public' or 'private'")
	}
	return v, nil
}

func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewValidationError(field, "", "must not be empty")
	}
	return nil
}
