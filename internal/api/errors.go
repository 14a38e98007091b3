package api

import (
	"fmt"

	"github.com/brandonleon/invite/internal/errors"
)

// ErrClientState is returned when a request is made on a client that is not open,
// or when Open is called twice.
var ErrClientState = errors.New("api client is not open")

// NetworkError means no HTTP response was obtained: DNS failure, refused
// connection, timeout.
type NetworkError struct {
	BaseURL string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Network error contacting %s: %v", e.BaseURL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response other than 401/403.
type APIError struct {
	Status  int
	Message string

	// Payload is the decoded body, or the raw text when it was not JSON.
	Payload any
}

func (e *APIError) Error() string {
	return e.Message
}

// AuthError is a 401 or 403 response. It unwraps to an *APIError with the
// same status and message so generic handling still applies.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return &APIError{Status: e.Status, Message: e.Message}
}

// AuthGuidance is the fixed message carried by every AuthError.
func AuthGuidance(configPath string) string {
	where := "the config file"
	if configPath != "" {
		where = fmt.Sprintf("the config file (%s)", configPath)
	}
	return fmt.Sprintf("Authentication failed. Provide a valid token via --token, OPENRSVP_TOKEN, or %s.", where)
}
