package cmdutil

import (
	"github.com/brandonleon/invite/internal/api"
	"github.com/brandonleon/invite/internal/config"
	"github.com/brandonleon/invite/internal/errors"
	"github.com/brandonleon/invite/internal/output"
	"github.com/brandonleon/invite/internal/resource"
)

// Report prints err for the user. Authentication and network failures show
// their own message; other API failures show the status and, in JSON mode,
// the response payload on stdout.
func Report(p *output.Printer, err error) {
	if err == nil {
		return
	}

	var (
		authErr  *api.AuthError
		netErr   *api.NetworkError
		apiErr   *api.APIError
		writeErr *config.WriteError
		exitErr  *errors.ExitError
	)

	switch {
	case errors.As(err, &authErr):
		p.Error("%s", authErr.Message)
	case errors.As(err, &netErr):
		p.Error("%s", netErr.Error())
	case errors.As(err, &apiErr):
		p.Error("API error (%d): %s", apiErr.Status, apiErr.Message)
		if p.JSONMode() && resource.Truthy(apiErr.Payload) {
			_ = p.JSON(apiErr.Payload)
		}
	case errors.As(err, &writeErr):
		p.Error("Failed to update config: %v", writeErr)
	default:
		p.Error("Error: %v", err)
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			p.Error("%s", exitErr.Suggestion)
		}
	}
}
