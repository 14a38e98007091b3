// Package cmd holds build metadata injected via ldflags:
//
//	go build -ldflags "-X github.com/brandonleon/invite/cmd.Version=1.2.0" ./cmd/openrsvp
package cmd

import "fmt"

// Build-time variables set via ldflags.
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA of the build.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// UserAgent identifies this build to the OpenRSVP server.
func UserAgent() string {
	return fmt.Sprintf("openrsvp/%s", Version)
}
