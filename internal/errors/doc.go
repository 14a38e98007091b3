// Package errors provides error handling conventions for the openrsvp CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, a ValidationError for
// rejected command input, and thin re-exports of
// github.com/cockroachdb/errors so callers need only one errors import.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [errors.Is]:
//
//	if errors.Is(err, errors.ErrInvalidInput) {
//	    // malformed flag or argument
//	}
//
// # Exit Codes
//
// Every handled failure exits with [ExitUser] (1). [ExitCode] maps an
// error returned from the command tree to the process exit code.
//
// # ValidationError
//
// [ValidationError] is returned by command handlers when input such as a
// date or visibility value is malformed. It is raised before any request
// is issued and unwraps to [ErrInvalidInput].
package errors
