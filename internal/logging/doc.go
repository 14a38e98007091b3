// Package logging provides structured logging for the openrsvp CLI using slog.
//
// The package supports both text and JSON output formats, configurable log
// levels, secret redaction, and helpers for testing. All loggers are based
// on the standard library's [log/slog] package.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("request", "method", "GET", "path", "/api/v1/events")
//
// # Redaction
//
// The text handler masks attribute values whose key looks sensitive
// (token, authorization, secret, ...) so bearer tokens never reach the
// terminal:
//
//	logger.Debug("settings", "token", "abcdef123") // token=****f123
//
// # Context
//
// Commands carry their logger in the context:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("opening client")
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
