// Package paths resolves the filesystem locations used by the openrsvp CLI.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance
// (~/.config on Linux, ~/Library/Application Support on macOS,
// %LOCALAPPDATA% on Windows).
//
// The CLI keeps a single configuration file:
//
//	paths.ConfigFile() // <ConfigHome>/openrsvp/config.toml
//
// The OPENRSVP_CONFIG environment variable overrides the location.
package paths
