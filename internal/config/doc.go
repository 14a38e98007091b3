// Package config reads and writes the openrsvp configuration file.
//
// # Configuration File
//
// The file lives at <XDG config home>/openrsvp/config.toml unless
// OPENRSVP_CONFIG or --config points elsewhere. Keys may sit at the top
// level or under an [openrsvp] table:
//
//	base_url = "https://rsvp.example.com"
//
//	[openrsvp]
//	token = "s3cret"
//	default_channel = "friends"
//
// When both are present the [openrsvp] value wins per key and the top
// level fills whatever the table leaves out.
//
// # Reading
//
// [Store.Read] never fails. A missing, unreadable or malformed file
// contributes nothing to settings resolution:
//
//	file := config.NewStore(path).Read()
//
// # Writing
//
// [Store.Write] persists only base_url, creating parent directories as
// needed. Failures come back as a [*WriteError]:
//
//	path, err := store.Write("https://rsvp.example.com/")
//	var werr *config.WriteError
//	if errors.As(err, &werr) {
//	    // permission denied, disk full, ...
//	}
package config
