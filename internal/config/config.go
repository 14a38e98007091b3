package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/brandonleon/invite/internal/errors"
	"github.com/brandonleon/invite/internal/paths"
	"github.com/brandonleon/invite/internal/settings"
	"github.com/brandonleon/invite/pkg/fileutil"
)

// Section is the optional table that scopes openrsvp keys.
const Section = "openrsvp"

// Recognized keys.
const (
	KeyBaseURL        = "base_url"
	KeyToken          = "token"
	KeyDefaultChannel = "default_channel"
)

// FilePerm is the permission used for the written config file.
const FilePerm = 0o600

// Store reads and writes the configuration document at Path.
type Store struct {
	Path   string
	Logger *slog.Logger
}

// NewStore returns a Store for path. An empty path selects the default location.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path}
}

// DefaultPath returns the configuration file location.
func DefaultPath() string {
	return paths.ConfigFile()
}

func (s *Store) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// Partial implements settings.Source by reading the file.
func (s *Store) Partial() settings.Partial {
	return s.Read()
}

// Read loads the file. A missing, unreadable, or malformed document yields
// an empty Partial; resolution must never fail because of the config file.
func (s *Store) Read() (p settings.Partial) {
	defer func() {
		if r := recover(); r != nil {
			s.logger().Debug("config file ignored", "path", s.Path, "panic", fmt.Sprint(r))
			p = settings.Partial{}
		}
	}()

	if _, err := os.Stat(s.Path); os.IsNotExist(err) {
		return settings.Partial{}
	}

	data, err := fileutil.ReadFileWithLimit(s.Path)
	if err != nil {
		s.logger().Debug("config file ignored", "path", s.Path, "error", err)
		return settings.Partial{}
	}

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		s.logger().Debug("config file ignored", "path", s.Path, "error", err)
		return settings.Partial{}
	}

	section, _ := v.Get(Section).(map[string]any)
	lookup := func(key string) string {
		if section != nil && v.IsSet(Section+"."+key) {
			if val := v.GetString(Section + "." + key); val != "" {
				return val
			}
		}
		return v.GetString(key)
	}

	return settings.Partial{
		BaseURL:        lookup(KeyBaseURL),
		Token:          lookup(KeyToken),
		DefaultChannel: lookup(KeyDefaultChannel),
	}
}

// WriteError reports a failure to persist the config file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing config %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

type document struct {
	BaseURL string `toml:"base_url"`
}

// Write replaces the file with a single normalized base_url entry and
// returns the absolute path written.
func (s *Store) Write(baseURL string) (string, error) {
	path, err := filepath.Abs(s.Path)
	if err != nil {
		return "", &WriteError{Path: s.Path, Err: err}
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return "", &WriteError{Path: path, Err: errors.Wrap(err, "creating config directory")}
	}

	doc := document{BaseURL: settings.NormalizeBaseURL(baseURL)}
	if err := fileutil.AtomicWriteTOML(path, doc, FilePerm); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	s.logger().Debug("config written", "path", path, "base_url", doc.BaseURL)
	return path, nil
}
