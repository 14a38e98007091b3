// Package settings resolves the effective configuration for one CLI
// invocation from explicit flags, the environment, and the config file.
package settings

import (
	"log/slog"
	"strings"

	"dario.cat/mergo"

	"github.com/brandonleon/invite/internal/errors"
	"github.com/brandonleon/invite/internal/logging"
)

// DefaultBaseURL is used when no layer provides a base URL.
const DefaultBaseURL = "http://localhost:8000"

// OutputMode selects how command results are rendered.
type OutputMode string

const (
	// OutputHuman renders tables and status lines.
	OutputHuman OutputMode = "human"

	// OutputJSON prints the raw response payload as JSON.
	OutputJSON OutputMode = "json"
)

// Partial holds the values contributed by a single configuration layer.
// An empty string means the layer has no opinion on that field.
type Partial struct {
	BaseURL        string `env:"BASE_URL"`
	Token          string `env:"TOKEN"`
	DefaultChannel string `env:"DEFAULT_CHANNEL"`
}

// IsZero reports whether the layer contributes nothing.
func (p Partial) IsZero() bool {
	return p == Partial{}
}

// Source is a configuration layer that has already performed its I/O.
type Source interface {
	Partial() Partial
}

// Static adapts a Partial into a Source.
type Static Partial

// Partial returns the wrapped layer.
func (s Static) Partial() Partial {
	return Partial(s)
}

// Options carries values that only ever come from command-line flags.
type Options struct {
	Output OutputMode
	Quiet  bool
}

// Settings is the resolved, read-only configuration for one invocation.
type Settings struct {
	baseURL        string
	token          string
	defaultChannel string
	output         OutputMode
	quiet          bool
}

// Resolve merges the layers with precedence explicit > env > file > default.
// Only BaseURL has a default. Trailing slashes are stripped from every
// BaseURL before merging, so a value of "/" counts as absent.
func Resolve(explicit Partial, env, file Source, opts Options) (Settings, error) {
	merged := normalize(explicit)
	for _, layer := range []Partial{partialOf(env), partialOf(file), {BaseURL: DefaultBaseURL}} {
		// mergo fills only zero-valued fields: first non-empty wins.
		if err := mergo.Merge(&merged, normalize(layer)); err != nil {
			return Settings{}, errors.Wrap(err, "merging settings layers")
		}
	}

	output := opts.Output
	if output == "" {
		output = OutputHuman
	}

	return Settings{
		baseURL:        merged.BaseURL,
		token:          merged.Token,
		defaultChannel: merged.DefaultChannel,
		output:         output,
		quiet:          opts.Quiet,
	}, nil
}

func partialOf(s Source) Partial {
	if s == nil {
		return Partial{}
	}
	return s.Partial()
}

func normalize(p Partial) Partial {
	p.BaseURL = NormalizeBaseURL(p.BaseURL)
	return p
}

// NormalizeBaseURL strips trailing slashes.
func NormalizeBaseURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}

// BaseURL is the API root without a trailing slash. Never empty.
func (s Settings) BaseURL() string { return s.baseURL }

// Token returns the bearer credential and whether one is configured.
func (s Settings) Token() (string, bool) { return s.token, s.token != "" }

// DefaultChannel returns the fallback channel and whether one is configured.
func (s Settings) DefaultChannel() (string, bool) {
	return s.defaultChannel, s.defaultChannel != ""
}

// Output returns the rendering mode.
func (s Settings) Output() OutputMode { return s.output }

// JSON reports whether raw JSON output was requested.
func (s Settings) JSON() bool { return s.output == OutputJSON }

// Quiet reports whether non-essential success messages are suppressed.
func (s Settings) Quiet() bool { return s.quiet }

// LogValue implements slog.LogValuer. The token is masked.
func (s Settings) LogValue() slog.Value {
	token := ""
	if s.token != "" {
		token = logging.MaskValue(s.token)
	}
	return slog.GroupValue(
		slog.String("base_url", s.baseURL),
		slog.String("token", token),
		slog.String("default_channel", s.defaultChannel),
		slog.String("output", string(s.output)),
		slog.Bool("quiet", s.quiet),
	)
}
