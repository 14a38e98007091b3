package settings

import (
	"github.com/caarlos0/env/v11"

	"github.com/brandonleon/invite/internal/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "OPENRSVP_"

// EnvSource is the environment layer: OPENRSVP_BASE_URL, OPENRSVP_TOKEN,
// OPENRSVP_DEFAULT_CHANNEL.
type EnvSource struct {
	values Partial
}

// LoadEnv reads the process environment.
func LoadEnv() (EnvSource, error) {
	return loadEnv(env.Options{Prefix: EnvPrefix})
}

// LoadEnvFrom reads the given variables instead of the process environment.
func LoadEnvFrom(vars map[string]string) (EnvSource, error) {
	return loadEnv(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func loadEnv(opts env.Options) (EnvSource, error) {
	var p Partial
	if err := env.ParseWithOptions(&p, opts); err != nil {
		return EnvSource{}, errors.Wrap(err, "reading environment")
	}
	return EnvSource{values: p}, nil
}

// Partial returns the values found in the environment.
func (e EnvSource) Partial() Partial {
	return e.values
}
