package settings

// Origin names the layer a resolved value came from.
type Origin string

const (
	OriginFlag    Origin = "flag"
	OriginEnv     Origin = "env"
	OriginFile    Origin = "file"
	OriginDefault Origin = "default"
	OriginUnset   Origin = "unset"
)

// Origins records where each resolved field came from.
type Origins struct {
	BaseURL        Origin
	Token          Origin
	DefaultChannel Origin
}

// Trace reports which layer Resolve would take each field from, given the
// same inputs.
func Trace(explicit Partial, env, file Source) Origins {
	layers := []struct {
		origin Origin
		p      Partial
	}{
		{OriginFlag, normalize(explicit)},
		{OriginEnv, normalize(partialOf(env))},
		{OriginFile, normalize(partialOf(file))},
	}

	pick := func(field func(Partial) string, fallback Origin) Origin {
		for _, l := range layers {
			if field(l.p) != "" {
				return l.origin
			}
		}
		return fallback
	}

	return Origins{
		BaseURL:        pick(func(p Partial) string { return p.BaseURL }, OriginDefault),
		Token:          pick(func(p Partial) string { return p.Token }, OriginUnset),
		DefaultChannel: pick(func(p Partial) string { return p.DefaultChannel }, OriginUnset),
	}
}
