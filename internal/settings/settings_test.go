package settings

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_BaseURLPrecedence(t *testing.T) {
	values := []string{"", "https://explicit.example/", "https://env.example//", "https://file.example"}

	// Every combination of present/absent across the three layers.
	for _, explicit := range []string{values[0], values[1]} {
		for _, envVal := range []string{values[0], values[2]} {
			for _, fileVal := range []string{values[0], values[3]} {
				name := fmt.Sprintf("explicit=%q env=%q file=%q", explicit, envVal, fileVal)
				t.Run(name, func(t *testing.T) {
					var want string
					switch {
					case explicit != "":
						want = "https://explicit.example"
					case envVal != "":
						want = "https://env.example"
					case fileVal != "":
						want = "https://file.example"
					default:
						want = DefaultBaseURL
					}

					s := mustResolve(t,
						Partial{BaseURL: explicit},
						Static{BaseURL: envVal},
						Static{BaseURL: fileVal},
						Options{},
					)
					assert.Equal(t, want, s.BaseURL())
				})
			}
		}
	}
}

func TestResolve_OptionalFieldsHaveNoDefault(t *testing.T) {
	tests := []struct {
		name        string
		explicit    Partial
		env         Partial
		file        Partial
		wantToken   string
		wantChannel string
	}{
		{name: "all absent"},
		{
			name:        "explicit wins",
			explicit:    Partial{Token: "cli", DefaultChannel: "cli-chan"},
			env:         Partial{Token: "env", DefaultChannel: "env-chan"},
			file:        Partial{Token: "file", DefaultChannel: "file-chan"},
			wantToken:   "cli",
			wantChannel: "cli-chan",
		},
		{
			name:        "env over file",
			env:         Partial{Token: "env"},
			file:        Partial{Token: "file", DefaultChannel: "file-chan"},
			wantToken:   "env",
			wantChannel: "file-chan",
		},
		{
			name:        "file only",
			file:        Partial{DefaultChannel: "file-chan"},
			wantChannel: "file-chan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustResolve(t, tt.explicit, Static(tt.env), Static(tt.file), Options{})

			token, hasToken := s.Token()
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantToken != "", hasToken)

			channel, hasChannel := s.DefaultChannel()
			assert.Equal(t, tt.wantChannel, channel)
			assert.Equal(t, tt.wantChannel != "", hasChannel)
		})
	}
}

func mustResolve(t *testing.T, explicit Partial, env, file Source, opts Options) Settings {
	t.Helper()
	s, err := Resolve(explicit, env, file, opts)
	require.NoError(t, err)
	return s
}

func TestResolve_NilSources(t *testing.T) {
	s := mustResolve(t, Partial{}, nil, nil, Options{})

	assert.Equal(t, DefaultBaseURL, s.BaseURL())
	assert.Equal(t, OutputHuman, s.Output())
	assert.False(t, s.JSON())
	assert.False(t, s.Quiet())
}

func TestResolve_SlashOnlyBaseURLIsAbsent(t *testing.T) {
	s := mustResolve(t, Partial{BaseURL: "/"}, Static{BaseURL: "https://env.example"}, nil, Options{})
	assert.Equal(t, "https://env.example", s.BaseURL())
}

func TestResolve_OptionsOnlyFromFlags(t *testing.T) {
	s := mustResolve(t, Partial{}, nil, nil, Options{Output: OutputJSON, Quiet: true})

	assert.True(t, s.JSON())
	assert.True(t, s.Quiet())
}

func TestResolve_DoesNotMutateInputs(t *testing.T) {
	explicit := Partial{BaseURL: "https://x/"}
	file := Static{Token: "file"}

	_ = mustResolve(t, explicit, nil, file, Options{})

	assert.Equal(t, "https://x/", explicit.BaseURL)
	assert.Equal(t, Partial{Token: "file"}, file.Partial())
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := map[string]string{
		"https://example.com/":    "https://example.com",
		"https://example.com///":  "https://example.com",
		"https://example.com/api": "https://example.com/api",
		" http://x/ ":             "http://x",
		"":                        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeBaseURL(in), "input %q", in)
	}
}

func TestSettings_LogValueMasksToken(t *testing.T) {
	s := mustResolve(t, Partial{Token: "supersecrettoken"}, nil, nil, Options{})

	v := s.LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	found := false
	for _, a := range v.Group() {
		assert.NotContains(t, a.Value.String(), "supersecrettoken")
		if a.Key == "token" {
			found = true
			assert.Equal(t, "****oken", a.Value.String())
		}
	}
	assert.True(t, found, "token attribute missing")
}
