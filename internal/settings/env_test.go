package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFrom(t *testing.T) {
	src, err := LoadEnvFrom(map[string]string{
		"OPENRSVP_BASE_URL":        "https://env.example/",
		"OPENRSVP_TOKEN":           "abc",
		"OPENRSVP_DEFAULT_CHANNEL": "friends",
		"BASE_URL":                 "https://unprefixed.example",
	})
	require.NoError(t, err)

	assert.Equal(t, Partial{
		BaseURL:        "https://env.example/",
		Token:          "abc",
		DefaultChannel: "friends",
	}, src.Partial())
}

func TestLoadEnvFrom_Empty(t *testing.T) {
	src, err := LoadEnvFrom(map[string]string{})
	require.NoError(t, err)
	assert.True(t, src.Partial().IsZero())
}

func TestLoadEnv_ProcessEnvironment(t *testing.T) {
	t.Setenv("OPENRSVP_TOKEN", "from-process")
	t.Setenv("OPENRSVP_BASE_URL", "")
	t.Setenv("OPENRSVP_DEFAULT_CHANNEL", "")

	src, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "from-process", src.Partial().Token)

	s := mustResolve(t, Partial{}, src, nil, Options{})
	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "from-process", token)
}
