package commands

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/brandonleon/invite/internal/apitest"
	"github.com/brandonleon/invite/internal/config"
)

func readConfigFile(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, toml.Unmarshal(data, &doc))
	return doc
}

func TestConfigSetBaseURL(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "positional",
			args: []string{"config", "set-base-url", "https://rsvp.example.com/"},
			want: "https://rsvp.example.com",
		},
		{
			name: "flag",
			args: []string{"config", "set-base-url", "-b", "https://flag.example.com//"},
			want: "https://flag.example.com",
		},
		{
			name: "positional beats flag",
			args: []string{"config", "set-base-url", "https://pos.example.com", "--base-url", "https://flag.example.com"},
			want: "https://pos.example.com",
		},
		{
			name: "default",
			args: []string{"config", "set-base-url"},
			want: "http://localhost:8000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := isolate(t)

			r := run(t, tt.args...)

			require.NoError(t, r.err, r.stderr)
			assert.Equal(t, map[string]any{"base_url": tt.want}, readConfigFile(t, cfg))
			assert.Equal(t, "Saved base_url to "+cfg+"\n", r.stdout)
		})
	}
}

func TestConfigSetBaseURL_ReplacesExistingFile(t *testing.T) {
	cfg := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg), 0o755))
	require.NoError(t, os.WriteFile(cfg, []byte("token = \"old\"\n[openrsvp]\ndefault_channel = \"x\"\n"), 0o600))

	r := run(t, "config", "set-base-url", "https://new.example.com")

	require.NoError(t, r.err)
	assert.Equal(t, map[string]any{"base_url": "https://new.example.com"}, readConfigFile(t, cfg))

	info, err := os.Stat(cfg)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(config.FilePerm), info.Mode().Perm())
}

func TestConfigSetBaseURL_QuietAndJSON(t *testing.T) {
	cfg := isolate(t)

	r := run(t, "-q", "config", "set-base-url", "https://q.example.com")
	require.NoError(t, r.err)
	assert.Empty(t, r.stdout)

	r = run(t, "--json", "config", "set-base-url", "https://j.example.com/")
	require.NoError(t, r.err)
	assert.JSONEq(t, `{"base_url": "https://j.example.com", "path": "`+cfg+`"}`, r.stdout)
}

func TestConfigSetBaseURL_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	isolate(t)
	t.Setenv("OPENRSVP_CONFIG", filepath.Join(blocker, "config.toml"))

	r := run(t, "config", "set-base-url", "https://rsvp.example.com")

	var werr *config.WriteError
	require.ErrorAs(t, r.err, &werr)
	assert.Contains(t, r.stderr, "Failed to update config")
}

func TestConfigShow(t *testing.T) {
	cfg := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg), 0o755))
	require.NoError(t, os.WriteFile(cfg, []byte("[openrsvp]\ndefault_channel = \"friends\"\n"), 0o600))
	t.Setenv("OPENRSVP_TOKEN", "supersecret")

	r := run(t, "config", "show")
	require.NoError(t, r.err, r.stderr)

	var shown map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &shown))
	assert.Equal(t, cfg, shown["config_file"])
	assert.Equal(t, map[string]any{"value": "http://localhost:8000", "source": "default"}, shown["base_url"])
	assert.Equal(t, map[string]any{"value": "****cret", "source": "env"}, shown["token"])
	assert.Equal(t, map[string]any{"value": "friends", "source": "file"}, shown["default_channel"])
	assert.Equal(t, "human", shown["output"])
	assert.NotContains(t, r.stdout, "supersecret")
}

func TestConfigShow_JSON(t *testing.T) {
	isolate(t)

	r := run(t, "--json", "--base-url", "https://x.example.com/", "config", "show")
	require.NoError(t, r.err)

	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &shown))
	assert.Equal(t, map[string]any{"value": "https://x.example.com", "source": "flag"}, shown["base_url"])
	assert.Equal(t, map[string]any{"value": "", "source": "unset"}, shown["token"])
	assert.Equal(t, "json", shown["output"])
}

func TestConfigPath(t *testing.T) {
	cfg := isolate(t)

	r := run(t, "config", "path")
	require.NoError(t, r.err)
	assert.Equal(t, cfg+"\n", r.stdout)

	other := filepath.Join(t.TempDir(), "elsewhere.toml")
	r = run(t, "--config", other, "config", "path")
	require.NoError(t, r.err)
	assert.Equal(t, other+"\n", r.stdout)
}

func TestConfigFileFeedsLaterCommands(t *testing.T) {
	isolate(t)
	srv := apitest.New(t)
	srv.Respond(http.MethodGet, "/api/v1/channels", http.StatusOK, `[]`)

	r := run(t, "config", "set-base-url", srv.URL+"/")
	require.NoError(t, r.err)

	r = run(t, "channels", "list")
	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, "No channels found.\n", r.stdout)
	assert.Equal(t, "/api/v1/channels", srv.Last(t).Path)
}

func TestConfigEdit_CreatesMissingFile(t *testing.T) {
	cfg := isolate(t)
	t.Setenv("EDITOR", "echo")
	t.Setenv("VISUAL", "")

	r := run(t, "config", "edit")

	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, cfg+"\n", r.stdout)
	assert.Equal(t, map[string]any{"base_url": "http://localhost:8000"}, readConfigFile(t, cfg))
}

func TestConfigEdit_KeepsExistingFile(t *testing.T) {
	cfg := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg), 0o755))
	require.NoError(t, os.WriteFile(cfg, []byte("token = \"abc\"\n"), 0o600))
	t.Setenv("EDITOR", "echo")

	r := run(t, "config", "edit")

	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, map[string]any{"token": "abc"}, readConfigFile(t, cfg))
}
