package commands

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonleon/invite/internal/apitest"
	"github.com/brandonleon/invite/internal/errors"
)

func TestChannelsList(t *testing.T) {
	isolate(t)
	srv := apitest.New(t)
	srv.Respond(http.MethodGet, "/api/v1/channels", http.StatusOK,
		`[{"name":"friends","visibility":"private","invite_code":"xyz"},{"name":"public","visibility":"public"}]`)

	r := against(t, srv, "channels", "list")

	require.NoError(t, r.err)
	for _, want := range []string{"Channels", "Invite Code", "friends", "private", "xyz", "public"} {
		assert.Contains(t, r.stdout, want)
	}
	_, present := srv.Last(t).Header["Authorization"]
	assert.False(t, present, "no token, no Authorization header")
}

func TestChannelsCreate_NormalizesVisibility(t *testing.T) {
	isolate(t)
	srv := apitest.New(t)
	srv.Respond(http.MethodPost, "/api/v1/channels", http.StatusCreated,
		`{"name":"news","visibility":"public","description":"Announcements"}`)

	r := against(t, srv, "channels", "create", "--name", "news", "--visibility", "PUBLIC")

	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, map[string]any{"name": "news", "visibility": "public"}, srv.Last(t).JSON(t))
	assert.Contains(t, r.stdout, "Announcements")
	assert.Contains(t, r.stdout, "Channel created.")
}

func TestChannelsCreate_InviteCode(t *testing.T) {
	isolate(t)
	srv := apitest.New(t)
	srv.Respond(http.MethodPost, "/api/v1/channels", http.StatusCreated, `{"name":"club"}`)

	r := against(t, srv, "channels", "create", "--name", "club", "--visibility", "private", "--invite-code", "s3cret")

	require.NoError(t, r.err, r.stderr)
	assert.Equal(t, "s3cret", srv.Last(t).JSON(t)["invite_code"])
}

func TestChannelsCreate_BadVisibility(t *testing.T) {
	isolate(t)
	srv := apitest.New(t)

	r := against(t, srv, "channels", "create", "--name", "x", "--visibility", "hidden")

	var ve *errors.ValidationError
	require.ErrorAs(t, r.err, &ve)
	assert.Equal(t, "--visibility", ve.Field)
	assert.Contains(t, r.stderr, "must be 'public' or 'private'")
	assert.Empty(t, srv.Requests())
}

func TestChannelsShow(t *testing.T) {
	isolate(t)
	srv := apitest.New(t)
	srv.Respond(http.MethodGet, "/api/v1/channels/friends", http.StatusOK,
		`{"name":"friends","visibility":"private","invite_code":"xyz","description":"Close friends"}`)

	r := against(t, srv, "channels", "show", "friends")

	require.NoError(t, r.err)
	for _, want := range []string{"Channel", "invite_code", "xyz", "Close friends"} {
		assert.Contains(t, r.stdout, want)
	}
}
