// Package cmdutil carries per-invocation state from the root command to the
// noun subpackages (events, rsvps, channels) without an import cycle.
package cmdutil

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brandonleon/invite/cmd"
	"github.com/brandonleon/invite/internal/api"
	"github.com/brandonleon/invite/internal/config"
	"github.com/brandonleon/invite/internal/errors"
	"github.com/brandonleon/invite/internal/output"
	"github.com/brandonleon/invite/internal/settings"
)

// ErrNotInitialized means a command ran without the root command's setup.
var ErrNotInitialized = errors.New("configuration was not initialized; run through the openrsvp root command")

// Layers are the raw inputs settings were resolved from.
type Layers struct {
	Explicit settings.Partial
	Env      settings.Partial
	File     settings.Partial
}

// Runtime is everything a command handler needs.
type Runtime struct {
	Settings settings.Settings
	Layers   Layers
	Store    *config.Store
	Printer  *output.Printer
	Logger   *slog.Logger
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying rt.
func NewContext(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, ctxKey{}, rt)
}

// FromCommand returns the Runtime installed by the root command.
func FromCommand(c *cobra.Command) (*Runtime, error) {
	ctx := c.Context()
	if ctx == nil {
		return nil, ErrNotInitialized
	}
	rt, ok := ctx.Value(ctxKey{}).(*Runtime)
	if !ok || rt == nil {
		return nil, ErrNotInitialized
	}
	return rt, nil
}

// Call opens one API session, runs fn against it and closes the session.
func (rt *Runtime) Call(ctx context.Context, fn func(*api.Client) (any, error)) (any, error) {
	var payload any
	err := api.Session(ctx, rt.Settings, func(c *api.Client) error {
		var err error
		payload, err = fn(c)
		return err
	},
		api.WithLogger(rt.Logger),
		api.WithConfigPath(rt.Store.Path),
		api.WithUserAgent(cmd.UserAgent()),
	)
	return payload, err
}

// Get is Call for a single GET.
func (rt *Runtime) Get(ctx context.Context, path string) (any, error) {
	return rt.Call(ctx, func(c *api.Client) (any, error) {
		return c.Get(ctx, path, nil)
	})
}

// Post is Call for a single POST.
func (rt *Runtime) Post(ctx context.Context, path string, body any) (any, error) {
	return rt.Call(ctx, func(c *api.Client) (any, error) {
		return c.Post(ctx, path, body)
	})
}

// Delete is Call for a single DELETE.
func (rt *Runtime) Delete(ctx context.Context, path string) (any, error) {
	return rt.Call(ctx, func(c *api.Client) (any, error) {
		return c.Delete(ctx, path)
	})
}

// Emit prints payload as JSON in JSON mode and reports whether it did, so
// handlers can fall through to human rendering otherwise.
func (rt *Runtime) Emit(payload any) (bool, error) {
	if !rt.Printer.JSONMode() {
		return false, nil
	}
	return true, rt.Printer.JSON(payload)
}
