// Package api is the HTTP client for the OpenRSVP REST API.
//
// A Client is bound to one resolved settings value and follows a strict
// lifecycle: Unopened, Open, Closed. Requests are only allowed while open
// and a closed client cannot be reopened. [Session] wraps the lifecycle so
// the client is always released:
//
//	err := api.Session(ctx, s, func(c *api.Client) error {
//		data, err := c.Get(ctx, "/api/v1/events", nil)
//		...
//	})
//
// Every failure is classified as a [*NetworkError], [*AuthError] or
// [*APIError]. Successful payloads are returned as untyped JSON values
// (map[string]any, []any, json.Number, string, bool or nil).
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/brandonleon/invite/internal/errors"
	"github.com/brandonleon/invite/internal/logging"
	"github.com/brandonleon/invite/internal/settings"
)

// DefaultTimeout bounds both connecting and the whole exchange.
const DefaultTimeout = 10 * time.Second

// RequestIDHeader carries a per-request identifier for server-side correlation.
const RequestIDHeader = "X-Request-ID"

type state int

const (
	stateUnopened state = iota
	stateOpen
	stateClosed
)

// Option customizes a Client before it is opened.
type Option func(*Client)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithConfigPath names the config file in authentication guidance.
func WithConfigPath(p string) Option {
	return func(c *Client) { c.configPath = p }
}

// Client issues requests against one OpenRSVP server.
type Client struct {
	settings   settings.Settings
	timeout    time.Duration
	logger     *slog.Logger
	userAgent  string
	configPath string

	mu    sync.Mutex
	state state
	http  *resty.Client
}

// New returns an unopened client for s.
func New(s settings.Settings, opts ...Option) *Client {
	c := &Client{
		settings:  s,
		timeout:   DefaultTimeout,
		userAgent: "openrsvp-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Open prepares the underlying HTTP client. It fails with ErrClientState if
// the client was already opened or closed.
func (c *Client) Open(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != stateUnopened {
		return errors.Wrap(ErrClientState, "open")
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: c.timeout}).DialContext
	transport.TLSHandshakeTimeout = c.timeout

	rc := resty.New().
		SetTransport(transport).
		SetBaseURL(c.settings.BaseURL()).
		SetTimeout(c.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", c.userAgent).
		SetLogger(restyLogger{c.logger}).
		SetDisableWarn(true)

	attrs := []any{"settings", c.settings}
	if token, ok := c.settings.Token(); ok {
		rc.SetAuthToken(token)
		attrs = append(attrs, "authorization", logging.MaskBearer("Bearer "+token))
	}

	c.http = rc
	c.state = stateOpen
	c.logger.DebugContext(ctx, "api client opened", attrs...)
	return nil
}

// Close releases idle connections. It is safe to call more than once and on
// a client that was never opened.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == stateOpen && c.http != nil {
		c.http.GetClient().CloseIdleConnections()
		c.http = nil
	}
	c.state = stateClosed
	return nil
}

// Session opens a client for s, runs fn, and closes the client on every path.
func Session(ctx context.Context, s settings.Settings, fn func(*Client) error, opts ...Option) (err error) {
	c := New(s, opts...)
	if err := c.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(c)
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Patch issues a PATCH with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	c.mu.Lock()
	rc, st := c.http, c.state
	c.mu.Unlock()

	if st != stateOpen || rc == nil {
		return nil, errors.Wrapf(ErrClientState, "%s %s", method, c.redact(path))
	}

	if ctx == nil {
		ctx = context.Background()
	}
	log := c.logger.With("method", method, "path", c.redact(path))

	requestID := uuid.NewString()
	req := rc.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, requestID)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil || resp == nil || resp.RawResponse == nil {
		if err == nil {
			err = errors.New("no response received")
		}
		// *url.Error embeds the request URL, which can carry the token.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		log.Debug("request failed", "request_id", requestID, "error", err)
		return nil, &NetworkError{BaseURL: c.settings.BaseURL(), Err: err}
	}

	status := resp.StatusCode()
	log.Debug("request completed",
		"status", status,
		"duration", time.Since(start).Round(time.Millisecond),
		"request_id", requestID,
	)

	return c.classify(status, resp.Body())
}

// redact masks any path segment equal to the token, as in the admin
// listing route.
func (c *Client) redact(path string) string {
	token, ok := c.settings.Token()
	if !ok {
		return path
	}
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg == token || seg == url.PathEscape(token) {
			segments[i] = logging.MaskValue(token)
		}
	}
	return strings.Join(segments, "/")
}

// classify maps a response to a payload or one of the typed errors.
func (c *Client) classify(status int, body []byte) (any, error) {
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return nil, &AuthError{Status: status, Message: AuthGuidance(c.configPath)}
	}

	payload := decodePayload(body)

	if status >= http.StatusBadRequest {
		return nil, &APIError{
			Status:  status,
			Message: errorMessage(status, payload),
			Payload: payload,
		}
	}

	return payload, nil
}

// restyLogger routes resty's internal messages into slog at debug level.
type restyLogger struct {
	l *slog.Logger
}

func (r restyLogger) Errorf(format string, v ...any) { r.l.Debug("resty: "+fmt.Sprintf(format, v...)) }
func (r restyLogger) Warnf(format string, v ...any)  { r.l.Debug("resty: "+fmt.Sprintf(format, v...)) }
func (r restyLogger) Debugf(format string, v ...any) { r.l.Debug("resty: "+fmt.Sprintf(format, v...)) }
