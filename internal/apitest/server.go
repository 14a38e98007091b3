// Package apitest provides an in-memory OpenRSVP API for tests.
//
// The server records every request it receives and answers from canned
// responses registered per route:
//
//	srv := apitest.New(t)
//	srv.Respond(http.MethodGet, "/api/v1/events", http.StatusOK, `[{"id":"e1"}]`)
//	// ... point a client at srv.URL ...
//	got := srv.Requests()
//
// Unregistered routes answer 404 with {"detail":"not found"}.
package apitest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Request is one recorded call.
type Request struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// JSON decodes the recorded body.
func (r Request) JSON(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("request body is not a JSON object: %v (%q)", err, r.Body)
	}
	return m
}

type response struct {
	status int
	body   string
}

// Server is a recording fake of the OpenRSVP API.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	requests  []Request
	responses map[string]response
}

// Routes served by the fake. Path parameters accept any value.
var routes = []struct {
	method  string
	pattern string
}{
	{http.MethodGet, "/api/v1/events"},
	{http.MethodPost, "/api/v1/events"},
	{http.MethodGet, "/api/v1/events/{id}"},
	{http.MethodDelete, "/api/v1/events/{id}"},
	{http.MethodGet, "/api/v1/events/{id}/rsvps"},
	{http.MethodPost, "/api/v1/events/{id}/rsvps"},
	{http.MethodPost, "/api/v1/rsvps"},
	{http.MethodPost, "/api/v1/rsvps/{id}/approve"},
	{http.MethodPost, "/api/v1/rsvps/{id}/reject"},
	{http.MethodDelete, "/api/v1/rsvps/{id}"},
	{http.MethodPatch, "/api/v1/rsvps/{id}"},
	{http.MethodGet, "/api/v1/channels"},
	{http.MethodPost, "/api/v1/channels"},
	{http.MethodGet, "/api/v1/channels/{name}"},
	{http.MethodGet, "/admin/{token}/events"},
}

// New starts a fake server that is closed when the test ends.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{responses: make(map[string]response)}

	r := chi.NewRouter()
	r.Use(s.record)
	for _, rt := range routes {
		r.Method(rt.method, rt.pattern, http.HandlerFunc(s.serve))
	}
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeBody(w, http.StatusNotFound, `{"detail":"not found"}`)
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Respond registers the answer for an exact method and path.
func (s *Server) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[method+" "+path] = response{status: status, body: body}
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Last returns the most recent request. It fails the test if there is none.
func (s *Server) Last(t *testing.T) Request {
	t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		t.Fatal("no requests recorded")
	}
	return reqs[len(reqs)-1]
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp, ok := s.responses[r.Method+" "+r.URL.EscapedPath()]
	s.mu.Unlock()

	if !ok {
		writeBody(w, http.StatusNotFound, `{"detail":"not found"}`)
		return
	}
	writeBody(w, resp.status, resp.body)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	if body != "" && json.Valid([]byte(body)) {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	if body != "" && status != http.StatusNoContent {
		_, _ = io.WriteString(w, body)
	}
}
