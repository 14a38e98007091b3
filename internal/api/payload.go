package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// decodePayload parses body as JSON. Bodies that are not JSON come back as
// their raw text; an empty body is nil.
func decodePayload(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return string(body)
	}
	// Anything after the first value, even a stray closing bracket, means
	// the body is not a single JSON document.
	if _, err := dec.Token(); err != io.EOF {
		return string(body)
	}
	return v
}

// errorMessage derives a human message from an error payload.
func errorMessage(status int, payload any) string {
	switch p := payload.(type) {
	case nil:
		return http.StatusText(status)
	case string:
		if strings.TrimSpace(p) == "" {
			return http.StatusText(status)
		}
		return p
	case map[string]any:
		for _, key := range []string{"detail", "message", "error"} {
			if s, ok := p[key].(string); ok && s != "" {
				return s
			}
		}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return http.StatusText(status)
	}
	return string(b)
}
