package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("test message", "key", "value", "token", "abcdef123")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", parsed["msg"], "test message")
	}
	if parsed["key"] != "value" {
		t.Errorf("key = %v, want %q", parsed["key"], "value")
	}
	if parsed["token"] != "****f123" {
		t.Errorf("token = %v, want masked value", parsed["token"])
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("unknown"),
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err == nil {
		t.Error("unknown format should default to text, not JSON")
	}
	if !strings.Contains(buf.String(), "key=value") {
		t.Errorf("output missing key=value attribute: %s", buf.String())
	}
}

func TestNewDiscard_ProducesNoOutput(t *testing.T) {
	logger := NewDiscard()

	// These should all succeed silently
	logger.Debug("debug message", "key", "value")
	logger.Error("error message", "err", "something went wrong")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		v    int
		want slog.Level
	}{
		{v: -1, want: slog.LevelWarn},
		{v: 0, want: slog.LevelWarn},
		{v: 1, want: slog.LevelInfo},
		{v: 2, want: slog.LevelDebug},
		{v: 5, want: slog.LevelDebug},
	}
	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.v); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext without logger should return slog.Default()")
	}

	logger := ForTest(t)
	ctx := NewContext(context.Background(), logger)
	if FromContext(ctx) != logger {
		t.Error("FromContext should return the stored logger")
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  slog.Level
		logLevel     slog.Level
		shouldAppear bool
	}{
		{name: "info logged at info level", configLevel: slog.LevelInfo, logLevel: slog.LevelInfo, shouldAppear: true},
		{name: "debug not logged at info level", configLevel: slog.LevelInfo, logLevel: slog.LevelDebug, shouldAppear: false},
		{name: "info not logged at warn level", configLevel: slog.LevelWarn, logLevel: slog.LevelInfo, shouldAppear: false},
		{name: "error logged at warn level", configLevel: slog.LevelWarn, logLevel: slog.LevelError, shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.configLevel, Format: FormatText, Output: &buf})

			logger.Log(t.Context(), tt.logLevel, "probe")

			if got := strings.Contains(buf.String(), "probe"); got != tt.shouldAppear {
				t.Errorf("message appeared = %v, want %v", got, tt.shouldAppear)
			}
		})
	}
}

func TestMaskHelpers(t *testing.T) {
	if got := MaskValue("abc"); got != "********" {
		t.Errorf("MaskValue(short) = %q", got)
	}
	if got := MaskValue("abcdefgh"); got != "****efgh" {
		t.Errorf("MaskValue(long) = %q", got)
	}
	if got := MaskBearer("Bearer abcdefgh"); got != "Bearer ****efgh" {
		t.Errorf("MaskBearer() = %q", got)
	}
	for _, key := range []string{"token", "OPENRSVP_TOKEN", "Authorization", "admin_token"} {
		if !ShouldMask(key) {
			t.Errorf("ShouldMask(%q) = false, want true", key)
		}
	}
	if ShouldMask("base_url") {
		t.Error("ShouldMask(base_url) = true, want false")
	}
}

func TestRedactAttr_AuthorizationKeepsScheme(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		want string
	}{
		{slog.String("authorization", "Bearer abcdefgh"), "Bearer ****efgh"},
		{slog.String("Authorization", "opaque-credential"), "****tial"},
		{slog.String("token", "abcdefgh"), "****efgh"},
		{slog.String("path", "/api/v1/events"), "/api/v1/events"},
	}
	for _, tt := range tests {
		if got := RedactAttr(nil, tt.attr).Value.String(); got != tt.want {
			t.Errorf("RedactAttr(%s=%q) = %q, want %q", tt.attr.Key, tt.attr.Value.String(), got, tt.want)
		}
	}
}
