package logging

import (
	"log/slog"
	"strings"
)

// secretKeyPatterns contains substrings that indicate a key likely holds a credential.
// Keys are matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"AUTHORIZATION",
	"SECRET",
	"PASSWORD",
	"API_KEY",
	"CREDENTIAL",
}

// ShouldMask returns true if the key name suggests it contains sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskBearer masks the credential part of an Authorization header value.
func MaskBearer(header string) string {
	scheme, cred, ok := strings.Cut(header, " ")
	if !ok {
		return MaskValue(header)
	}
	return scheme + " " + MaskValue(cred)
}

// maskFor masks value according to key. Authorization values keep their
// scheme.
func maskFor(key, value string) string {
	if strings.Contains(strings.ToUpper(key), "AUTHORIZATION") {
		return MaskBearer(value)
	}
	return MaskValue(value)
}

// RedactAttr is a slog ReplaceAttr hook that masks sensitive string values.
func RedactAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString && a.Value.String() != "" && ShouldMask(a.Key) {
		return slog.String(a.Key, maskFor(a.Key, a.Value.String()))
	}
	return a
}
