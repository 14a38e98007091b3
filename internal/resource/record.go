// Package resource understands the shapes of OpenRSVP API payloads.
//
// Responses arrive as untyped JSON (see package api). The helpers here probe
// them defensively: a list may be bare or wrapped under one of several keys,
// a channel may be a string or an object, and any field may be missing.
// Nothing in this package performs I/O.
//
// The package also owns the request bodies sent by the CLI and the input
// validation that runs before any request is issued.
package resource

import (
	"encoding/json"
	"strconv"
)

// Record is a single JSON object from a payload.
type Record map[string]any

// AsRecord reports whether v is a JSON object and returns it.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	}
	return nil, false
}

// Records keeps the objects in a JSON array and drops everything else.
func Records(v any) []Record {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]Record, 0, len(items))
	for _, item := range items {
		if r, ok := AsRecord(item); ok {
			out = append(out, r)
		}
	}
	return out
}

// String returns the field as display text, or "" when it is missing or null.
func (r Record) String(key string) string {
	return Stringify(r[key])
}

// First returns the first field among keys whose value is truthy, as text.
func (r Record) First(keys ...string) string {
	for _, k := range keys {
		if Truthy(r[k]) {
			return Stringify(r[k])
		}
	}
	return ""
}

// Flag reports whether any of keys holds a truthy value.
func (r Record) Flag(keys ...string) bool {
	for _, k := range keys {
		if Truthy(r[k]) {
			return true
		}
	}
	return false
}

// Nested returns the object stored under key, or nil.
func (r Record) Nested(key string) Record {
	n, _ := AsRecord(r[key])
	return n
}

// Stringify renders a decoded JSON value for display.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Truthy follows JSON intuition: false, null, zero, "" and empty
// containers are false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case json.Number:
		f, err := x.Float64()
		return err != nil || f != 0
	case float64:
		return x != 0
	case int:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	case Record:
		return len(x) > 0
	}
	return true
}

// unwrapList finds the array in payload: the payload itself, or the first
// of keys holding an array when the payload is an object.
func unwrapList(payload any, keys ...string) ([]Record, bool) {
	if items, ok := payload.([]any); ok {
		return Records(items), true
	}
	if m, ok := AsRecord(payload); ok {
		for _, k := range keys {
			if items, ok := m[k].([]any); ok {
				return Records(items), true
			}
		}
	}
	return nil, false
}

// listOrSingle is unwrapList that treats a lone object as a one-item list.
func listOrSingle(payload any, keys ...string) []Record {
	if items, ok := unwrapList(payload, keys...); ok {
		return items
	}
	if m, ok := AsRecord(payload); ok {
		return []Record{m}
	}
	return nil
}
