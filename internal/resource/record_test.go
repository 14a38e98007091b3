package resource

import (
	"encoding/json"
	"testing"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "hello", "hello"},
		{"number", json.Number("3"), "3"},
		{"float", 2.5, "2.5"},
		{"int", 7, "7"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"list", []any{"a", json.Number("1")}, `["a",1]`},
		{"object", map[string]any{"k": "v"}, `{"k":"v"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"no", true},
		{json.Number("0"), false},
		{json.Number("0.0"), false},
		{json.Number("2"), true},
		{[]any{}, false},
		{[]any{1}, true},
		{map[string]any{}, false},
		{map[string]any{"a": 1}, true},
	}
	for _, tt := range tests {
		if got := Truthy(tt.in); got != tt.want {
			t.Errorf("Truthy(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRecords_SkipsNonObjects(t *testing.T) {
	got := Records([]any{map[string]any{"id": "a"}, "junk", nil, map[string]any{"id": "b"}})
	if len(got) != 2 {
		t.Fatalf("Records() returned %d items, want 2", len(got))
	}
	if got[0].String("id") != "a" || got[1].String("id") != "b" {
		t.Errorf("Records() = %v", got)
	}

	if Records(map[string]any{"id": "a"}) != nil {
		t.Error("Records() of an object should be nil")
	}
}

func TestRecord_First(t *testing.T) {
	r := Record{"start_time": "", "start": "2024-01-01", "other": nil}
	if got := r.First("start_time", "start"); got != "2024-01-01" {
		t.Errorf("First() = %q, want fallback value", got)
	}
	if got := r.First("missing", "other"); got != "" {
		t.Errorf("First() = %q, want empty", got)
	}
}

func TestRecord_NestedOnNil(t *testing.T) {
	var r Record
	if got := r.Nested("links").String("public"); got != "" {
		t.Errorf("nested lookup on nil record = %q, want empty", got)
	}
}
