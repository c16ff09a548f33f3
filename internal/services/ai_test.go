package services

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		field string
		want  []string
	}{
		{
			name:  "five topics in model order",
			raw:   `{"topics":["A","B","C","D","E"]}`,
			field: "topics",
			want:  []string{"A", "B", "C", "D", "E"},
		},
		{
			name:  "three titles",
			raw:   `{"titles":["One","Two","Three"]}`,
			field: "titles",
			want:  []string{"One", "Two", "Three"},
		},
		{
			name:  "empty response",
			raw:   "",
			field: "titles",
			want:  []string{},
		},
		{
			name:  "empty object",
			raw:   `{}`,
			field: "topics",
			want:  []string{},
		},
		{
			name:  "wrong field name",
			raw:   `{"suggestions":["A"]}`,
			field: "titles",
			want:  []string{},
		},
		{
			name:  "invalid json",
			raw:   `not json at all`,
			field: "titles",
			want:  []string{},
		},
		{
			name:  "fenced json block",
			raw:   "```json\n{\"titles\":[\"Fenced\"]}\n```",
			field: "titles",
			want:  []string{"Fenced"},
		},
		{
			name:  "bare fence",
			raw:   "```\n{\"topics\":[\"Bare\"]}\n```",
			field: "topics",
			want:  []string{"Bare"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseSuggestions(tt.raw, tt.field)
			if got == nil {
				t.Fatal("parseSuggestions() must never return nil")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSuggestions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"fence with trailing newline", "```json\n{\"a\":1}\n```\n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFence(tt.in); got != tt.want {
				t.Errorf("stripCodeFence(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJSONInstruction(t *testing.T) {
	got := jsonInstruction("Suggest some topics.", "topics", 5)

	if !strings.Contains(got, "Suggest some topics.") {
		t.Error("instruction should carry the original prompt")
	}
	if !strings.Contains(got, `"topics"`) {
		t.Error("instruction should name the expected JSON field")
	}
	if !strings.Contains(got, "5") {
		t.Error("instruction should state how many items to return")
	}
}
