package llm

import (
	"errors"
	"strings"
	"testing"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"whitespace", "  \n {\"a\":1} \n", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripFences(tt.in); got != tt.want {
				t.Errorf("StripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseJSON(t *testing.T) {
	type payload struct {
		Scenes []map[string]any `json:"scenes"`
	}

	tests := []struct {
		name      string
		raw       string
		wantErr   bool
		wantCount int
	}{
		{"plain object", `{"scenes":[{"type":"intro"}]}`, false, 1},
		{"fenced", "```json\n{\"scenes\":[{\"type\":\"intro\"},{\"type\":\"chart\"}]}\n```", false, 2},
		{"prose around object", "Here you go:\n{\"scenes\":[{\"type\":\"intro\"}]}\nEnjoy!", false, 1},
		{"empty", "   ", true, 0},
		{"not json", "I cannot help with that.", true, 0},
		{"truncated", `{"scenes":[{"type":"intro"}`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			err := ParseJSON(tt.raw, &p)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidJSON) {
					t.Fatalf("expected ErrInvalidJSON, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p.Scenes) != tt.wantCount {
				t.Errorf("expected %d scenes, got %d", tt.wantCount, len(p.Scenes))
			}
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	type item struct {
		Name string `json:"name" jsonschema_description:"item name"`
	}

	schema := GenerateSchema[item]()
	if schema == "{}" || schema == "" {
		t.Fatal("expected a non-empty schema")
	}
	for _, want := range []string{`"name"`, `"item name"`} {
		if !strings.Contains(schema, want) {
			t.Errorf("schema missing %s: %s", want, schema)
		}
	}
}
