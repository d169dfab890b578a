package weather

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func labels(t *testing.T, entries []Entry) []string {
	t.Helper()
	out := make([]string, len(entries))
	for i, e := range entries {
		var v struct {
			Label string `json:"label"`
		}
		if err := json.Unmarshal(e, &v); err != nil {
			t.Fatal(err)
		}
		out[i] = v.Label
	}
	return out
}

func TestLoadSimulated(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "october.json", `[{"label":"oct","date":"2024-10-01"}]`)
	writeFile(t, dir, "september.json", `[
		{"label":"sep-late","timestamp":1727049600},
		{"label":"sep-early","date":"2024-09-01T00:00:00Z"}
	]`)
	writeFile(t, dir, "readme.txt", "ignored")

	entries, err := LoadSimulated(dir)
	if err != nil {
		t.Fatalf("LoadSimulated failed: %v", err)
	}

	got := labels(t, entries)
	want := []string{"sep-early", "sep-late", "oct"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLoadSimulated_NoFiles(t *testing.T) {
	tests := []struct {
		name string
		dir  func(t *testing.T) string
	}{
		{"empty dir", func(t *testing.T) string { return t.TempDir() }},
		{"missing dir", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope") }},
		{"only other files", func(t *testing.T) string {
			dir := t.TempDir()
			writeFile(t, dir, "a.csv", "x")
			return dir
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSimulated(tt.dir(t))
			if !errors.Is(err, ErrNoDataFiles) {
				t.Errorf("expected ErrNoDataFiles, got %v", err)
			}
		})
	}
}

func TestLoadSimulated_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{"not":"an array"}`)

	_, err := LoadSimulated(dir)
	if err == nil || errors.Is(err, ErrNoDataFiles) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestSortEntries_UndatedLast(t *testing.T) {
	entries := []Entry{
		Entry(`{"label":"undated-1"}`),
		Entry(`{"label":"b","date":"2024-02-01"}`),
		Entry(`{"label":"undated-2","date":"not a date"}`),
		Entry(`{"label":"a","date":"2024-01-01"}`),
	}
	SortEntries(entries)

	got := labels(t, entries)
	want := []string{"a", "b", "undated-1", "undated-2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}
