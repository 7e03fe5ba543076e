package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/arthur-debert/ddm/ddm"
)

func TestFormatForPath(t *testing.T) {
	cases := map[string]string{
		"doc.json": "json",
		"doc.yaml": "yaml",
		"doc.YML":  "yaml",
		"doc.txt":  "json",
		"doc":      "json",
	}
	for path, want := range cases {
		if got := formatForPath(path); got != want {
			t.Errorf("formatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParseValueArg(t *testing.T) {
	if got := parseValueArg("42"); got != 42.0 {
		t.Errorf("parseValueArg(42) = %v (%T), want 42", got, got)
	}
	if got := parseValueArg("true"); got != true {
		t.Errorf("parseValueArg(true) = %v", got)
	}
	if got := parseValueArg("null"); got != nil {
		t.Errorf("parseValueArg(null) = %v", got)
	}
	if got := parseValueArg(`"quoted"`); got != "quoted" {
		t.Errorf("parseValueArg(quoted) = %v", got)
	}
	if got := parseValueArg("plain text"); got != "plain text" {
		t.Errorf("parseValueArg(plain text) = %v", got)
	}
	if _, ok := parseValueArg(`{"a": 1}`).(map[string]any); !ok {
		t.Error("expected JSON object argument to parse as a map")
	}
}

func TestLoadAndSaveDocument(t *testing.T) {
	dir := t.TempDir()

	t.Run("JSONRoundTrip", func(t *testing.T) {
		path := filepath.Join(dir, "doc.json")
		doc := ddm.FromPairs([]ddm.Entry{
			{Key: "z", Value: 1},
			{Key: "a", Value: map[string]any{"nested": true}},
		})
		if err := saveDocument(path, doc); err != nil {
			t.Fatal(err)
		}
		back, err := loadDocument(path)
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(doc) {
			t.Errorf("round-trip mismatch:\n%s\nvs\n%s", back, doc)
		}
	})

	t.Run("YAMLRoundTrip", func(t *testing.T) {
		path := filepath.Join(dir, "doc.yaml")
		doc := ddm.FromPairs([]ddm.Entry{
			{Key: "b", Value: "text"},
			{Key: "a", Value: []any{1, 2}},
		})
		if err := saveDocument(path, doc); err != nil {
			t.Fatal(err)
		}
		back, err := loadDocument(path)
		if err != nil {
			t.Fatal(err)
		}
		if !back.Equal(doc) {
			t.Errorf("round-trip mismatch:\n%s\nvs\n%s", back, doc)
		}
	})

	t.Run("FormatFlagOverridesExtension", func(t *testing.T) {
		viper.Set("format", "yaml")
		t.Cleanup(func() { viper.Set("format", "") })

		path := filepath.Join(dir, "doc.txt")
		if err := os.WriteFile(path, []byte("name: Alice\nage: 30\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		doc, err := loadDocument(path)
		if err != nil {
			t.Fatalf("forced-yaml load failed: %v", err)
		}
		if got, _ := doc.Get("name"); got != "Alice" {
			t.Errorf("name = %v, want Alice", got)
		}

		if err := saveDocument(path, doc); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			t.Errorf("forced-yaml save produced JSON:\n%s", data)
		}
	})

	t.Run("MissingFileFails", func(t *testing.T) {
		if _, err := loadDocument(filepath.Join(dir, "absent.json")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("NoTempFileLeftBehind", func(t *testing.T) {
		path := filepath.Join(dir, "clean.json")
		if err := saveDocument(path, ddm.New()); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if len(e.Name()) > 4 && e.Name()[:5] == ".ddm-" {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})
}
