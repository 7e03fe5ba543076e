// Package testutil provides a shared test fixture for the ddm packages: a
// canned document universe with known nesting, sequences and mixed value
// kinds, plus a completion template with partial records. Tests load it
// through LoadUniverse so every test starts from the same well-known data
// without rebuilding it by hand.
package testutil

import (
	"testing"

	"github.com/arthur-debert/ddm/ddm"
)

// UniverseData provides typed access to the test fixture documents. Every
// field is freshly built per LoadUniverse call, so tests may mutate freely.
type UniverseData struct {
	// Person is the primary fixture: nested address document, tag
	// sequence, score sequence and mixed scalar kinds.
	Person *ddm.Document

	// Flat is a small one-level document for merge and filter tests.
	Flat *ddm.Document

	// Template is a completion template with scalar and container
	// defaults (the container defaults exercise non-aliasing).
	Template *ddm.Document

	// Partials are records missing some template keys and carrying some
	// extra ones, in increasing order of completeness.
	Partials []*ddm.Document
}

// LoadUniverse builds the fixture. It fails the test on any construction
// error rather than returning one.
func LoadUniverse(t *testing.T) *UniverseData {
	t.Helper()

	person, err := ddm.NewBuilder().
		Set("name", "Alice").
		Set("age", 30).
		Set("active", true).
		Nest("address", func(b *ddm.Builder) {
			b.Set("city", "NY").
				Set("zip", "10001").
				Nest("geo", func(g *ddm.Builder) {
					g.Set("lat", 40.7).Set("lon", -74.0)
				})
		}).
		AddList("tags", []any{"admin", "beta"}).
		AddList("scores", []any{10, 20, 30}).
		Set("note", nil).
		Build()
	if err != nil {
		t.Fatalf("failed to build person fixture: %v", err)
	}

	flat, err := ddm.NewBuilder().
		Set("a", 1).
		Set("b", 2).
		Set("c", "three").
		Build()
	if err != nil {
		t.Fatalf("failed to build flat fixture: %v", err)
	}

	template, err := ddm.NewBuilder().
		Set("user_id", nil).
		Set("username", "guest").
		Set("verified", false).
		AddList("roles", []any{"viewer"}).
		Nest("settings", func(b *ddm.Builder) {
			b.Set("theme", "light").Set("pageSize", 25)
		}).
		Build()
	if err != nil {
		t.Fatalf("failed to build template fixture: %v", err)
	}

	empty, err := ddm.NewBuilder().Build()
	if err != nil {
		t.Fatalf("failed to build empty record: %v", err)
	}
	sparse, err := ddm.NewBuilder().
		Set("user_id", 123).
		Set("username", "alice").
		Build()
	if err != nil {
		t.Fatalf("failed to build sparse record: %v", err)
	}
	noisy, err := ddm.NewBuilder().
		Set("user_id", 456).
		Set("username", "bob").
		Set("verified", true).
		Set("legacy_flag", "drop-me").
		Set("session", "drop-me-too").
		Build()
	if err != nil {
		t.Fatalf("failed to build noisy record: %v", err)
	}

	return &UniverseData{
		Person:   person,
		Flat:     flat,
		Template: template,
		Partials: []*ddm.Document{empty, sparse, noisy},
	}
}
