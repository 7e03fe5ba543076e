package ddm

import (
	"fmt"

	"github.com/arthur-debert/ddm/internal/validation"
	"github.com/arthur-debert/ddm/types"
)

// ValidateSchema checks that every schema key exists in the document with a
// value of the expected kind, recursing into nested schemas. Extra document
// keys not named by the schema are permitted. It fails with ErrInvalidInput
// when the schema itself is malformed, ErrKeyNotFound for a missing schema
// key, and ErrTypeMismatch for a kind mismatch; nil means the document
// conforms.
func (d *Document) ValidateSchema(schema Schema) error {
	if err := validation.Schema(schema); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidInput)
	}
	return d.validateAgainst(schema, "")
}

// MatchesSchema is the boolean form of ValidateSchema. A malformed schema
// reports false rather than conformance.
func (d *Document) MatchesSchema(schema Schema) bool {
	return d.ValidateSchema(schema) == nil
}

func (d *Document) validateAgainst(schema Schema, prefix string) error {
	for key, expected := range schema {
		path := joinPath(prefix, key)
		v, ok := d.values[key]
		if !ok {
			return fmt.Errorf("schema key %q: %w", path, ErrKeyNotFound)
		}
		switch exp := expected.(type) {
		case types.Kind:
			if got := KindOf(v); got != exp {
				return fmt.Errorf("key %q holds %s, want %s: %w", path, got, exp, ErrTypeMismatch)
			}
		default:
			// validation.Schema already guaranteed this is a nested schema.
			nested, ok := v.(*Document)
			if !ok {
				return fmt.Errorf("key %q holds %s, want document: %w", path, KindOf(v), ErrTypeMismatch)
			}
			var ns Schema
			switch s := expected.(type) {
			case types.Schema:
				ns = s
			case map[string]any:
				ns = Schema(s)
			}
			if err := nested.validateAgainst(ns, path); err != nil {
				return err
			}
		}
	}
	return nil
}
