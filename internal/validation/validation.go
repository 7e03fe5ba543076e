// Package validation checks caller-supplied specifications (schemas,
// key lists) for structural consistency before the document package
// interprets them.
package validation

import (
	"fmt"

	"github.com/arthur-debert/ddm/types"
)

// Schema checks a schema for consistency: every key non-empty, every value
// either a valid types.Kind or a nested Schema. Nesting depth is capped to
// catch accidentally self-referential schema maps.
func Schema(s types.Schema) error {
	return schemaAtDepth(s, 0)
}

// maxSchemaDepth bounds recursion when a schema map refers to itself.
const maxSchemaDepth = 100

func schemaAtDepth(s types.Schema, depth int) error {
	if s == nil {
		return fmt.Errorf("schema must not be nil")
	}
	if depth > maxSchemaDepth {
		return fmt.Errorf("schema nesting exceeds %d levels", maxSchemaDepth)
	}
	for key, expected := range s {
		if key == "" {
			return fmt.Errorf("schema key cannot be empty")
		}
		switch exp := expected.(type) {
		case types.Kind:
			if !exp.Valid() {
				return fmt.Errorf("schema key %q: invalid kind %d", key, exp)
			}
		case types.Schema:
			if err := schemaAtDepth(exp, depth+1); err != nil {
				return err
			}
		case map[string]any:
			if err := schemaAtDepth(types.Schema(exp), depth+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("schema key %q: expected a kind or nested schema, got %T", key, expected)
		}
	}
	return nil
}
