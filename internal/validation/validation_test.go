package validation_test

import (
	"testing"

	"github.com/arthur-debert/ddm/internal/validation"
	"github.com/arthur-debert/ddm/types"
)

func TestSchema(t *testing.T) {
	t.Run("ValidFlatSchema", func(t *testing.T) {
		err := validation.Schema(types.Schema{
			"name": types.KindString,
			"age":  types.KindNumber,
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("ValidNestedSchema", func(t *testing.T) {
		err := validation.Schema(types.Schema{
			"address": types.Schema{"city": types.KindString},
			"meta":    map[string]any{"version": types.KindNumber},
		})
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("NilSchemaFails", func(t *testing.T) {
		if err := validation.Schema(nil); err == nil {
			t.Error("expected an error for a nil schema")
		}
	})

	t.Run("EmptyKeyFails", func(t *testing.T) {
		if err := validation.Schema(types.Schema{"": types.KindString}); err == nil {
			t.Error("expected an error for an empty key")
		}
	})

	t.Run("InvalidKindFails", func(t *testing.T) {
		if err := validation.Schema(types.Schema{"x": types.Kind(99)}); err == nil {
			t.Error("expected an error for an out-of-range kind")
		}
	})

	t.Run("NonKindValueFails", func(t *testing.T) {
		if err := validation.Schema(types.Schema{"x": "string"}); err == nil {
			t.Error("expected an error for a raw string kind name")
		}
	})

	t.Run("SelfReferentialSchemaIsBounded", func(t *testing.T) {
		s := types.Schema{}
		s["loop"] = s
		if err := validation.Schema(s); err == nil {
			t.Error("expected the depth cap to reject a self-referential schema")
		}
	})
}
