package ddm

import (
	"reflect"

	"github.com/arthur-debert/ddm/types"
)

// Kind is an alias for types.Kind
type Kind = types.Kind

// Schema is an alias for types.Schema
type Schema = types.Schema

// Re-exported kind constants so callers rarely need the types package.
const (
	KindNull     = types.KindNull
	KindBool     = types.KindBool
	KindNumber   = types.KindNumber
	KindString   = types.KindString
	KindSequence = types.KindSequence
	KindDocument = types.KindDocument
)

// KindOf classifies a value normalized into the document value model.
// Values reach this shape through Document construction and setters, which
// wrap raw maps into Documents and raw slices into []any.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case *Document:
		return KindDocument
	case []any:
		return KindSequence
	}
	if _, ok := toFloat(v); ok {
		return KindNumber
	}
	// Unnormalized slices still classify as sequences so that KindOf is
	// total over anything a caller hands to FindByKind. Everything else
	// was stringified at construction, so string is the honest fallback.
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		return KindSequence
	}
	return KindString
}

// toFloat reports a value as a float64 when it is any numeric type.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
