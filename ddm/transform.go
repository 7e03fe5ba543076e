package ddm

import "fmt"

// TransformFunc maps one scalar leaf value to another.
type TransformFunc func(any) any

// Reducer folds a sequence value into a single value.
type Reducer func([]any) any

// Transform returns a new Document with fn applied to every scalar leaf,
// recursing into nested Documents and sequences. Keys, nesting and sequence
// positions are preserved. Values fn returns are normalized per construction
// rules, so fn may return maps or slices.
func (d *Document) Transform(fn TransformFunc) *Document {
	out := New()
	for _, k := range d.keys {
		out.setWrapped(k, transformValue(d.values[k], fn))
	}
	return out
}

func transformValue(v any, fn TransformFunc) any {
	switch val := v.(type) {
	case *Document:
		return val.Transform(fn)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = transformValue(item, fn)
		}
		return out
	}
	return wrapValue(fn(v))
}

// GroupBy returns a mapping from fn's group label to the entries assigned
// to it, preserving original relative order within each group.
func (d *Document) GroupBy(fn func(key string, value any) string) map[string][]Entry {
	out := make(map[string][]Entry)
	for _, k := range d.keys {
		label := fn(k, d.values[k])
		out[label] = append(out[label], Entry{Key: k, Value: d.values[k]})
	}
	return out
}

// Aggregate applies each spec key's reducer to that key's sequence value
// and returns the reduced values keyed by spec key. It fails with
// ErrKeyNotFound when a spec key is absent from the document, with
// ErrTypeMismatch when the key's value is not a sequence, and with
// ErrInvalidInput when a reducer is nil. No partial result is returned on
// failure.
func (d *Document) Aggregate(spec map[string]Reducer) (map[string]any, error) {
	for k, reduce := range spec {
		if reduce == nil {
			return nil, fmt.Errorf("reducer for %q is nil: %w", k, ErrInvalidInput)
		}
		v, ok := d.values[k]
		if !ok {
			return nil, fmt.Errorf("aggregate key %q: %w", k, ErrKeyNotFound)
		}
		if _, ok := v.([]any); !ok {
			return nil, fmt.Errorf("aggregate key %q holds %s, want sequence: %w", k, KindOf(v), ErrTypeMismatch)
		}
	}
	out := make(map[string]any, len(spec))
	for k, reduce := range spec {
		seq := d.values[k].([]any)
		// Hand the reducer a copy so it cannot mutate the document.
		items := make([]any, len(seq))
		for i, item := range seq {
			items[i] = cloneValue(item)
		}
		out[k] = reduce(items)
	}
	return out, nil
}

// Flatten returns a single-level Document whose keys are the dotted (or
// otherwise separated) paths of every scalar and sequence leaf, in
// depth-first insertion order. Sequences are opaque leaves and are not
// expanded into indexed keys. An empty nested Document contributes nothing.
func (d *Document) Flatten(separator string) *Document {
	out := New()
	d.flattenInto(out, "", separator)
	return out
}

func (d *Document) flattenInto(out *Document, prefix, separator string) {
	for _, k := range d.keys {
		name := k
		if prefix != "" {
			name = prefix + separator + k
		}
		if nested, ok := d.values[k].(*Document); ok {
			nested.flattenInto(out, name, separator)
			continue
		}
		out.setWrapped(name, cloneValue(d.values[k]))
	}
}
