// Package ddm provides a dynamic document model: an ordered, string-keyed
// mapping of heterogeneous values (scalars, sequences, nested documents) with
// path-based access, cloning, merging, filtering, transformation, diffing,
// schema validation and multi-format export.
//
// Documents preserve key insertion order, which is observable through
// iteration and every export format. Nested mapping values are always held as
// *Document instances, never as raw maps; construction and every mutating
// operation re-establish that invariant.
//
// Document is not internally synchronized. Concurrent mutation of one
// instance must be guarded by the caller; concurrent reads of an instance no
// goroutine mutates are safe. Clone gives each goroutine an independent copy.
package ddm

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Document is an ordered mapping from string keys to heterogeneous values.
// A value is one of: nil, bool, a numeric type, string, []any, or *Document.
// The zero value is not usable; construct with New, FromMap or FromPairs.
type Document struct {
	keys   []string
	values map[string]any
}

// Entry is a single (key, value) pair of a Document, in insertion order.
type Entry struct {
	Key   string
	Value any
}

// New returns an empty Document.
func New() *Document {
	return &Document{values: make(map[string]any)}
}

// FromMap builds a Document from a plain map, recursively wrapping nested
// maps into Documents and copying nested slices by value. Go maps carry no
// order, so keys are inserted in lexical order to keep construction
// deterministic; use FromPairs, FromJSON or a Builder when a specific order
// is required.
func FromMap(m map[string]any) *Document {
	d := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.setWrapped(k, wrapValue(m[k]))
	}
	return d
}

// FromPairs builds a Document from entries in the given order.
// Later duplicate keys overwrite earlier ones without changing their position.
func FromPairs(pairs []Entry) *Document {
	d := New()
	for _, p := range pairs {
		d.setWrapped(p.Key, wrapValue(p.Value))
	}
	return d
}

// Len returns the number of keys in the document.
func (d *Document) Len() int {
	return len(d.keys)
}

// Keys returns the document's keys in insertion order.
// The returned slice is a copy and safe to modify.
func (d *Document) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Entries returns all (key, value) pairs in insertion order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Entry{Key: k, Value: d.values[k]})
	}
	return out
}

// Get returns the value for key and whether the key is present.
func (d *Document) Get(key string) (any, bool) {
	v, ok := d.values[key]
	return v, ok
}

// GetOr returns the value for key, or def when the key is absent.
func (d *Document) GetOr(key string, def any) any {
	if v, ok := d.values[key]; ok {
		return v
	}
	return def
}

// GetStrict returns the value for key, failing with ErrKeyNotFound when the
// key is absent.
func (d *Document) GetStrict(key string) (any, error) {
	v, ok := d.values[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, ErrKeyNotFound)
	}
	return v, nil
}

// Has reports whether key is present.
func (d *Document) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Set assigns value to key, wrapping nested maps and slices as at
// construction. A new key is appended; an existing key keeps its position.
// Assigning a *Document that contains the receiver (directly or through any
// nesting level) fails with ErrInvalidInput, since documents form a tree.
func (d *Document) Set(key string, value any) error {
	// Wrap before checking: wrapping copies raw maps and slices but keeps
	// *Document pointers, so the check sees every document the stored
	// value will actually reference.
	wrapped := wrapValue(value)
	if err := d.checkNoCycle(wrapped); err != nil {
		return err
	}
	d.setWrapped(key, wrapped)
	return nil
}

// Delete removes key and reports whether it was present.
// Deleting an absent key is a no-op, not an error.
func (d *Document) Delete(key string) bool {
	if _, ok := d.values[key]; !ok {
		return false
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

// Update assigns each field in place, wrapping values per construction
// rules. No key names are reserved. If any value would introduce a cycle
// the document is left unchanged and ErrInvalidInput is returned.
func (d *Document) Update(fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	wrapped := make(map[string]any, len(fields))
	for _, k := range keys {
		wrapped[k] = wrapValue(fields[k])
		if err := d.checkNoCycle(wrapped[k]); err != nil {
			return err
		}
	}
	for _, k := range keys {
		d.setWrapped(k, wrapped[k])
	}
	return nil
}

// Clone returns a deep copy sharing no mutable sub-structure with the
// original: nested Documents and sequences are cloned recursively, scalars
// copied by value.
func (d *Document) Clone() *Document {
	out := &Document{
		keys:   make([]string, len(d.keys)),
		values: make(map[string]any, len(d.values)),
	}
	copy(out.keys, d.keys)
	for k, v := range d.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

// Equal reports whether two documents hold the same keys in the same order
// with deeply equal values. Numeric values compare by value, so int 1 and
// float64 1 are equal.
func (d *Document) Equal(other *Document) bool {
	if other == nil || len(d.keys) != len(other.keys) {
		return false
	}
	for i, k := range d.keys {
		if other.keys[i] != k {
			return false
		}
		if !valuesEqual(d.values[k], other.values[k]) {
			return false
		}
	}
	return true
}

// FilterKeys returns a new Document containing only the named keys, in the
// original order. Unknown requested keys are silently ignored.
func (d *Document) FilterKeys(keys []string) *Document {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	out := New()
	for _, k := range d.keys {
		if want[k] {
			out.setWrapped(k, cloneValue(d.values[k]))
		}
	}
	return out
}

// ExcludeKeys returns a new Document containing all but the named keys, in
// the original order.
func (d *Document) ExcludeKeys(keys []string) *Document {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	out := New()
	for _, k := range d.keys {
		if !drop[k] {
			out.setWrapped(k, cloneValue(d.values[k]))
		}
	}
	return out
}

// Search returns, in insertion order, the keys whose stringified value
// contains query as a substring. Matching is case-insensitive. Nested
// documents and sequences are stringified recursively, so a query can match
// deep inside a value.
func (d *Document) Search(query string) []string {
	q := strings.ToLower(query)
	var out []string
	for _, k := range d.keys {
		if strings.Contains(strings.ToLower(stringifyValue(d.values[k])), q) {
			out = append(out, k)
		}
	}
	return out
}

// FindByKind returns a new Document restricted to entries whose value is of
// the given kind, preserving order.
func (d *Document) FindByKind(kind Kind) *Document {
	out := New()
	for _, k := range d.keys {
		if KindOf(d.values[k]) == kind {
			out.setWrapped(k, cloneValue(d.values[k]))
		}
	}
	return out
}

// Kinds returns a mapping from each key to the kind of its value.
func (d *Document) Kinds() map[string]Kind {
	out := make(map[string]Kind, len(d.keys))
	for _, k := range d.keys {
		out[k] = KindOf(d.values[k])
	}
	return out
}

// setWrapped stores an already-wrapped value, appending the key if new.
func (d *Document) setWrapped(key string, value any) {
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// checkNoCycle rejects values that contain the receiver, which would turn
// the document tree into a graph and break clone, merge and diff.
func (d *Document) checkNoCycle(value any) error {
	if containsDocument(value, d) {
		return fmt.Errorf("value contains the document it is being assigned to: %w", ErrInvalidInput)
	}
	return nil
}

func containsDocument(value any, target *Document) bool {
	switch v := value.(type) {
	case *Document:
		if v == target {
			return true
		}
		for _, k := range v.keys {
			if containsDocument(v.values[k], target) {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if containsDocument(item, target) {
				return true
			}
		}
	}
	return false
}

// wrapValue normalizes a raw value into the document value model: maps with
// string keys become Documents, slices and arrays become []any with wrapped
// elements, numeric and bool and string scalars pass through, and anything
// else is stringified so the value model stays closed.
func wrapValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case bool, string:
		return val
	case *Document:
		return val
	case Document:
		return val.Clone()
	case map[string]any:
		return FromMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = wrapValue(item)
		}
		return out
	}
	if _, ok := toFloat(v); ok {
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			m := make(map[string]any, rv.Len())
			for _, mk := range rv.MapKeys() {
				m[mk.String()] = rv.MapIndex(mk).Interface()
			}
			return FromMap(m)
		}
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = wrapValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return wrapValue(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

// cloneValue deep-copies a wrapped value.
func cloneValue(v any) any {
	switch val := v.(type) {
	case *Document:
		return val.Clone()
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	}
	return v
}

// valuesEqual compares two wrapped values deeply, with numeric values
// compared by magnitude across concrete types.
func valuesEqual(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	switch av := a.(type) {
	case *Document:
		bv, ok := b.(*Document)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valuesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	}
	return a == b
}

// stringifyValue renders a wrapped value for search and CSV export.
func stringifyValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case *Document:
		parts := make([]string, 0, len(val.keys))
		for _, k := range val.keys {
			parts = append(parts, fmt.Sprintf("%s: %s", k, stringifyValue(val.values[k])))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = stringifyValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(v)
}
