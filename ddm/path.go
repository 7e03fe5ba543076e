package ddm

import (
	"fmt"
	"strings"
)

// A path is a dot-separated string of segments, e.g. "user.address.city".
// Each segment names a key at the current traversal level. Sequences are
// opaque leaves: a path never indexes into a sequence, and traversal through
// one fails the same way traversal through any other non-Document value does.

// splitPath parses a dotted path into segments. An empty path or a path
// with an empty segment ("a..b", ".a", "a.") fails with ErrInvalidPath.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, pathErr(path, "", fmt.Errorf("empty path: %w", ErrInvalidPath))
	}
	segments := strings.Split(path, ".")
	for _, s := range segments {
		if s == "" {
			return nil, pathErr(path, s, fmt.Errorf("empty segment: %w", ErrInvalidPath))
		}
	}
	return segments, nil
}

// resolvePath walks all but the last segment from root, requiring each
// intermediate value to be a nested Document. It returns the direct parent
// container and the final segment so callers can read and write without
// re-walking. found is false when any intermediate segment is absent or
// holds a non-Document value; the final segment's own presence is the
// caller's concern.
func resolvePath(root *Document, segments []string) (parent *Document, finalKey string, found bool) {
	current := root
	for _, seg := range segments[:len(segments)-1] {
		v, ok := current.Get(seg)
		if !ok {
			return nil, "", false
		}
		next, ok := v.(*Document)
		if !ok {
			return nil, "", false
		}
		current = next
	}
	return current, segments[len(segments)-1], true
}

// GetPath returns the value at the dotted path and whether resolution
// succeeded. A malformed path resolves like an absent one.
func (d *Document) GetPath(path string) (any, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}
	parent, key, ok := resolvePath(d, segments)
	if !ok {
		return nil, false
	}
	return parent.Get(key)
}

// GetPathOr returns the value at the dotted path, or def when any segment
// fails to resolve. It never fails, even on an empty document or a
// malformed path.
func (d *Document) GetPathOr(path string, def any) any {
	if v, ok := d.GetPath(path); ok {
		return v
	}
	return def
}

// HasPath reports whether the dotted path fully resolves to a value.
func (d *Document) HasPath(path string) bool {
	_, ok := d.GetPath(path)
	return ok
}

// SetPath assigns value at the dotted path, creating empty intermediate
// Documents for missing segments. It fails with ErrInvalidPath on a
// malformed path, with ErrTypeMismatch when an intermediate segment already
// holds a non-Document value (a leaf cannot be traversed), and with
// ErrInvalidInput when value would introduce a cycle. On failure the
// document is unchanged: intermediate Documents are only created once the
// whole walk is known to succeed.
func (d *Document) SetPath(path string, value any) error {
	segments, err := splitPath(path)
	if err != nil {
		return err
	}
	// Validate the full walk before mutating anything. Every pre-existing
	// document on the walk is an ancestor of the assignment target, so the
	// cycle check must cover each of them, not just the root.
	ancestors := []*Document{d}
	current := d
	for _, seg := range segments[:len(segments)-1] {
		v, ok := current.Get(seg)
		if !ok {
			break
		}
		next, ok := v.(*Document)
		if !ok {
			return pathErr(path, seg, fmt.Errorf("cannot traverse %s value: %w", KindOf(v), ErrTypeMismatch))
		}
		current = next
		ancestors = append(ancestors, next)
	}
	wrapped := wrapValue(value)
	for _, anc := range ancestors {
		if err := anc.checkNoCycle(wrapped); err != nil {
			return err
		}
	}
	current = d
	for _, seg := range segments[:len(segments)-1] {
		v, ok := current.Get(seg)
		if !ok {
			next := New()
			current.setWrapped(seg, next)
			current = next
			continue
		}
		current = v.(*Document)
	}
	current.setWrapped(segments[len(segments)-1], wrapped)
	return nil
}
