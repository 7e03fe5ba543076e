// Package values provides the small value types that ship alongside the
// document model: bounded intervals, fixed-length numeric vectors,
// label-addressed timed-event collections and tabular datasets. Each is an
// independent type; Timeline and Dataset store their structured payloads as
// ddm Documents.
package values

import (
	"fmt"

	"github.com/arthur-debert/ddm/ddm"
)

// Range is a closed numeric interval [Min, Max] with Min <= Max enforced at
// construction.
type Range struct {
	Min float64
	Max float64
}

// NewRange creates a Range, failing with ErrInvalidInput when min > max.
func NewRange(min, max float64) (Range, error) {
	if min > max {
		return Range{}, fmt.Errorf("range min %v exceeds max %v: %w", min, max, ddm.ErrInvalidInput)
	}
	return Range{Min: min, Max: max}, nil
}

// Contains reports whether v lies within the interval, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp returns v limited to the interval.
func (r Range) Clamp(v float64) float64 {
	switch {
	case v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	}
	return v
}

// Length returns the extent of the interval.
func (r Range) Length() float64 {
	return r.Max - r.Min
}

// Midpoint returns the center of the interval.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Overlaps reports whether the two intervals share at least one point.
func (r Range) Overlaps(other Range) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

// Intersect returns the overlapping interval. ok is false when the
// intervals are disjoint.
func (r Range) Intersect(other Range) (Range, bool) {
	if !r.Overlaps(other) {
		return Range{}, false
	}
	out := Range{Min: r.Min, Max: r.Max}
	if other.Min > out.Min {
		out.Min = other.Min
	}
	if other.Max < out.Max {
		out.Max = other.Max
	}
	return out, true
}

// Union returns the smallest interval covering both inputs. It fails with
// ErrInvalidInput when the intervals are disjoint, since their union would
// not be an interval.
func (r Range) Union(other Range) (Range, error) {
	if !r.Overlaps(other) {
		return Range{}, fmt.Errorf("ranges [%v, %v] and [%v, %v] are disjoint: %w",
			r.Min, r.Max, other.Min, other.Max, ddm.ErrInvalidInput)
	}
	out := Range{Min: r.Min, Max: r.Max}
	if other.Min < out.Min {
		out.Min = other.Min
	}
	if other.Max > out.Max {
		out.Max = other.Max
	}
	return out, nil
}

// String renders the interval as [min, max].
func (r Range) String() string {
	return fmt.Sprintf("[%v, %v]", r.Min, r.Max)
}
