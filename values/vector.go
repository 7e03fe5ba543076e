package values

import (
	"fmt"
	"math"

	"github.com/arthur-debert/ddm/ddm"
)

// Vector is a fixed-length ordered sequence of numbers. Operations between
// two vectors require equal dimensions and fail with ErrTypeMismatch
// otherwise. Vectors are immutable: every operation returns a new Vector.
type Vector struct {
	elems []float64
}

// NewVector creates a Vector from the given components. The input slice is
// copied.
func NewVector(elems ...float64) Vector {
	out := make([]float64, len(elems))
	copy(out, elems)
	return Vector{elems: out}
}

// Dim returns the vector's dimension.
func (v Vector) Dim() int {
	return len(v.elems)
}

// At returns the i-th component, failing with ErrKeyNotFound when i is out
// of bounds.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elems) {
		return 0, fmt.Errorf("vector index %d out of range [0, %d): %w", i, len(v.elems), ddm.ErrKeyNotFound)
	}
	return v.elems[i], nil
}

// Elems returns a copy of the components.
func (v Vector) Elems() []float64 {
	out := make([]float64, len(v.elems))
	copy(out, v.elems)
	return out
}

func (v Vector) sameDim(other Vector) error {
	if len(v.elems) != len(other.elems) {
		return fmt.Errorf("vector dimensions differ: %d vs %d: %w", len(v.elems), len(other.elems), ddm.ErrTypeMismatch)
	}
	return nil
}

// Add returns the component-wise sum.
func (v Vector) Add(other Vector) (Vector, error) {
	if err := v.sameDim(other); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i] + other.elems[i]
	}
	return Vector{elems: out}, nil
}

// Sub returns the component-wise difference.
func (v Vector) Sub(other Vector) (Vector, error) {
	if err := v.sameDim(other); err != nil {
		return Vector{}, err
	}
	out := make([]float64, len(v.elems))
	for i := range v.elems {
		out[i] = v.elems[i] - other.elems[i]
	}
	return Vector{elems: out}, nil
}

// Scale returns the vector multiplied by factor.
func (v Vector) Scale(factor float64) Vector {
	out := make([]float64, len(v.elems))
	for i, e := range v.elems {
		out[i] = e * factor
	}
	return Vector{elems: out}
}

// Dot returns the dot product.
func (v Vector) Dot(other Vector) (float64, error) {
	if err := v.sameDim(other); err != nil {
		return 0, err
	}
	var sum float64
	for i := range v.elems {
		sum += v.elems[i] * other.elems[i]
	}
	return sum, nil
}

// Norm returns the Euclidean length.
func (v Vector) Norm() float64 {
	var sum float64
	for _, e := range v.elems {
		sum += e * e
	}
	return math.Sqrt(sum)
}

// Normalize returns the unit vector in v's direction, failing with
// ErrInvalidInput for the zero vector.
func (v Vector) Normalize() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return Vector{}, fmt.Errorf("cannot normalize the zero vector: %w", ddm.ErrInvalidInput)
	}
	return v.Scale(1 / n), nil
}

// Distance returns the Euclidean distance between the vectors.
func (v Vector) Distance(other Vector) (float64, error) {
	diff, err := v.Sub(other)
	if err != nil {
		return 0, err
	}
	return diff.Norm(), nil
}

// String renders the vector as (e1, e2, ...).
func (v Vector) String() string {
	s := "("
	for i, e := range v.elems {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprint(e)
	}
	return s + ")"
}
