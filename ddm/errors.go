package ddm

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (possibly wrapped) by document operations.
// Callers should test with errors.Is.
var (
	// ErrInvalidPath indicates a malformed or empty path string where a
	// resolvable path is required.
	ErrInvalidPath = errors.New("invalid path")

	// ErrTypeMismatch indicates a traversal or typed operation encountered
	// a value of the wrong shape, e.g. setting a path through a scalar.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrKeyNotFound indicates an operation required a key that is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidInput indicates a malformed template, schema, or reducer
	// specification supplied by the caller.
	ErrInvalidInput = errors.New("invalid input")
)

// PathError carries the path and the segment at which resolution failed.
type PathError struct {
	Path    string // the full dotted path
	Segment string // the segment that could not be resolved, if known
	Err     error  // underlying sentinel error
}

// Error implements the error interface
func (e *PathError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("path %q: segment %q: %v", e.Path, e.Segment, e.Err)
	}
	return fmt.Sprintf("path %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain compatibility
func (e *PathError) Unwrap() error {
	return e.Err
}

func pathErr(path, segment string, err error) *PathError {
	return &PathError{Path: path, Segment: segment, Err: err}
}
