package voronoi

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTriangulation wraps every triangulation validation failure.
	ErrMalformedTriangulation = errors.New("malformed triangulation")
	// ErrDegenerateTriangle is returned for triangles whose corners are collinear.
	ErrDegenerateTriangle = errors.New("degenerate triangle")
)

// ValidationError describes a rejected input.
type ValidationError struct {
	Field string // what was checked, e.g. "halfedges"
	Index int    // offending index, -1 if not applicable
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %s", e.Field, e.Index, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return ErrMalformedTriangulation
}
