// Package core: data model and sentinel errors for cross-section parsing.
package core

import (
	"errors"
	"strings"
)

// Sentinel errors for parsing. Callers branch with errors.Is; parse
// failures attach line context via %w wrapping.
var (
	// ErrNumericParse indicates a vertex line carries a malformed numeral.
	ErrNumericParse = errors.New("core: invalid numeral on vertex line")

	// ErrPolygonName indicates a polygon name contains more than one '^'.
	ErrPolygonName = errors.New("core: polygon name may contain at most one '^'")

	// ErrVertexRef indicates a polygon vertex token is not a base-10 integer.
	ErrVertexRef = errors.New("core: polygon vertex reference is not an integer")

	// ErrUnrecognizedLine indicates a line matching neither grammar shape.
	ErrUnrecognizedLine = errors.New("core: unrecognized line format")
)

// Vertex is a 2-D point of the section plane.
//
// ID is caller-chosen, unique, not necessarily contiguous.
// X is the horizontal distance and Z the depth, both in kilometres;
// the sign convention of Z belongs to the caller.
type Vertex struct {
	ID int
	X  float64
	Z  float64
}

// Polygon is one geological body's boundary: a named, ordered ring of
// vertex references. Order defines the boundary ring; a repeated ID within
// one polygon is invalid (rejected by the validators, not by the parser).
type Polygon struct {
	Name      string
	VertexIDs []int
}

// Base returns the polygon name up to the first '^'. The '^' is a purely
// cosmetic sub-body separator ("chalk^upper") and never carries meaning
// for validation.
func (p Polygon) Base() string {
	if i := strings.IndexByte(p.Name, '^'); i >= 0 {
		return p.Name[:i]
	}

	return p.Name
}

// DisplayName returns the polygon name with '^' replaced by a space,
// the form used for human-facing labels.
func (p Polygon) DisplayName() string {
	return strings.ReplaceAll(p.Name, "^", " ")
}

// Document owns the vertices and polygons of one parsed cross-section,
// in order of appearance. It is a derived, read-only artifact of a single
// Parse call; there is no cross-call identity.
type Document struct {
	Vertices []Vertex
	Polygons []Polygon
}

// Result reports the outcome of one validation pass.
//
// Valid is true iff Errors is empty. Errors are human-readable
// diagnostics in a deterministic order. A Result is produced fresh per
// call and never mutated in place.
type Result struct {
	Valid  bool
	Errors []string
}

// NewResult wraps an accumulated error list into a Result.
func NewResult(errs []string) Result {
	return Result{Valid: len(errs) == 0, Errors: errs}
}
