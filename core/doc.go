// Package core defines the cross-section data model (Vertex, Polygon,
// Document), the shared line scanner, the fail-fast parser, and the
// serializer that regenerates the line format.
//
// The text format is line-oriented UTF-8:
//
//	1 0.0 0.0          # vertex: <id> <x> <z> — exactly 3 tokens, id all digits
//	2 2.0 0.0
//	3 2.0 2.0
//	4 0.0 2.0
//	left  1 2 3        # polygon: <name> <id>... — 2+ tokens
//	right 1 3 4
//
// Everything from '#' to end of line is a comment; blank lines are skipped.
// Coordinates are kilometres; Z is depth with a caller-defined sign
// convention (no axis flip happens here).
//
// One dispatch rule, one place:
//
// Scan is the single deterministic classifier of physical lines. Both
// Parse (fail-fast, returns a Document or the first error) and the
// format validator (accumulates every violation) consume Scan output, so
// the two can never disagree on edge cases such as a two-token line whose
// first token happens to look numeric.
//
// Errors:
//
//	ErrNumericParse     - malformed numeral on a vertex line.
//	ErrPolygonName      - polygon name with more than one '^'.
//	ErrVertexRef        - polygon vertex token that is not an integer.
//	ErrUnrecognizedLine - line matching neither the vertex nor the polygon shape.
//
// All operations are pure functions of their input text: no I/O, no global
// state, safe for concurrent use on independent inputs.
package core
