package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns raw cross-section text into a Document, or fails with the
// first structural error encountered (fail-fast; the accumulate-everything
// counterpart lives in package format).
//
// Grammar, per significant line (see Scan):
//   - vertex line: <id> <x> <z> — id all digits, x/z floating point.
//     A malformed numeral aborts with ErrNumericParse naming the line.
//   - polygon line: <name> <id>... — at most one '^' in the name
//     (ErrPolygonName), every id a base-10 integer (ErrVertexRef).
//     Repeated ids are accepted here and rejected by the validators.
//   - anything else: ErrUnrecognizedLine naming the line and its content.
//
// Parse is a total, idempotent function of its input: same text, same
// Document or same error. No side effects.
//
// Complexity: O(len(text)).
func Parse(text string) (*Document, error) {
	doc := &Document{}
	for _, ln := range Scan(text) {
		switch ln.Kind {
		case KindVertex:
			v, err := parseVertex(ln)
			if err != nil {
				return nil, err
			}
			doc.Vertices = append(doc.Vertices, v)

		case KindPolygon:
			p, err := parsePolygon(ln)
			if err != nil {
				return nil, err
			}
			doc.Polygons = append(doc.Polygons, p)

		default:
			return nil, fmt.Errorf("line %d: %q: %w", ln.No, ln.Raw, ErrUnrecognizedLine)
		}
	}

	return doc, nil
}

// parseVertex converts a KindVertex line. The id token is all digits by
// dispatch; it can still overflow int, which counts as a malformed numeral.
func parseVertex(ln Line) (Vertex, error) {
	id, err := strconv.Atoi(ln.Tokens[0])
	if err != nil {
		return Vertex{}, fmt.Errorf("line %d: vertex ID %q: %w", ln.No, ln.Tokens[0], ErrNumericParse)
	}
	x, err := strconv.ParseFloat(ln.Tokens[1], 64)
	if err != nil {
		return Vertex{}, fmt.Errorf("line %d: x-coordinate %q: %w", ln.No, ln.Tokens[1], ErrNumericParse)
	}
	z, err := strconv.ParseFloat(ln.Tokens[2], 64)
	if err != nil {
		return Vertex{}, fmt.Errorf("line %d: z-coordinate %q: %w", ln.No, ln.Tokens[2], ErrNumericParse)
	}

	return Vertex{ID: id, X: x, Z: z}, nil
}

// parsePolygon converts a KindPolygon line.
func parsePolygon(ln Line) (Polygon, error) {
	name := ln.Tokens[0]
	if strings.Count(name, "^") > 1 {
		return Polygon{}, fmt.Errorf("line %d: polygon name %q: %w", ln.No, name, ErrPolygonName)
	}

	ids := make([]int, 0, len(ln.Tokens)-1)
	for _, tok := range ln.Tokens[1:] {
		id, err := strconv.Atoi(tok)
		if err != nil {
			return Polygon{}, fmt.Errorf("line %d: polygon %q, token %q: %w", ln.No, name, tok, ErrVertexRef)
		}
		ids = append(ids, id)
	}

	return Polygon{Name: name, VertexIDs: ids}, nil
}
