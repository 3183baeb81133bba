package planar

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/crossec/core"
)

// Sentinel errors for geometry construction.
var (
	// ErrUnknownVertex indicates a polygon references a vertex ID with no
	// declaration. Reachable only when format validation was skipped.
	ErrUnknownVertex = errors.New("planar: polygon references an undeclared vertex")

	// ErrDegenerateRing indicates a ring with fewer than three distinct
	// coordinate points, or with zero enclosed area.
	ErrDegenerateRing = errors.New("planar: degenerate polygon ring")

	// ErrSelfIntersecting indicates a ring that is not a simple closed
	// curve: it crosses or touches itself.
	ErrSelfIntersecting = errors.New("planar: polygon ring is not a simple closed curve")
)

// Body is one geological body: its name, boundary ring, and the set of
// vertex IDs the ring was built from. The X axis of the ring is the
// section's horizontal distance, the Y axis its depth.
type Body struct {
	Name string
	Ring geom.Polygon

	members map[int]bool
}

// Owns reports whether the given vertex ID is one of the body's own
// corners. Own corners are exempt from containment/touch diagnostics.
func (b Body) Owns(id int) bool { return b.members[id] }

// Build constructs one Body per polygon of doc, in declaration order.
// It fails with the first construction error, wrapped with the offending
// polygon's name; see the package documentation for the accepted ring
// shape.
//
// Complexity: O(Σ r_i²) over ring sizes r_i (pairwise edge checks).
func Build(doc *core.Document) ([]Body, error) {
	coords := make(map[int]geom.Point, len(doc.Vertices))
	for _, v := range doc.Vertices {
		coords[v.ID] = geom.Point{X: v.X, Y: v.Z}
	}

	bodies := make([]Body, 0, len(doc.Polygons))
	for _, p := range doc.Polygons {
		ring := make(geom.Path, 0, len(p.VertexIDs))
		members := make(map[int]bool, len(p.VertexIDs))
		for _, id := range p.VertexIDs {
			pt, ok := coords[id]
			if !ok {
				return nil, fmt.Errorf("polygon %q: vertex ID %d: %w", p.Name, id, ErrUnknownVertex)
			}
			ring = append(ring, pt)
			members[id] = true
		}

		pts, err := normalizeRing(p.Name, ring)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, Body{Name: p.Name, Ring: geom.Polygon{pts}, members: members})
	}

	return bodies, nil
}
