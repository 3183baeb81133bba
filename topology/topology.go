package topology

import (
	"fmt"

	"github.com/ctessum/geom"

	"github.com/katalvlaran/crossec/core"
	"github.com/katalvlaran/crossec/planar"
)

// Validate checks the topological validity of the cross-section in text
// and returns every violation found. See the package documentation for
// the check list and ordering.
//
// Text the parser rejects, an empty vertex or polygon set, and geometry
// that cannot be constructed each yield an invalid Result carrying that
// single diagnostic.
func Validate(text string, opts ...Option) core.Result {
	o := resolve(opts)

	doc, err := core.Parse(text)
	if err != nil {
		return core.NewResult([]string{fmt.Sprintf("Unexpected parse failure: %v", err)})
	}

	// The checks below need at least one vertex (bounding rectangle) and
	// one polygon (union); report the omission instead of degenerating.
	var errs []string
	if len(doc.Vertices) == 0 {
		errs = append(errs, "No vertices are defined.")
	}
	if len(doc.Polygons) == 0 {
		errs = append(errs, "No polygons are defined.")
	}
	if len(errs) > 0 {
		return core.NewResult(errs)
	}

	// Coordinate table: last declaration wins per ID, first-appearance
	// order preserved for deterministic reports.
	coords := make(map[int]geom.Point, len(doc.Vertices))
	order := make([]int, 0, len(doc.Vertices))
	for _, v := range doc.Vertices {
		if _, ok := coords[v.ID]; !ok {
			order = append(order, v.ID)
		}
		coords[v.ID] = geom.Point{X: v.X, Y: v.Z}
	}

	// 1. Duplicate coordinates.
	seen := make(map[geom.Point]int, len(order))
	for _, id := range order {
		pt := coords[id]
		if first, ok := seen[pt]; ok {
			errs = append(errs, fmt.Sprintf(
				"Vertices %d and %d share identical coordinates (%g, %g).", first, id, pt.X, pt.Y))
		} else {
			seen[pt] = id
		}
	}

	// Build the planar geometry. Broken geometry — and coinciding
	// vertices, which make ring shapes ambiguous — short-circuit the
	// remaining checks: area predicates over them would be meaningless.
	bodies, err := planar.Build(doc)
	if err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return core.NewResult(errs)
	}

	// 2. Vertex multiplicity inside each polygon.
	for _, p := range doc.Polygons {
		ids := make(map[int]bool, len(p.VertexIDs))
		for _, id := range p.VertexIDs {
			if ids[id] {
				errs = append(errs, fmt.Sprintf("Polygon %q lists the same vertex ID twice.", p.Name))
				break
			}
			ids[id] = true
		}
	}

	// 3. Vertex inside / on-edge of a foreign polygon.
	for _, id := range order {
		pt := coords[id]
		for i := range bodies {
			if bodies[i].Owns(id) {
				continue
			}
			switch pt.Within(bodies[i].Ring) {
			case geom.Inside:
				errs = append(errs, fmt.Sprintf(
					"Vertex %d lies strictly inside polygon %q.", id, bodies[i].Name))
			case geom.OnEdge:
				errs = append(errs, fmt.Sprintf(
					"Vertex %d lies on an edge of polygon %q (but is not an endpoint).", id, bodies[i].Name))
			}
		}
	}

	// 4. Pairwise overlap: touching is allowed, shared interior area is not.
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if a := bodies[i].Ring.Intersection(bodies[j].Ring).Area(); a > o.tol {
				errs = append(errs, fmt.Sprintf(
					"Polygons %q and %q overlap (area ≈ %.3e km²).", bodies[i].Name, bodies[j].Name, a))
			}
		}
	}

	// 5–6. Coverage and exact tiling versus the bounding rectangle of all
	// vertices. The boolean ops yield geom.Polygonal, so the union folds
	// through the interface.
	rect := boundingRect(doc.Vertices)
	var union geom.Polygonal = bodies[0].Ring
	for _, b := range bodies[1:] {
		union = union.Union(b.Ring)
	}
	errs = append(errs, coverageDefects(rect, union, o.tol)...)

	return core.NewResult(errs)
}

// coverageDefects compares the combined shape of all bodies against the
// bounding rectangle: gaps inside it, leakage outside it, and the exact
// tiling requirement (one contiguous region congruent to the rectangle).
// The rectangle Validate passes in spans every declared vertex, so the
// leak branch can only fire for a rectangle narrower than the union.
func coverageDefects(rect geom.Polygon, union geom.Polygonal, tol float64) []string {
	var errs []string

	if a := rect.Difference(union).Area(); a > tol {
		errs = append(errs, fmt.Sprintf(
			"The polygons leave gap(s) totalling ≈ %.3e km² inside the bounding rectangle.", a))
	}
	if a := union.Difference(rect).Area(); a > tol {
		errs = append(errs, fmt.Sprintf(
			"The polygons extend outside the bounding rectangle by ≈ %.3e km².", a))
	}

	if components(union) > 1 {
		errs = append(errs, "Combined polygons do not form a single contiguous shape.")
	} else if union.XOr(rect).Area() > tol {
		errs = append(errs, "The combined shape of polygons is not a perfect rectangle matching the bounding box.")
	}

	return errs
}

// boundingRect spans the axis-aligned rectangle over the extreme x/z of
// all declared vertices, used or not.
func boundingRect(vs []core.Vertex) geom.Polygon {
	minX, maxX := vs[0].X, vs[0].X
	minZ, maxZ := vs[0].Z, vs[0].Z
	for _, v := range vs[1:] {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
		minZ = min(minZ, v.Z)
		maxZ = max(maxZ, v.Z)
	}

	return geom.Polygon{{
		{X: minX, Y: maxZ},
		{X: maxX, Y: maxZ},
		{X: maxX, Y: minZ},
		{X: minX, Y: minZ},
	}}
}

// components counts the connected regions of a combined shape. Exterior
// rings and holes come out of the boolean ops with opposite winding, so
// rings whose signed area matches the sign of the total are the exterior
// ones. A non-Polygon dynamic type is a single region.
func components(poly geom.Polygonal) int {
	p, ok := poly.(geom.Polygon)
	if !ok {
		return 1
	}
	if len(p) <= 1 {
		return len(p)
	}

	var total float64
	areas := make([]float64, len(p))
	for i, ring := range p {
		var sum float64
		for k := range ring {
			q := ring[(k+1)%len(ring)]
			sum += ring[k].X*q.Y - q.X*ring[k].Y
		}
		areas[i] = sum / 2
		total += areas[i]
	}

	n := 0
	for _, a := range areas {
		if a != 0 && (a > 0) == (total > 0) {
			n++
		}
	}
	if n == 0 {
		n = 1
	}

	return n
}
