// Package topology checks the geometric invariants of a cross-section:
// whether its polygons form a physically sensible partition of the
// section's bounding rectangle.
//
// Validate parses the text itself (core.Parse + planar.Build) and then
// runs six independent checks against the constructed geometry, in fixed
// order, accumulating every violation:
//
//  1. Duplicate coordinates — no two vertices may share an identical
//     (x, z) position; one error per coinciding pair, naming both IDs.
//  2. Vertex multiplicity — a polygon must not list the same vertex ID
//     twice.
//  3. Containment/touching — a vertex that is not one of a polygon's own
//     corners must not lie strictly inside that polygon, nor exactly on
//     its boundary. Evaluated for every (vertex, polygon) pair.
//  4. Pairwise overlap — two polygons may touch along shared edges or
//     vertices but their interiors must not intersect with area above the
//     tolerance.
//  5. Coverage — the union of all polygons must leave no gap inside the
//     bounding rectangle spanned by the extreme coordinates of all
//     declared vertices, and must not leak outside it.
//  6. Exact tiling — the union must be one contiguous region whose
//     symmetric difference with the bounding rectangle is below the
//     tolerance.
//
// Three findings short-circuit the pipeline, because area predicates over
// ambiguous geometry would be meaningless: text the parser rejects
// outright, coinciding vertex coordinates, and a polygon whose ring
// cannot be constructed (degenerate or self-intersecting; see package
// planar). Checks 2–6 all run and accumulate once coordinates and rings
// are sound.
//
// The area tolerance defaults to DefaultTolerance (1e-8 km²) and is
// tuned with WithTolerance. Raising the tolerance never invalidates a
// previously valid section.
//
// Complexity: O(V² + V·P + P²) geometric predicate evaluations for V
// vertices and P polygons — fine for hand-sized cross-sections, worth
// noting before feeding in thousands of polygons.
//
// Validate is a pure function of (text, tolerance): stateless, no I/O,
// identical results on repeated calls, safe for concurrent use.
package topology
