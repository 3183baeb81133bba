// Package planar turns a parsed cross-section Document into planar
// polygon bodies ready for geometric validation.
//
// Build looks up every referenced vertex's coordinates in declaration
// order, producing one Body per polygon: its boundary ring as a
// geom.Polygon plus the set of vertex IDs it owns (used by the topology
// checks to exempt a polygon's own corners from containment tests).
//
// Construction is fail-fast: the first degenerate polygon aborts the call
// with a single wrapped error naming it, and the topology validator
// returns that error alone rather than running area predicates over
// broken geometry.
//
// A ring is accepted when, after collapsing consecutive duplicate points
// (including a closing duplicate), it still has at least three distinct
// points, non-zero area, and forms a simple closed curve: no two
// non-adjacent edges intersect or touch, and no adjacent edge folds back
// along its predecessor. Straight-through collinear vertices are legal
// ring geometry.
//
// Errors:
//
//	ErrUnknownVertex    - a polygon references an undeclared vertex ID.
//	ErrDegenerateRing   - fewer than 3 distinct points, or zero area.
//	ErrSelfIntersecting - the ring crosses or touches itself.
package planar
