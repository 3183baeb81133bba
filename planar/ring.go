package planar

import (
	"fmt"

	"github.com/ctessum/geom"
)

// normalizeRing collapses consecutive duplicate points (and a closing
// duplicate) and decides whether the remainder is a simple closed curve
// with non-zero area. The collapsed ring is returned for construction.
func normalizeRing(name string, ring geom.Path) (geom.Path, error) {
	pts := collapse(ring)
	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon %q: %d distinct points: %w", name, len(pts), ErrDegenerateRing)
	}
	if signedArea(pts) == 0 {
		return nil, fmt.Errorf("polygon %q: zero area: %w", name, ErrDegenerateRing)
	}

	n := len(pts)
	for i := 0; i < n; i++ {
		a, b := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			c, d := pts[j], pts[(j+1)%n]
			switch {
			case j == i+1:
				// consecutive edges a→b, b→d: a spike folds back along a→b
				if foldsBack(a, b, d) {
					return nil, fmt.Errorf("polygon %q: spike at (%g, %g): %w", name, b.X, b.Y, ErrSelfIntersecting)
				}
			case i == 0 && j == n-1:
				// consecutive in ring order: c→a, a→b
				if foldsBack(c, a, b) {
					return nil, fmt.Errorf("polygon %q: spike at (%g, %g): %w", name, a.X, a.Y, ErrSelfIntersecting)
				}
			default:
				if segmentsIntersect(a, b, c, d) {
					return nil, fmt.Errorf("polygon %q: edge %d-%d meets edge %d-%d: %w",
						name, i, (i+1)%n, j, (j+1)%n, ErrSelfIntersecting)
				}
			}
		}
	}

	return pts, nil
}

// collapse drops consecutive duplicate points and an explicit closing
// duplicate, returning the distinct ring points in order.
func collapse(ring geom.Path) geom.Path {
	pts := make(geom.Path, 0, len(ring))
	for _, p := range ring {
		if len(pts) > 0 && p == pts[len(pts)-1] {
			continue
		}
		pts = append(pts, p)
	}
	for len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	return pts
}

// signedArea is the shoelace sum of a closed ring: positive for
// counter-clockwise orientation, zero for collinear rings.
func signedArea(pts geom.Path) float64 {
	var sum float64
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}

	return sum / 2
}

// cross returns the z-component of (b-a) × (c-a): the orientation of the
// triple (a, b, c). Zero means collinear.
func cross(a, b, c geom.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// foldsBack reports whether the consecutive edges p→q, q→r reverse
// direction along the same line (a spike). Straight-through collinear
// points (dot > 0) are legal.
func foldsBack(p, q, r geom.Point) bool {
	if cross(p, q, r) != 0 {
		return false
	}

	return (q.X-p.X)*(r.X-q.X)+(q.Y-p.Y)*(r.Y-q.Y) < 0
}

// onSegment reports whether point p, already known collinear with a–b,
// lies within the segment's bounding box.
func onSegment(a, b, p geom.Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// segmentsIntersect reports whether segments p1–q1 and p2–q2 share any
// point: a proper crossing, an endpoint touch, or a collinear overlap.
func segmentsIntersect(p1, q1, p2, q2 geom.Point) bool {
	d1 := cross(p2, q2, p1)
	d2 := cross(p2, q2, q1)
	d3 := cross(p1, q1, p2)
	d4 := cross(p1, q1, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	switch {
	case d1 == 0 && onSegment(p2, q2, p1):
		return true
	case d2 == 0 && onSegment(p2, q2, q1):
		return true
	case d3 == 0 && onSegment(p1, q1, p2):
		return true
	case d4 == 0 && onSegment(p1, q1, q2):
		return true
	}

	return false
}
