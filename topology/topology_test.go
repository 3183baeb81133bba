package topology_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crossec/topology"
)

// twoTriangles exactly tile the 2×2 square spanned by their vertices.
const twoTriangles = `1 0 0
2 2 0
3 2 2
4 0 2
lower 1 2 3
upper 1 3 4
`

func all(errs []string) string { return strings.Join(errs, "\n") }

// TestValidate_PerfectTiling: scenario with a clean partition — zero errors.
func TestValidate_PerfectTiling(t *testing.T) {
	res := topology.Validate(twoTriangles)
	require.True(t, res.Valid, "errors: %v", res.Errors)
	assert.Empty(t, res.Errors)
}

// TestValidate_DuplicateCoordinates: a coordinate duplicated onto another
// vertex ID yields exactly one error naming both IDs; the downstream area
// checks are suppressed because the geometry is ambiguous.
func TestValidate_DuplicateCoordinates(t *testing.T) {
	text := `1 0 0
2 2 0
3 2 2
4 0 2
5 2 2
lower 1 2 3
upper 1 3 4
`
	res := topology.Validate(text)
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Vertices 3 and 5 share identical coordinates")
}

// TestValidate_VertexOnForeignEdge: a vertex resting mid-edge of a polygon
// that does not own it.
func TestValidate_VertexOnForeignEdge(t *testing.T) {
	text := `1 0 0
2 2 0
3 2 2
4 0 2
5 1 0
box 1 2 3 4
`
	res := topology.Validate(text)
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `Vertex 5 lies on an edge of polygon "box"`)
}

// TestValidate_VertexStrictlyInside distinguishes interior from boundary.
func TestValidate_VertexStrictlyInside(t *testing.T) {
	text := `1 0 0
2 2 0
3 2 2
4 0 2
5 1 1
box 1 2 3 4
`
	res := topology.Validate(text)
	require.False(t, res.Valid)
	assert.Contains(t, all(res.Errors), `Vertex 5 lies strictly inside polygon "box"`)
}

// TestValidate_Overlap: two squares sharing half their area produce one
// overlap error carrying the measured area.
func TestValidate_Overlap(t *testing.T) {
	text := `1 0 0
2 2 0
3 2 2
4 0 2
5 1 0
6 3 0
7 3 2
8 1 2
a 1 2 3 4
b 5 6 7 8
`
	res := topology.Validate(text)
	require.False(t, res.Valid)

	var overlaps []string
	for _, e := range res.Errors {
		if strings.Contains(e, "overlap") {
			overlaps = append(overlaps, e)
		}
	}
	require.Len(t, overlaps, 1)
	assert.Contains(t, overlaps[0], `Polygons "a" and "b" overlap`)
	assert.Contains(t, overlaps[0], "2.000e+00")
}

// TestValidate_ThreeBodyTiling: the union accumulates across more than
// two bodies and still matches the bounding rectangle exactly. Vertex 7
// is a straight-through point of the bottom strip's upper edge.
func TestValidate_ThreeBodyTiling(t *testing.T) {
	text := `1 0 0
2 4 0
3 4 1
4 0 1
5 4 2
6 0 2
7 2 1
8 2 2
bottom 1 2 3 7 4
top^west 4 7 8 6
top^east 7 3 5 8
`
	res := topology.Validate(text)
	require.True(t, res.Valid, "errors: %v", res.Errors)
	assert.Empty(t, res.Errors)
}

// gapSection tiles a 4×2 rectangle except for a triangular notch of
// exactly 1 km² rising from the bottom edge. Vertex 7 (the apex) is a
// straight-through point of the top strip's lower edge, so it is listed
// in that ring and triggers no touch diagnostics.
const gapSection = `1 0 0
2 4 0
3 4 2
4 0 2
5 1 0
6 3 0
7 2 1
8 0 1
9 4 1
top 8 7 9 3 4
bl 1 5 7 8
br 7 6 2 9
`

// TestValidate_Gap: scenario with a hole — one gap error with its area.
func TestValidate_Gap(t *testing.T) {
	res := topology.Validate(gapSection)
	require.False(t, res.Valid)

	joined := all(res.Errors)
	assert.Contains(t, joined, "leave gap(s) totalling ≈ 1.000e+00 km²")
	assert.Contains(t, joined, "not a perfect rectangle")
	assert.NotContains(t, joined, "overlap")
	assert.NotContains(t, joined, "lies on an edge")
}

// TestValidate_Leak: a polygon reaching outside the rectangle of its own
// vertices cannot exist (the rectangle spans them), but one polygon's
// vertex can stretch the rectangle while another leaks past the union —
// covered here by two squares plus a far-away unused vertex that widens
// the rectangle, leaving uncovered ground.
func TestValidate_DistantVertexWidensRectangle(t *testing.T) {
	text := twoTriangles + "9 4 1\n"
	res := topology.Validate(text)
	require.False(t, res.Valid)
	assert.Contains(t, all(res.Errors), "leave gap(s)")
}

// TestValidate_Disjoint: two separated squares are not one region.
func TestValidate_Disjoint(t *testing.T) {
	text := `1 0 0
2 2 0
3 2 2
4 0 2
5 3 0
6 5 0
7 5 2
8 3 2
west 1 2 3 4
east 5 6 7 8
`
	res := topology.Validate(text)
	require.False(t, res.Valid)
	joined := all(res.Errors)
	assert.Contains(t, joined, "Combined polygons do not form a single contiguous shape.")
	assert.Contains(t, joined, "leave gap(s) totalling ≈ 2.000e+00 km²")
}

// TestValidate_RepeatedVertexInPolygon: consecutive repetition keeps the
// ring constructible, so the multiplicity check itself fires.
func TestValidate_RepeatedVertexInPolygon(t *testing.T) {
	text := `1 0 0
2 2 0
3 2 2
4 0 2
box 1 1 2 3 4
`
	res := topology.Validate(text)
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `Polygon "box" lists the same vertex ID twice.`)
}

// TestValidate_BrokenRingShortCircuits: a self-intersecting ring aborts
// with that single construction error.
func TestValidate_BrokenRingShortCircuits(t *testing.T) {
	text := `1 0 0
2 3 0
3 0 2
4 2 2
bow 1 2 3 4
`
	res := topology.Validate(text)
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "not a simple closed curve")
}

// TestValidate_ParseFailure: unparseable text is not this format at all.
func TestValidate_ParseFailure(t *testing.T) {
	res := topology.Validate("stray\n")
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Unexpected parse failure")
}

// TestValidate_EmptyDocument guards the degenerate inputs.
func TestValidate_EmptyDocument(t *testing.T) {
	res := topology.Validate("")
	require.False(t, res.Valid)
	assert.Contains(t, res.Errors, "No vertices are defined.")
	assert.Contains(t, res.Errors, "No polygons are defined.")
}

// TestValidate_Idempotent: same text, same tolerance, same result.
func TestValidate_Idempotent(t *testing.T) {
	for _, text := range []string{twoTriangles, gapSection} {
		first := topology.Validate(text)
		second := topology.Validate(text)
		assert.Equal(t, first, second)
	}
}

// TestValidate_ToleranceMonotonicity: raising the tolerance never turns a
// valid section invalid, and a tolerance above a defect's area absorbs it.
func TestValidate_ToleranceMonotonicity(t *testing.T) {
	// valid stays valid at any higher tolerance
	assert.True(t, topology.Validate(twoTriangles, topology.WithTolerance(1.0)).Valid)

	// the 1 km² notch is a defect below its area and noise above it
	assert.False(t, topology.Validate(gapSection, topology.WithTolerance(0.5)).Valid)
	assert.True(t, topology.Validate(gapSection, topology.WithTolerance(1.5)).Valid,
		"a tolerance above the gap area must absorb the defect")
}

// TestWithTolerance_Validation: nonsensical tolerances are programmer
// errors and panic at option construction.
func TestWithTolerance_Validation(t *testing.T) {
	assert.Panics(t, func() { topology.WithTolerance(-1) })
	assert.NotPanics(t, func() { topology.WithTolerance(0) })
}
