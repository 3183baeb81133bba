package core

import (
	"strconv"
	"strings"
)

// Encode regenerates the line format from a Document: one vertex line per
// vertex, then one polygon line per polygon, declaration order preserved.
//
// Coordinates are written with the shortest representation that parses
// back to the identical float64, so Parse(d.Encode()) reproduces d
// exactly (round-trip property).
//
// Complexity: O(V + ΣP ids).
func (d *Document) Encode() string {
	var b strings.Builder
	for _, v := range d.Vertices {
		b.WriteString(strconv.Itoa(v.ID))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(v.X, 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(v.Z, 'g', -1, 64))
		b.WriteByte('\n')
	}
	for _, p := range d.Polygons {
		b.WriteString(p.Name)
		for _, id := range p.VertexIDs {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(id))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
