package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/crossec/core"
)

// Validate checks text against the cross-section format rules and returns
// every violation found, in scan order followed by the document-level
// cross-checks. See the package documentation for the full rule list.
//
// Validate is a pure function of its input; it never panics and never
// returns a structural error — unparseable content simply yields
// diagnostics.
//
// Complexity: O(len(text) + V·log V) for the sorted aggregate reports.
func Validate(text string) core.Result {
	var errs []string

	declared := make(map[int]bool)  // vertex IDs seen on vertex lines
	used := make(map[int]bool)      // vertex IDs referenced by polygons
	names := make(map[string]bool)  // polygon names seen so far
	blockDirty := false             // a polygon block awaits the ordering check

	for _, ln := range core.Scan(text) {
		switch ln.Kind {
		case core.KindVertex:
			errs = append(errs, checkVertexLine(ln, declared)...)
			// Ordering rule: a vertex line after polygon lines means the
			// vertex block was not contiguous. Fire once per offending
			// polygon block, then re-arm on the next polygon line.
			if len(names) > 0 && blockDirty {
				errs = append(errs, fmt.Sprintf(
					"Polygons %s are defined before all vertices are defined.", nameList(names)))
				blockDirty = false
			}

		case core.KindPolygon:
			errs = append(errs, checkPolygonLine(ln, names, used)...)
			names[ln.Tokens[0]] = true
			blockDirty = true

		default:
			errs = append(errs, fmt.Sprintf("Line %d: unrecognized format: %q.", ln.No, ln.Raw))
		}
	}

	if len(declared) == 0 {
		errs = append(errs, "No vertices are defined.")
	}
	if len(names) == 0 {
		errs = append(errs, "No polygons are defined.")
	}

	// Cross-check: polygons only reference declared vertices.
	for _, id := range sortedIDs(used) {
		if !declared[id] {
			errs = append(errs, fmt.Sprintf("Polygon references undefined vertex ID %d.", id))
		}
	}

	// Cross-check: every declared vertex must be used at least once.
	var unused []int
	for _, id := range sortedIDs(declared) {
		if !used[id] {
			unused = append(unused, id)
		}
	}
	if len(unused) > 0 {
		errs = append(errs, fmt.Sprintf("Vertices never used in any polygon: %v.", unused))
	}

	return core.NewResult(errs)
}

// checkVertexLine validates one KindVertex line: unique ID, parseable
// coordinates. The ID token is all digits by dispatch; Atoi can only fail
// on overflow, which is reported as an invalid ID.
func checkVertexLine(ln core.Line, declared map[int]bool) []string {
	var errs []string

	id, err := strconv.Atoi(ln.Tokens[0])
	if err != nil {
		errs = append(errs, fmt.Sprintf("Line %d: invalid vertex ID %q.", ln.No, ln.Tokens[0]))
	} else {
		if declared[id] {
			errs = append(errs, fmt.Sprintf("Line %d: duplicate vertex ID %d.", ln.No, id))
		}
		declared[id] = true
	}

	if _, err = strconv.ParseFloat(ln.Tokens[1], 64); err != nil {
		errs = append(errs, fmt.Sprintf("Line %d: invalid x-coordinate %q.", ln.No, ln.Tokens[1]))
	}
	if _, err = strconv.ParseFloat(ln.Tokens[2], 64); err != nil {
		errs = append(errs, fmt.Sprintf("Line %d: invalid z-coordinate %q.", ln.No, ln.Tokens[2]))
	}

	return errs
}

// checkPolygonLine validates one KindPolygon line: non-numeric unique
// name, all-digit vertex tokens. Valid tokens are recorded in used.
func checkPolygonLine(ln core.Line, names map[string]bool, used map[int]bool) []string {
	var errs []string

	name := ln.Tokens[0]
	if core.AllDigits(name) {
		errs = append(errs, fmt.Sprintf("Line %d: polygon name %q must not be purely numeric.", ln.No, name))
	}
	if names[name] {
		errs = append(errs, fmt.Sprintf("Line %d: polygon name %q is not unique.", ln.No, name))
	}

	for _, tok := range ln.Tokens[1:] {
		if !core.AllDigits(tok) {
			errs = append(errs, fmt.Sprintf("Line %d: polygon %q has invalid vertex ID %q.", ln.No, name, tok))
			continue
		}
		if id, err := strconv.Atoi(tok); err == nil {
			used[id] = true
		}
	}

	return errs
}

// nameList renders a polygon-name set as a sorted, comma-separated list.
func nameList(names map[string]bool) string {
	list := make([]string, 0, len(names))
	for n := range names {
		list = append(list, n)
	}
	sort.Strings(list)

	return strings.Join(list, ", ")
}

// sortedIDs returns the keys of a vertex-ID set in ascending order.
func sortedIDs(set map[int]bool) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
