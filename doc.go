// Package crossec is a parse-and-validate engine for plain-text 2-D
// geological cross-sections — numbered vertices plus named polygons that
// together must tile the section's bounding rectangle exactly.
//
// 🚀 What is crossec?
//
//	A stateless, pure-Go validation core that brings together:
//		• Line-format parsing: vertices (id x z) and polygons (name id...)
//		• Fail-fast parsing vs. accumulate-everything format validation
//		• Planar geometry construction with ring-simplicity checks
//		• Topology validation: duplicate points, containment, overlaps,
//		  gap/leak analysis and exact-rectangle tiling
//		• Text hygiene: Markdown code-fence stripping & header leveling
//
// ✨ Why choose crossec?
//
//   - Deterministic – same input, same result, diagnostics in stable order
//   - Complete reports – validators return every violation in one pass
//   - Pure Go core – no I/O, no globals, safe for concurrent callers
//   - Honest errors – sentinel errors, errors.Is branching, no silent failures
//
// Everything is organized under five subpackages:
//
//	core/     — Vertex, Polygon, Document, line scanner, Parse & Encode
//	format/   — lexical/structural validation of the section text
//	planar/   — planar polygon construction & membership sets
//	topology/ — geometric invariant checks against the bounding rectangle
//	mdtext/   — pre/post text filters (code fences, header levels)
//
// Quick ASCII example:
//
//	4───────3
//	│ upper │
//	2───────5
//	│ lower │
//	1───────6
//
//	a cross-section is valid when its bodies tile the rectangle
//	spanned by the extreme coordinates — no gaps, no overlaps.
//
// Dive into each package's doc.go for the exact contracts, and into
// examples/ for runnable end-to-end walkthroughs.
//
//	go get github.com/katalvlaran/crossec
package crossec
