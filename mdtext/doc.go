// Package mdtext provides the two text-hygiene filters wrapped around the
// validation engine: stripping Markdown code fences from candidate text
// before parsing, and re-leveling Markdown headings in generated reports.
//
// StripFences is a total string transform with no failure mode.
// NormalizeHeaders fails only on a target level outside 1..6
// (ErrHeaderLevel) or input without any heading (ErrNoHeaders).
//
// Both functions are pure and safe for concurrent use.
package mdtext
