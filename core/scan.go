package core

import "strings"

// Kind classifies a significant (non-blank, non-comment) physical line.
type Kind int

const (
	// KindVertex is a line of exactly 3 tokens whose first is all ASCII digits.
	KindVertex Kind = iota

	// KindPolygon is any other line of 2 or more tokens. The name token may
	// still be invalid (purely numeric, multiple '^') — classification and
	// validation are separate concerns.
	KindPolygon

	// KindUnknown is a single-token line; it matches neither shape.
	KindUnknown
)

// Line is one significant physical line of a cross-section text.
type Line struct {
	No     int      // 1-based physical line number
	Raw    string   // content after comment stripping and trimming
	Tokens []string // whitespace-split fields of Raw
	Kind   Kind
}

// Scan splits text into significant lines and classifies each one.
//
// Per physical line: everything from the first '#' on is dropped,
// surrounding whitespace is trimmed, and empty results are skipped
// entirely (they do not appear in the output).
//
// Scan is the single dispatch rule shared by Parse and by the format
// validator; keeping it in one place guarantees the fail-fast and the
// accumulate-all passes agree on every edge case.
//
// Complexity: O(len(text)).
func Scan(text string) []Line {
	var lines []Line
	for no, raw := range strings.Split(text, "\n") {
		if i := strings.IndexByte(raw, '#'); i >= 0 {
			raw = raw[:i]
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		tokens := strings.Fields(raw)
		kind := KindUnknown
		switch {
		case len(tokens) == 3 && AllDigits(tokens[0]):
			kind = KindVertex
		case len(tokens) >= 2:
			kind = KindPolygon
		}
		lines = append(lines, Line{No: no + 1, Raw: raw, Tokens: tokens, Kind: kind})
	}

	return lines
}

// AllDigits reports whether s is non-empty and consists solely of ASCII
// digits. This is the numeric-lexeme test of the line grammar: it decides
// vertex-line dispatch and the "purely numeric polygon name" rule.
func AllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
