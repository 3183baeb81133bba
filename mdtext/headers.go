package mdtext

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Sentinel errors for header normalization.
var (
	// ErrHeaderLevel indicates the target level is outside 1..6.
	ErrHeaderLevel = errors.New("mdtext: target header level must be between 1 and 6")

	// ErrNoHeaders indicates the input contains no Markdown headings.
	ErrNoHeaders = errors.New("mdtext: no Markdown headers found")
)

// header matches one heading line: optional leading whitespace, 1–6 '#',
// then at least one whitespace character before the title.
var header = regexp.MustCompile(`(?m)^(\s*)(#{1,6})(\s+.*)$`)

// NormalizeHeaders shifts every Markdown heading in md by a constant
// offset so the shallowest heading ends up at the requested level.
// Shifted levels are clamped to the Markdown range 1..6.
//
// Fails with ErrHeaderLevel when level is outside 1..6 and with
// ErrNoHeaders when md contains no heading at all.
func NormalizeHeaders(md string, level int) (string, error) {
	if level < 1 || level > 6 {
		return "", fmt.Errorf("got %d: %w", level, ErrHeaderLevel)
	}

	matches := header.FindAllStringSubmatch(md, -1)
	if len(matches) == 0 {
		return "", ErrNoHeaders
	}

	minLevel := 6
	for _, m := range matches {
		if l := len(m[2]); l < minLevel {
			minLevel = l
		}
	}
	offset := level - minLevel

	out := header.ReplaceAllStringFunc(md, func(line string) string {
		m := header.FindStringSubmatch(line)
		n := len(m[2]) + offset
		if n < 1 {
			n = 1
		}
		if n > 6 {
			n = 6
		}

		return m[1] + strings.Repeat("#", n) + m[3]
	})

	return out, nil
}
