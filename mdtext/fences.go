package mdtext

import (
	"regexp"
	"strings"
)

var (
	// fullFence matches input that is entirely one fenced block, with an
	// optional language tag after the opening fence.
	fullFence = regexp.MustCompile("(?s)^\\s*```[^\n]*\n(.*?)\n```\\s*$")

	// openFence matches a stray opening fence with an optional language tag.
	openFence = regexp.MustCompile("```[a-zA-Z0-9]*\n?")
)

// StripFences removes Markdown code-fence markers from text.
//
// If the whole input is one fenced block (optional language tag), the
// block is unwrapped. Any stray opening fences and remaining closing
// markers are then removed, and the result is trimmed. Total function:
// every input yields some output.
func StripFences(text string) string {
	if m := fullFence.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	// stray opening fences, then bare closing markers
	text = openFence.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "```", "")

	return strings.TrimSpace(text)
}
