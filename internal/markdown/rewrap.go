// Package markdown reflows documentation-comment prose. The body is
// parsed as lightweight markdown and re-rendered against a target width
// with a fixed policy: ordered lists renumber from 1, code blocks are
// always fenced, autolinks stay angle-bracketed, and lines wrap at word
// boundaries only. Reflow is best-effort and always succeeds.
package markdown

import (
	"strings"
	"unicode"

	"github.com/gomarkdown/markdown/parser"
)

// extensions covers what doc comments actually contain. Smart typography
// lives in gomarkdown's HTML renderer, which is never used here, so the
// author's quotes and dashes pass through untouched. BackslashLineBreak
// makes our own forced-break marker round-trip.
const extensions = parser.NoIntraEmphasis |
	parser.FencedCode |
	parser.Autolink |
	parser.Strikethrough |
	parser.SpaceHeadings |
	parser.BackslashLineBreak

// Rewrap reflows the joined lines to fit width columns and returns the
// result one entry per line, free of incidental trailing whitespace.
func Rewrap(lines []string, width int) []string {
	if width < 1 {
		width = 1
	}
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse([]byte(strings.Join(lines, "\n")))
	return postprocess(renderBlocks(children(doc), width))
}

// postprocess rewrites forced line breaks and trims trailing whitespace.
// The renderer encodes a forced break as two trailing spaces; downstream
// tools routinely strip trailing whitespace, so the marker becomes " \"
// instead. All other trailing whitespace is incidental and removed.
func postprocess(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		trimmed := strings.TrimRightFunc(line, unicode.IsSpace)
		if trimmed != "" && endsInTwoSpaces(line) {
			out[i] = trimmed + " \\"
		} else {
			out[i] = trimmed
		}
	}
	return out
}

func endsInTwoSpaces(line string) bool {
	r := []rune(line)
	n := len(r)
	return n >= 2 && unicode.IsSpace(r[n-1]) && unicode.IsSpace(r[n-2])
}
