package comment

import "strings"

// RewrapFunc reflows markdown prose to fit a target width. It receives
// the comment body one entry per line and returns the reflowed lines.
// The concrete engine is pluggable; it must renumber ordered lists from
// 1, keep code blocks fenced, keep autolinks angle-bracketed, and wrap
// at word boundaries only.
type RewrapFunc func(lines []string, width int) []string

// RenderContext carries the printing state a comment is rendered against:
// the active indentation, the width still available on the current output
// line, the configured cap on comment prose width, and the reflow switch.
type RenderContext struct {
	Indent          Indent
	AvailableWidth  int
	MaxCommentWidth int
	Reflow          bool
	Rewrap          RewrapFunc
}

// Render produces the canonical printed text for the comment: a single
// string with no trailing newline. It mutates neither the comment nor
// the context.
//
// Only doc line comments are reflowed. Plain comments often hold code or
// deliberate layout, and block comments hold ASCII art and license text,
// so both are preserved verbatim apart from trailing-whitespace cleanup.
func (c *Comment) Render(ctx RenderContext) string {
	prefix := c.Kind.Prefix()
	indent := ctx.Indent.String()

	if c.Kind.IsDoc() && c.Kind.IsLine() && ctx.Reflow && ctx.Rewrap != nil {
		usable := ctx.AvailableWidth - ctx.Indent.Width()
		target := min(usable-c.Kind.PrefixLen(), ctx.MaxCommentWidth)
		out := make([]string, 0, len(c.text))
		for _, line := range ctx.Rewrap(c.text, target) {
			if strings.TrimSpace(line) == "" {
				// Bare prefix: "/// " on an empty line would be visible
				// trailing whitespace.
				out = append(out, prefix)
			} else {
				out = append(out, prefix+" "+line)
			}
		}
		return strings.Join(out, "\n"+indent)
	}

	switch c.Kind {
	case Line, DocLine:
		trimmed := make([]string, len(c.text))
		for i, line := range c.text {
			trimmed[i] = TrimTrailingWhitespace(line)
		}
		return prefix + strings.Join(trimmed, "\n"+indent+prefix)
	case Block, DocBlock:
		return prefix + strings.Join(c.text, "\n") + "*/"
	default:
		return ""
	}
}
