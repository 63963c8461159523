package markdown

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/muesli/reflow/wordwrap"
)

func children(node ast.Node) []ast.Node {
	return node.GetChildren()
}

// renderBlocks renders sibling blocks separated by blank lines.
func renderBlocks(nodes []ast.Node, width int) []string {
	var out []string
	for _, node := range nodes {
		block := renderBlock(node, width)
		if len(block) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, block...)
	}
	return out
}

func renderBlock(node ast.Node, width int) []string {
	switch n := node.(type) {
	case *ast.Paragraph:
		return renderParagraph(n, width)
	case *ast.Heading:
		return []string{strings.Repeat("#", n.Level) + " " + flattenInlines(n)}
	case *ast.CodeBlock:
		return renderCodeBlock(n)
	case *ast.List:
		return renderList(n, width)
	case *ast.BlockQuote:
		return renderBlockQuote(n, width)
	case *ast.HorizontalRule:
		return []string{"---"}
	case *ast.HTMLBlock:
		return literalLines(n.Literal)
	default:
		// Unknown leaves pass through verbatim; unknown containers are
		// rendered through their children.
		if leaf := node.AsLeaf(); leaf != nil {
			return literalLines(leaf.Literal)
		}
		return renderBlocks(children(node), width)
	}
}

// renderParagraph wraps prose at word boundaries. Forced breaks split the
// paragraph into segments; each segment ends in the two-space marker that
// postprocess later rewrites.
func renderParagraph(node ast.Node, width int) []string {
	segments := inlineSegments(node)
	var out []string
	for i, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		wrapped := strings.Split(wordwrap.String(seg, width), "\n")
		if i < len(segments)-1 {
			wrapped[len(wrapped)-1] += "  "
		}
		out = append(out, wrapped...)
	}
	return out
}

// renderCodeBlock always emits fence syntax, even when the source block
// was indented.
func renderCodeBlock(n *ast.CodeBlock) []string {
	body := strings.TrimRight(string(n.Literal), "\n")
	out := []string{"```" + string(n.Info)}
	if body != "" {
		out = append(out, strings.Split(body, "\n")...)
	}
	return append(out, "```")
}

// renderList renumbers ordered items incrementally from 1 regardless of
// the numbering in the source.
func renderList(n *ast.List, width int) []string {
	ordered := n.ListFlags&ast.ListTypeOrdered != 0
	delim := byte('.')
	if n.Delimiter != 0 {
		delim = n.Delimiter
	}

	var out []string
	num := 0
	for _, child := range children(n) {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		num++

		var marker string
		if ordered {
			marker = fmt.Sprintf("%d%c ", num, delim)
		} else {
			marker = "- "
		}
		cont := strings.Repeat(" ", len(marker))

		if len(out) > 0 && !n.Tight {
			out = append(out, "")
		}
		body := renderBlocks(children(item), width-len(marker))
		if len(body) == 0 {
			out = append(out, strings.TrimRight(marker, " "))
			continue
		}
		for i, line := range body {
			switch {
			case i == 0:
				out = append(out, marker+line)
			case line == "":
				out = append(out, "")
			default:
				out = append(out, cont+line)
			}
		}
	}
	return out
}

func renderBlockQuote(n *ast.BlockQuote, width int) []string {
	inner := renderBlocks(children(n), width-2)
	out := make([]string, len(inner))
	for i, line := range inner {
		if line == "" {
			out[i] = ">"
		} else {
			out[i] = "> " + line
		}
	}
	return out
}

func literalLines(literal []byte) []string {
	body := strings.TrimRight(string(literal), "\n")
	if body == "" {
		return nil
	}
	return strings.Split(body, "\n")
}

// inlineSegments flattens the inline children of a block into prose,
// splitting into a new segment at every forced line break. Soft source
// line breaks become plain spaces.
func inlineSegments(node ast.Node) []string {
	var segs []string
	var b strings.Builder

	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			b.WriteString(collapseSpace(string(t.Literal)))
		case *ast.Code:
			b.WriteByte('`')
			b.Write(t.Literal)
			b.WriteByte('`')
		case *ast.Emph:
			b.WriteByte('*')
			walkAll(t, walk)
			b.WriteByte('*')
		case *ast.Strong:
			b.WriteString("**")
			walkAll(t, walk)
			b.WriteString("**")
		case *ast.Del:
			b.WriteString("~~")
			walkAll(t, walk)
			b.WriteString("~~")
		case *ast.Link:
			writeLink(&b, t, walk)
		case *ast.Image:
			b.WriteString("![")
			walkAll(t, walk)
			b.WriteString("](")
			b.Write(t.Destination)
			b.WriteByte(')')
		case *ast.Hardbreak:
			segs = append(segs, b.String())
			b.Reset()
		case *ast.Softbreak:
			b.WriteByte(' ')
		case *ast.HTMLSpan:
			b.Write(t.Literal)
		default:
			walkAll(n, walk)
		}
	}
	walkAll(node, walk)

	return append(segs, b.String())
}

// collapseSpace rewrites every whitespace run in prose text to a single
// space. Continuation lines arrive with their newline and leading indent
// embedded in the literal; both are layout, not content. Code spans never
// pass through here, so their interior spacing is safe.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	run := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			run = true
			continue
		}
		if run {
			b.WriteByte(' ')
			run = false
		}
		b.WriteRune(r)
	}
	if run {
		b.WriteByte(' ')
	}
	return b.String()
}

// flattenInlines renders inline content as a single unwrapped line,
// used where markdown forbids line breaks (headings).
func flattenInlines(node ast.Node) string {
	return strings.TrimSpace(strings.Join(inlineSegments(node), " "))
}

func walkAll(node ast.Node, walk func(ast.Node)) {
	for _, child := range children(node) {
		walk(child)
	}
}

// writeLink keeps autolinks as <url>, never condensing them to bare URLs
// and never expanding them to [text](url) form.
func writeLink(b *strings.Builder, link *ast.Link, walk func(ast.Node)) {
	dest := string(link.Destination)
	if isAutolink(link) {
		b.WriteByte('<')
		b.WriteString(dest)
		b.WriteByte('>')
		return
	}
	b.WriteByte('[')
	walkAll(link, walk)
	b.WriteString("](")
	b.WriteString(dest)
	if len(link.Title) > 0 {
		b.WriteString(` "`)
		b.Write(link.Title)
		b.WriteByte('"')
	}
	b.WriteByte(')')
}

// isAutolink reports whether the link was parsed from an autolink: a
// single text child spelling the destination, optionally behind a
// mailto: scheme, and no title.
func isAutolink(link *ast.Link) bool {
	if len(link.Title) > 0 {
		return false
	}
	kids := children(link)
	if len(kids) != 1 {
		return false
	}
	text, ok := kids[0].(*ast.Text)
	if !ok {
		return false
	}
	content := string(text.Literal)
	dest := string(link.Destination)
	return content == dest || "mailto:"+content == dest
}
