// Package format rewrites the comments of a source file into canonical
// form while copying every other byte verbatim. Comment layout is the
// only thing it changes; code layout is preserved exactly.
package format

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"quill/internal/comment"
	"quill/internal/markdown"
	"quill/internal/scan"
	"quill/internal/source"
)

// Options configures comment formatting.
type Options struct {
	// MaxLineWidth is the width budget of an output line.
	MaxLineWidth int
	// MaxCommentWidth caps doc-comment prose regardless of remaining room.
	MaxCommentWidth int
	// ReflowDocComments enables markdown reflow of doc line comments.
	ReflowDocComments bool
	// TabWidth is the column width of one tab character.
	TabWidth int
}

func (o Options) withDefaults() Options {
	if o.MaxLineWidth == 0 {
		o.MaxLineWidth = 100
	}
	if o.MaxCommentWidth == 0 {
		o.MaxCommentWidth = 80
	}
	if o.TabWidth == 0 {
		o.TabWidth = 4
	}
	return o
}

type printer struct {
	sf     *source.File
	writer *Writer
	opt    Options
	rewrap comment.RewrapFunc
}

// FormatFile rewrites every comment in sf to its canonical form and
// returns the full file contents. Formatting formatted output is a
// fixed point.
func FormatFile(sf *source.File, opt Options) ([]byte, error) {
	if sf == nil {
		return nil, errors.New("format: nil source file")
	}
	opt = opt.withDefaults()

	toks, err := scan.Comments(sf)
	if err != nil {
		return nil, err
	}

	pr := printer{
		sf:     sf,
		writer: NewWriter(sf),
		opt:    opt,
	}
	if opt.ReflowDocComments {
		pr.rewrap = markdown.Rewrap
	}
	pr.printComments(toks)
	return pr.writer.Bytes(), nil
}

func (p *printer) printComments(toks []scan.Token) {
	contentLen := len(p.sf.Content)
	prev := 0
	for i := 0; i < len(toks); {
		run := p.runLength(toks, i)
		start := int(toks[i].Span.Start)
		if prev < start {
			p.writer.CopyRange(prev, start)
		}
		c := buildComment(toks[i : i+run])
		p.writer.WriteString(c.Render(p.renderContext(toks[i])))
		prev = int(toks[i+run-1].Span.End)
		i += run
	}
	if prev < contentLen {
		p.writer.CopyRange(prev, contentLen)
	}
}

// runLength returns how many tokens starting at i coalesce into one
// logical comment: consecutive line comments of the same kind, each
// alone on its line at identical indentation, separated by exactly one
// newline. Block comments and trailing comments never merge.
func (p *printer) runLength(toks []scan.Token, i int) int {
	first := toks[i]
	if !first.Kind.IsLine() {
		return 1
	}
	lead, own := p.leadingText(first)
	if !own {
		return 1
	}
	n := 1
	for i+n < len(toks) {
		next := toks[i+n]
		if next.Kind != first.Kind {
			break
		}
		gap := string(p.sf.Content[toks[i+n-1].Span.End:next.Span.Start])
		if gap != "\n"+lead {
			break
		}
		n++
	}
	return n
}

// leadingText returns the text between the start of the comment's line
// and the comment itself, and whether the comment is alone on its line.
func (p *printer) leadingText(tok scan.Token) (lead string, ownLine bool) {
	start := int(tok.Span.Start)
	lineStart := start
	for lineStart > 0 && p.sf.Content[lineStart-1] != '\n' {
		lineStart--
	}
	lead = string(p.sf.Content[lineStart:start])
	return lead, strings.TrimLeft(lead, " \t") == ""
}

func buildComment(toks []scan.Token) *comment.Comment {
	c := comment.New(toks[0].Kind, toks[0].Text)
	prefixLen := toks[0].Kind.PrefixLen()
	for _, tok := range toks[1:] {
		c.AddText([]string{tok.Text[prefixLen:]})
	}
	return c
}

func (p *printer) renderContext(first scan.Token) comment.RenderContext {
	lead, own := p.leadingText(first)
	var indent comment.Indent
	if own {
		indent = comment.IndentFrom(lead, p.opt.TabWidth)
	} else {
		// Trailing comment: continuation lines align under the column
		// where the comment starts.
		indent = comment.NewIndent(p.opt.TabWidth, comment.IndentUnit{Kind: comment.Spaces, Count: p.columnOf(lead)})
	}
	return comment.RenderContext{
		Indent:          indent,
		AvailableWidth:  p.opt.MaxLineWidth,
		MaxCommentWidth: p.opt.MaxCommentWidth,
		Reflow:          p.opt.ReflowDocComments,
		Rewrap:          p.rewrap,
	}
}

// columnOf measures the display column where text ends, expanding tabs
// to the next tab stop and using terminal cell widths for everything
// else.
func (p *printer) columnOf(text string) int {
	col := 0
	for _, r := range text {
		if r == '\t' {
			col += p.opt.TabWidth - col%p.opt.TabWidth
		} else {
			col += runewidth.RuneWidth(r)
		}
	}
	return col
}
