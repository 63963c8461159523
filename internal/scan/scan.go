// Package scan finds comment tokens in C-family source. It is the token
// source for the comment package: every token it produces carries the
// delimiters its kind requires, so downstream construction can strip
// them without re-validating.
package scan

import (
	"fmt"

	"quill/internal/comment"
	"quill/internal/source"
)

// Token is a single comment occurrence in a source file.
type Token struct {
	Kind comment.Kind
	Span source.Span
	Text string
}

// Comments returns every comment token in the file in source order.
// String and character literals are skipped so comment-looking bytes
// inside them are not reported. The only failure is a block comment left
// open at EOF.
func Comments(sf *source.File) ([]Token, error) {
	var toks []Token
	cur := NewCursor(sf)
	for !cur.EOF() {
		switch cur.Peek() {
		case '"':
			skipStringLiteral(&cur)
		case '\'':
			skipCharLiteral(&cur)
		case '/':
			tok, ok, err := scanComment(&cur, sf)
			if err != nil {
				return nil, err
			}
			if ok {
				toks = append(toks, tok)
			}
		default:
			cur.Bump()
		}
	}
	return toks, nil
}

// scanComment consumes "//…", "///…", "/*…*/", or "/**…*/" starting at
// the cursor. A lone '/' is consumed as ordinary source text.
func scanComment(cur *Cursor, sf *source.File) (Token, bool, error) {
	start := cur.Mark()
	cur.Bump() // '/'

	switch cur.Peek() {
	case '/':
		cur.Bump()
		kind := comment.Line
		// A third slash upgrades to a doc line; further slashes belong
		// to the text.
		if cur.Peek() == '/' {
			cur.Bump()
			kind = comment.DocLine
		}
		for !cur.EOF() && cur.Peek() != '\n' {
			cur.Bump()
		}
		sp := cur.SpanFrom(start)
		return Token{Kind: kind, Span: sp, Text: string(sf.Content[sp.Start:sp.End])}, true, nil

	case '*':
		cur.Bump()
		depth := 1
		for !cur.EOF() && depth > 0 {
			if b0, b1, ok := cur.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					cur.Bump()
					cur.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					cur.Bump()
					cur.Bump()
					depth--
					continue
				}
			}
			cur.Bump()
		}
		sp := cur.SpanFrom(start)
		if depth > 0 {
			line, _ := lineColOf(sf, sp.Start)
			return Token{}, false, fmt.Errorf("%s:%d: unterminated block comment", sf.Path, line)
		}
		text := string(sf.Content[sp.Start:sp.End])
		kind := comment.Block
		// "/**/" is an empty plain block; a doc block needs room for
		// both "/**" and "*/".
		if len(text) >= 5 && text[2] == '*' {
			kind = comment.DocBlock
		}
		return Token{Kind: kind, Span: sp, Text: text}, true, nil

	default:
		// Lone '/', already consumed as ordinary source.
		return Token{}, false, nil
	}
}

// skipStringLiteral consumes a double-quoted literal. Escapes are eaten
// pairwise; a newline ends the literal so a missing close quote cannot
// swallow the rest of the file.
func skipStringLiteral(cur *Cursor) {
	cur.Bump() // opening '"'
	for !cur.EOF() {
		b := cur.Peek()
		if b == '"' {
			cur.Bump()
			return
		}
		if b == '\n' {
			return
		}
		if b == '\\' {
			cur.Bump()
			if cur.EOF() {
				return
			}
		}
		cur.Bump()
	}
}

// skipCharLiteral consumes a single-quoted literal only when a close
// quote appears within a few bytes on the same line. Languages in scope
// also use ' as a prime or lifetime marker, and treating every quote as
// a literal opener would swallow code.
func skipCharLiteral(cur *Cursor) {
	const lookahead = 4
	start := cur.Mark()
	cur.Bump() // opening '\''
	for n := 0; n <= lookahead && !cur.EOF(); n++ {
		b := cur.Peek()
		if b == '\n' {
			break
		}
		if b == '\\' {
			cur.Bump()
			if cur.EOF() {
				break
			}
			cur.Bump()
			continue
		}
		cur.Bump()
		if b == '\'' && n > 0 {
			return
		}
	}
	// No close quote nearby: rewind past the quote alone.
	cur.Reset(start)
	cur.Bump()
}

func lineColOf(sf *source.File, off uint32) (line, col uint32) {
	line = 1
	lineStart := uint32(0)
	for _, nl := range sf.LineIdx {
		if nl >= off {
			break
		}
		line++
		lineStart = nl + 1
	}
	return line, off - lineStart + 1
}
