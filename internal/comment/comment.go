// Package comment normalizes and re-renders source comments: plain and
// documentation line comments, plain and documentation block comments.
// Raw tokens come from the scanner with their delimiters verified; a
// token that does not carry the delimiters its kind requires is a caller
// bug, not a runtime error.
package comment

import (
	"strings"
	"unicode/utf8"
)

// Comment is a normalized comment: delimiters stripped, one entry per
// source line, plus a running account of its printed width in runes.
type Comment struct {
	Kind   Kind
	text   []string
	length int
}

// New builds a Comment from a raw token of the given kind.
//
// Line kinds keep a single entry with the prefix removed. Block kinds drop
// the opening prefix and the closing "*/", split on newlines preserving
// blank lines, and trim trailing whitespace from every line except the
// last: trailing space there separates the body from the closing
// delimiter and stays visible in the output.
func New(kind Kind, raw string) *Comment {
	c := &Comment{Kind: kind}
	prefixLen := kind.PrefixLen()

	switch kind {
	case Line, DocLine:
		line := raw[prefixLen:]
		c.text = []string{line}
		c.length = utf8.RuneCountInString(line) + prefixLen + 1

	case Block, DocBlock:
		body := raw[prefixLen : len(raw)-2]
		lines := strings.Split(body, "\n")
		for i := range lines[:len(lines)-1] {
			lines[i] = TrimTrailingWhitespace(lines[i])
		}
		c.text = lines
		for _, line := range lines {
			c.length += utf8.RuneCountInString(line)
		}
		c.length += prefixLen + 3
	}
	return c
}

// AddText appends lines from later comments merged into this one, keeping
// the length accounting identical to construction: merging n tokens is
// equivalent to having constructed the comment from all their lines.
// Single-writer: callers must not merge the same comment concurrently.
func (c *Comment) AddText(lines []string) {
	prefixLen := c.Kind.PrefixLen()
	for _, line := range lines {
		c.text = append(c.text, line)
		c.length += utf8.RuneCountInString(line) + prefixLen + 1
	}
}

// Lines returns the stored lines. The slice is owned by the comment and
// must not be mutated.
func (c *Comment) Lines() []string { return c.text }

// Length returns the comment's printed rune footprint, maintained
// incrementally by construction and merge.
func (c *Comment) Length() int { return c.length }
