package comment

import "strings"

// IndentKind distinguishes the whitespace an indent unit is made of.
type IndentKind uint8

const (
	// Spaces is an indent unit of space characters.
	Spaces IndentKind = iota
	// Tabs is an indent unit of tab characters.
	Tabs
)

// IndentUnit is one level of the indentation stack at the print site.
type IndentUnit struct {
	Kind  IndentKind
	Count int
}

// Indent is the ordered indentation stack active where a comment is
// printed. It renders to literal whitespace and knows its column width.
type Indent struct {
	units    []IndentUnit
	tabWidth int
}

// NewIndent builds an indent from explicit units. tabWidth is the column
// width of one tab; zero falls back to 4.
func NewIndent(tabWidth int, units ...IndentUnit) Indent {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return Indent{units: units, tabWidth: tabWidth}
}

// IndentFrom derives an indent from literal leading whitespace, grouping
// consecutive runs of the same character into units. Bytes other than
// space and tab end the scan.
func IndentFrom(ws string, tabWidth int) Indent {
	in := NewIndent(tabWidth)
	for i := 0; i < len(ws); {
		var kind IndentKind
		switch ws[i] {
		case ' ':
			kind = Spaces
		case '\t':
			kind = Tabs
		default:
			return in
		}
		j := i
		for j < len(ws) && ws[j] == ws[i] {
			j++
		}
		in.units = append(in.units, IndentUnit{Kind: kind, Count: j - i})
		i = j
	}
	return in
}

// String returns the literal whitespace rendering of the indent.
func (in Indent) String() string {
	var b strings.Builder
	for _, u := range in.units {
		switch u.Kind {
		case Spaces:
			b.WriteString(strings.Repeat(" ", u.Count))
		case Tabs:
			b.WriteString(strings.Repeat("\t", u.Count))
		}
	}
	return b.String()
}

// Width returns the column width of the indent with tabs expanded.
func (in Indent) Width() int {
	w := 0
	for _, u := range in.units {
		switch u.Kind {
		case Spaces:
			w += u.Count
		case Tabs:
			w += u.Count * in.tabWidth
		}
	}
	return w
}
