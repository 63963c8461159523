package comment

// Kind identifies one of the four comment forms. The set is closed:
// construction and rendering switch over it exhaustively.
type Kind uint8

const (
	// Line is a plain line comment introduced by "//".
	Line Kind = iota
	// DocLine is a documentation line comment introduced by "///".
	DocLine
	// Block is a plain block comment delimited by "/*" and "*/".
	Block
	// DocBlock is a documentation block comment delimited by "/**" and "*/".
	DocBlock
)

// kindPrefixes is the single source of truth for the opening delimiter of
// each kind, shared by construction and rendering.
var kindPrefixes = [...]string{
	Line:     "//",
	DocLine:  "///",
	Block:    "/*",
	DocBlock: "/**",
}

// Prefix returns the literal delimiter that opens the comment kind.
func (k Kind) Prefix() string { return kindPrefixes[k] }

// PrefixLen returns the delimiter length. All delimiters are ASCII, so
// bytes, runes, and columns coincide.
func (k Kind) PrefixLen() int { return len(kindPrefixes[k]) }

// IsLine reports whether the kind is one of the single-line forms.
func (k Kind) IsLine() bool { return k == Line || k == DocLine }

// IsDoc reports whether the kind documents code.
func (k Kind) IsDoc() bool { return k == DocLine || k == DocBlock }

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case DocLine:
		return "doc-line"
	case Block:
		return "block"
	case DocBlock:
		return "doc-block"
	default:
		return "invalid"
	}
}
