package comment_test

import (
	"slices"
	"testing"

	"quill/internal/comment"
)

func TestKindTables(t *testing.T) {
	cases := []struct {
		kind      comment.Kind
		prefix    string
		prefixLen int
	}{
		{comment.Line, "//", 2},
		{comment.DocLine, "///", 3},
		{comment.Block, "/*", 2},
		{comment.DocBlock, "/**", 3},
	}
	for _, tc := range cases {
		if got := tc.kind.Prefix(); got != tc.prefix {
			t.Errorf("%s prefix:\nwant %q\ngot  %q", tc.kind, tc.prefix, got)
		}
		if got := tc.kind.PrefixLen(); got != tc.prefixLen {
			t.Errorf("%s prefix length: want %d got %d", tc.kind, tc.prefixLen, got)
		}
	}
}

func TestNewLineComment(t *testing.T) {
	c := comment.New(comment.Line, "// hello ")
	if !slices.Equal(c.Lines(), []string{" hello "}) {
		t.Fatalf("line text mismatch: got %q", c.Lines())
	}
	// 7 runes of text + 2 prefix + 1
	if got := c.Length(); got != 10 {
		t.Fatalf("length: want 10 got %d", got)
	}
}

func TestNewDocLineComment(t *testing.T) {
	c := comment.New(comment.DocLine, "///doc")
	if !slices.Equal(c.Lines(), []string{"doc"}) {
		t.Fatalf("doc line text mismatch: got %q", c.Lines())
	}
	// 3 runes of text + 3 prefix + 1
	if got := c.Length(); got != 7 {
		t.Fatalf("length: want 7 got %d", got)
	}
}

func TestNewBlockTrimsAllButLastLine(t *testing.T) {
	c := comment.New(comment.Block, "/* a \n b */")
	// Trailing whitespace goes from every line except the last, where it
	// separates the body from the closing delimiter.
	if !slices.Equal(c.Lines(), []string{" a", " b "}) {
		t.Fatalf("block text mismatch: got %q", c.Lines())
	}
	// 2 + 3 text runes + 2 prefix + 3
	if got := c.Length(); got != 10 {
		t.Fatalf("length: want 10 got %d", got)
	}
}

func TestNewBlockKeepsBlankLines(t *testing.T) {
	c := comment.New(comment.Block, "/*a\n\nb*/")
	if !slices.Equal(c.Lines(), []string{"a", "", "b"}) {
		t.Fatalf("blank interior lines must be preserved: got %q", c.Lines())
	}
}

func TestDocBlockRoundTrip(t *testing.T) {
	raw := "/** hello\nworld */"
	c := comment.New(comment.DocBlock, raw)
	if !slices.Equal(c.Lines(), []string{" hello", "world "}) {
		t.Fatalf("doc block text mismatch: got %q", c.Lines())
	}
	if got := c.Render(comment.RenderContext{}); got != raw {
		t.Fatalf("doc block round trip:\nwant %q\ngot  %q", raw, got)
	}
}

func TestAddTextAccounting(t *testing.T) {
	c := comment.New(comment.Line, "//a")
	l0 := c.Length()

	c.AddText([]string{"x"})
	if !slices.Equal(c.Lines(), []string{"a", "x"}) {
		t.Fatalf("merged text mismatch: got %q", c.Lines())
	}
	if got, want := c.Length(), l0+1+2+1; got != want {
		t.Fatalf("merged length: want %d got %d", want, got)
	}
}

func TestMergeMatchesConstruction(t *testing.T) {
	// Appending lines one at a time must account identically to a
	// comment that started with all lines.
	merged := comment.New(comment.DocLine, "/// one")
	merged.AddText([]string{" two"})
	merged.AddText([]string{" three"})

	whole := comment.New(comment.DocLine, "/// one")
	whole.AddText([]string{" two", " three"})

	if merged.Length() != whole.Length() {
		t.Fatalf("length diverged: %d vs %d", merged.Length(), whole.Length())
	}
	if !slices.Equal(merged.Lines(), whole.Lines()) {
		t.Fatalf("text diverged: %q vs %q", merged.Lines(), whole.Lines())
	}
}
