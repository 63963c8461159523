package format_test

import (
	"testing"

	"quill/internal/format"
	"quill/internal/source"
)

func formatSource(t *testing.T, src string, opt format.Options) string {
	t.Helper()

	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("fmt_test.c", []byte(src)))
	out, err := format.FormatFile(sf, opt)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	return string(out)
}

func TestFormatTrimsTrailingWhitespace(t *testing.T) {
	got := formatSource(t, "// hi  \nint x;\n", format.Options{})
	want := "// hi\nint x;\n"
	if got != want {
		t.Fatalf("format mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatLeavesCodeUntouched(t *testing.T) {
	src := "int x = 1;\ns = \"// no\";\nint  y=2 ;\n"
	if got := formatSource(t, src, format.Options{}); got != src {
		t.Fatalf("code changed:\nwant %q\ngot  %q", src, got)
	}
}

func TestFormatNormalizesBlockInterior(t *testing.T) {
	got := formatSource(t, "/* a \n b */\n", format.Options{})
	want := "/* a\n b */\n"
	if got != want {
		t.Fatalf("block mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatTrailingComment(t *testing.T) {
	got := formatSource(t, "int x; // note \n", format.Options{})
	want := "int x; // note\n"
	if got != want {
		t.Fatalf("trailing comment mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatMergesDocRunForReflow(t *testing.T) {
	src := "  /// alpha beta\n  /// gamma\nfn x() {}\n"
	got := formatSource(t, src, format.Options{ReflowDocComments: true})
	want := "  /// alpha beta gamma\nfn x() {}\n"
	if got != want {
		t.Fatalf("merged reflow mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatReflowWrapsLongDocComment(t *testing.T) {
	src := "/// one two three four five six seven\n"
	opt := format.Options{ReflowDocComments: true, MaxLineWidth: 20, MaxCommentWidth: 20}
	got := formatSource(t, src, opt)
	want := "/// one two three\n/// four five six\n/// seven\n"
	if got != want {
		t.Fatalf("reflow mismatch:\nwant %q\ngot  %q", want, got)
	}
}

func TestFormatDoesNotMergeAcrossIndentChange(t *testing.T) {
	src := "// a\n  // b\n"
	if got := formatSource(t, src, format.Options{}); got != src {
		t.Fatalf("indent change merged:\nwant %q\ngot  %q", src, got)
	}
}

func TestFormatDoesNotReflowPlainComments(t *testing.T) {
	src := "// one two three four five six seven eight nine ten\n"
	opt := format.Options{ReflowDocComments: true, MaxLineWidth: 20, MaxCommentWidth: 20}
	if got := formatSource(t, src, opt); got != src {
		t.Fatalf("plain comment reflowed:\nwant %q\ngot  %q", src, got)
	}
}

func TestFormatIdempotent(t *testing.T) {
	src := "/// Does things. With a sentence long enough to wrap around the budget.\n" +
		"///\n" +
		"/// 5. renumber me\n" +
		"fn f() {} // tail \n" +
		"/* block \n art */\n"
	opt := format.Options{ReflowDocComments: true, MaxLineWidth: 40, MaxCommentWidth: 40}

	once := formatSource(t, src, opt)
	twice := formatSource(t, once, opt)
	if once != twice {
		t.Fatalf("format is not a fixed point:\nonce  %q\ntwice %q", once, twice)
	}
}
