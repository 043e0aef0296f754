package formatter

import (
	"strings"
	"testing"
)

func TestFormatIndentsNestedBlocks(t *testing.T) {
	input := "if ((x > 0)) {\n" +
		`console.log("positive");` + "\n" +
		"} else {\n" +
		`console.log("negative");` + "\n" +
		"}"
	want := "if ((x > 0)) {\n" +
		`    console.log("positive");` + "\n" +
		"} else {\n" +
		`    console.log("negative");` + "\n" +
		"}\n"

	f := NewFormatter()
	if got := f.Format(input); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatDeeplyNested(t *testing.T) {
	input := "while ((i < 10)) {\n" +
		"if ((i > 5)) {\n" +
		"console.log(i);\n" +
		"}\n" +
		"}"
	want := "while ((i < 10)) {\n" +
		"    if ((i > 5)) {\n" +
		"        console.log(i);\n" +
		"    }\n" +
		"}\n"

	if got := NewFormatter().Format(input); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatLeavesFlatCodeAlone(t *testing.T) {
	input := "const x = 10;\nlet y = 5;"
	want := "const x = 10;\nlet y = 5;\n"
	if got := NewFormatter().Format(input); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAnnotatePrependsSourceListing(t *testing.T) {
	code := "const x = 10;"
	source := "rrr x = 10;"

	got := NewFormatter().Annotate(code, source)
	if !strings.HasPrefix(got, "// Generated from TFI source code\n") {
		t.Errorf("missing header: %q", got)
	}
	if !strings.Contains(got, "// 1: rrr x = 10;") {
		t.Errorf("missing numbered source line: %q", got)
	}
	if !strings.HasSuffix(got, code) {
		t.Errorf("code should follow the commentary: %q", got)
	}
}

func TestAnnotateSkipsBlankSourceLines(t *testing.T) {
	source := "rrr x = 1;\n\nbahubali(x);"
	got := NewFormatter().Annotate("const x = 1;", source)

	if !strings.Contains(got, "// 1: rrr x = 1;") {
		t.Errorf("first line missing: %q", got)
	}
	// The blank line keeps its number but is not listed.
	if !strings.Contains(got, "// 3: bahubali(x);") {
		t.Errorf("third line missing: %q", got)
	}
	if strings.Contains(got, "// 2:") {
		t.Errorf("blank line should not be listed: %q", got)
	}
}
