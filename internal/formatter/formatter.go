// internal/formatter/formatter.go
package formatter

import (
	"fmt"
	"strings"
)

// Formatter post-processes generated JavaScript text. It works on the
// emitted lines only and never inspects the AST.
type Formatter struct {
	indentStr string
}

func NewFormatter() *Formatter {
	return &Formatter{
		indentStr: "    ", // 4 spaces
	}
}

// Format re-indents code by scanning brace structure: a leading '}' dedents
// the line it opens, a trailing '{' indents everything after it.
func (f *Formatter) Format(code string) string {
	var out strings.Builder
	indent := 0

	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out.WriteString("\n")
			continue
		}

		if strings.HasPrefix(trimmed, "}") && indent > 0 {
			indent--
		}

		out.WriteString(strings.Repeat(f.indentStr, indent))
		out.WriteString(trimmed)
		out.WriteString("\n")

		if strings.HasSuffix(trimmed, "{") {
			indent++
		}
	}

	return out.String()
}

// Annotate prefixes the generated code with a commentary header listing
// each non-blank line of the original TFI source.
func (f *Formatter) Annotate(code, source string) string {
	var out strings.Builder
	out.WriteString("// Generated from TFI source code\n")
	out.WriteString("// Original source:\n")

	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			out.WriteString(fmt.Sprintf("// %d: %s\n", i+1, trimmed))
		}
	}

	out.WriteString("\n")
	out.WriteString(code)
	return out.String()
}
