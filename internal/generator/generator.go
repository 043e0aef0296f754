// internal/generator/generator.go
package generator

import (
	"fmt"
	"strconv"
	"strings"

	"tfi/internal/parser"
)

// Generate emits JavaScript for a whole program, one top-level construct
// per line. It assumes a validated tree and never fails.
func Generate(program []parser.Statement) string {
	lines := make([]string, 0, len(program))
	for _, stmt := range program {
		lines = append(lines, GenerateStatement(stmt))
	}
	return strings.Join(lines, "\n")
}

// GenerateStatement emits JavaScript for a single statement.
func GenerateStatement(stmt parser.Statement) string {
	switch s := stmt.(type) {
	case *parser.PrintStmt:
		args := make([]string, len(s.Args))
		for i, arg := range s.Args {
			args[i] = GenerateExpression(arg)
		}
		return fmt.Sprintf("console.log(%s);", strings.Join(args, ", "))
	case *parser.ConstStmt:
		return fmt.Sprintf("const %s = %s;", s.Name, GenerateExpression(s.Value))
	case *parser.LetStmt:
		return fmt.Sprintf("let %s = %s;", s.Name, GenerateExpression(s.Value))
	case *parser.IfStmt:
		out := fmt.Sprintf("if (%s) {\n%s\n}", GenerateExpression(s.Condition), generateBlock(s.Then))
		if s.Else != nil {
			out += fmt.Sprintf(" else {\n%s\n}", generateBlock(s.Else))
		}
		return out
	case *parser.WhileStmt:
		return fmt.Sprintf("while (%s) {\n%s\n}", GenerateExpression(s.Condition), generateBlock(s.Body))
	case *parser.ForStmt:
		// The init statement carries its own terminator; strip it so the
		// header reads `for (let i = 0; ...)`.
		init := strings.TrimRight(GenerateStatement(s.Init), ";")
		return fmt.Sprintf("for (%s; %s; %s) {\n%s\n}",
			init,
			GenerateExpression(s.Condition),
			GenerateExpression(s.Update),
			generateBlock(s.Body))
	}
	return ""
}

// GenerateExpression emits JavaScript for an expression. Binary operations
// are parenthesized at every level, so the output is precedence-safe no
// matter how the input grammar grouped its operands.
func GenerateExpression(expr parser.Expression) string {
	switch e := expr.(type) {
	case *parser.NumberLiteral:
		return strconv.Itoa(e.Value)
	case *parser.Identifier:
		return e.Name
	case *parser.StringLiteral:
		return fmt.Sprintf("%q", e.Value)
	case *parser.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", GenerateExpression(e.Left), e.Operator, GenerateExpression(e.Right))
	}
	return ""
}

func generateBlock(stmts []parser.Statement) string {
	lines := make([]string, len(stmts))
	for i, stmt := range stmts {
		lines[i] = GenerateStatement(stmt)
	}
	return strings.Join(lines, "\n")
}

// GenerateIndented emits a statement with every line prefixed by the given
// number of 4-space indent units.
func GenerateIndented(stmt parser.Statement, level int) string {
	indent := strings.Repeat("    ", level)
	lines := strings.Split(GenerateStatement(stmt), "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
