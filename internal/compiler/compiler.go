// internal/compiler/compiler.go
package compiler

import (
	"fmt"

	"tfi/internal/errors"
	"tfi/internal/formatter"
	"tfi/internal/generator"
	"tfi/internal/parser"
	"tfi/internal/validator"
)

// Result holds the output of one compile invocation.
type Result struct {
	// Generated JavaScript code
	Code string
	// Advisory warnings; these never block compilation
	Warnings []string
	// Number of top-level statements compiled
	StatementCount int
}

func NewResult(code string, statementCount int) *Result {
	return &Result{Code: code, StatementCount: statementCount}
}

func (r *Result) AddWarning(warning string) {
	r.Warnings = append(r.Warnings, warning)
}

func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

func (r *Result) WarningCount() int {
	return len(r.Warnings)
}

// Options controls output post-processing. StrictMode and Minify are
// accepted but have no effect yet.
type Options struct {
	FormatOutput bool
	AddComments  bool
	StrictMode   bool
	Minify       bool
}

func NewOptions() Options {
	return Options{}
}

func (o Options) WithFormatting() Options {
	o.FormatOutput = true
	return o
}

func (o Options) WithComments() Options {
	o.AddComments = true
	return o
}

func (o Options) WithStrictMode() Options {
	o.StrictMode = true
	return o
}

func (o Options) WithMinification() Options {
	o.Minify = true
	return o
}

// Compile translates TFI source code to JavaScript.
func Compile(source string) (string, error) {
	result, err := CompileWithDetails(source)
	if err != nil {
		return "", err
	}
	return result.Code, nil
}

// CompileWithDetails runs the full pipeline — parse, validate, generate —
// and returns the generated code together with warnings and statistics.
// No artifact is produced when any stage fails.
func CompileWithDetails(source string) (*Result, error) {
	program, err := parser.ParseProgram(source)
	if err != nil {
		return nil, errors.NewCompileError(fmt.Sprintf("Failed to parse TFI code: %s", err)).
			WithContext("The parser has already produced detailed error information above")
	}

	if err := validator.Validate(program); err != nil {
		return nil, errors.NewValidationError(fmt.Sprintf("Validation failed: %s", err), 0)
	}

	code := generator.Generate(program)

	result := NewResult(code, len(program))
	addCompilationWarnings(program, result)
	return result, nil
}

// CompileWithOptions compiles and then applies output post-processing.
func CompileWithOptions(source string, options Options) (*Result, error) {
	result, err := CompileWithDetails(source)
	if err != nil {
		return nil, err
	}

	f := formatter.NewFormatter()
	if options.FormatOutput {
		result.Code = f.Format(result.Code)
	}
	if options.AddComments {
		result.Code = f.Annotate(result.Code, source)
	}
	return result, nil
}

// addCompilationWarnings scans top-level statements for patterns worth
// flagging: oversized print calls and long loop bodies.
func addCompilationWarnings(program []parser.Statement, result *Result) {
	for i, stmt := range program {
		switch s := stmt.(type) {
		case *parser.PrintStmt:
			if len(s.Args) > 5 {
				result.AddWarning(fmt.Sprintf(
					"Statement %d: Print statement has %d arguments, consider breaking it up",
					i+1, len(s.Args)))
			}
		case *parser.WhileStmt:
			if len(s.Body) > 10 {
				result.AddWarning(fmt.Sprintf(
					"Statement %d: While loop has %d statements, consider refactoring",
					i+1, len(s.Body)))
			}
		case *parser.ForStmt:
			if len(s.Body) > 10 {
				result.AddWarning(fmt.Sprintf(
					"Statement %d: For loop has %d statements, consider refactoring",
					i+1, len(s.Body)))
			}
		}
	}
}
