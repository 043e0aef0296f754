// internal/errors/errors.go
package errors

import (
	"fmt"
	"strings"
)

// ErrorType identifies which stage of the pipeline produced an error.
type ErrorType string

const (
	ParseError      ErrorType = "ParseError"
	ValidationError ErrorType = "ValidationError"
	GenerationError ErrorType = "GenerationError"
	CompileError    ErrorType = "CompileError"
)

// Error is a diagnostic with source location information.
type Error struct {
	Type       ErrorType
	Message    string
	Line       int
	Column     int
	SourceLine string // The source line where the error occurred
	Suggestion string
	Context    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	switch e.Type {
	case ParseError:
		sb.WriteString(fmt.Sprintf("Parse Error at line %d, column %d\n", e.Line, e.Column))
	case ValidationError:
		sb.WriteString("Validation Error")
		if e.Line > 0 {
			sb.WriteString(fmt.Sprintf(" at statement %d", e.Line))
		}
		sb.WriteString("\n")
	case GenerationError:
		sb.WriteString("Generation Error\n")
	default:
		sb.WriteString("Compilation Error\n")
	}

	sb.WriteString(fmt.Sprintf("  %s\n", e.Message))

	// Offending source line with a caret under the column.
	if e.SourceLine != "" {
		sb.WriteString(fmt.Sprintf("  %d | %s\n", e.Line, e.SourceLine))
		sb.WriteString("  " + strings.Repeat(" ", len(fmt.Sprintf("%d | ", e.Line))))
		if e.Column > 1 {
			sb.WriteString(strings.Repeat(" ", e.Column-1))
		}
		sb.WriteString("^\n")
	}

	if e.Context != "" {
		sb.WriteString(fmt.Sprintf("  Context: %s\n", e.Context))
	}
	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// NewParseError creates a parse error at the given location.
func NewParseError(message string, line, column int) *Error {
	return &Error{
		Type:    ParseError,
		Message: message,
		Line:    line,
		Column:  column,
	}
}

// NewValidationError creates a validation error at the given statement ordinal.
func NewValidationError(message string, statement int) *Error {
	return &Error{
		Type:    ValidationError,
		Message: message,
		Line:    statement,
	}
}

// NewCompileError creates a general compilation error.
func NewCompileError(message string) *Error {
	return &Error{
		Type:    CompileError,
		Message: message,
	}
}

// WithSource adds the offending source line to the error.
func (e *Error) WithSource(source string) *Error {
	e.SourceLine = source
	return e
}

// WithSuggestion attaches an advisory hint to the error.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// WithContext attaches explanatory context to the error.
func (e *Error) WithContext(context string) *Error {
	e.Context = context
	return e
}
