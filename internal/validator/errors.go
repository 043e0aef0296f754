// internal/validator/errors.go
package validator

import (
	"fmt"
	"strings"
)

// ErrorKind enumerates every validation failure the walker can report.
// The set is closed.
type ErrorKind int

const (
	EmptyPrintStatement ErrorKind = iota
	EmptyIdentifier
	EmptyBlock
	InvalidExpression
	DuplicateVariable
	UndefinedVariable
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyPrintStatement:
		return "EmptyPrintStatement"
	case EmptyIdentifier:
		return "EmptyIdentifier"
	case EmptyBlock:
		return "EmptyBlock"
	case InvalidExpression:
		return "InvalidExpression"
	case DuplicateVariable:
		return "DuplicateVariable"
	case UndefinedVariable:
		return "UndefinedVariable"
	}
	return "Unknown"
}

// Error is a validation failure with enough context to render a suggestion.
// Statement is the 1-based ordinal of the top-level statement it was found
// under (for DuplicateVariable, the ordinal of the original declaration).
type Error struct {
	Kind      ErrorKind
	Statement int
	Name      string // variable name, when relevant
	Construct string // TFI keyword of the offending construct
	Detail    string // extra message text for InvalidExpression
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Validation Error at statement %d\n", e.Statement))

	switch e.Kind {
	case EmptyPrintStatement:
		sb.WriteString("  bahubali() requires at least one argument\n")
		sb.WriteString("  Suggestion: bahubali(\"Hello, world!\");\n")
	case EmptyIdentifier:
		sb.WriteString(fmt.Sprintf("  %s declaration requires a valid identifier\n", e.Construct))
		sb.WriteString(fmt.Sprintf("  Suggestion: %s variable_name = value;\n", e.Construct))
	case EmptyBlock:
		sb.WriteString(fmt.Sprintf("  %s block cannot be empty\n", e.Construct))
		sb.WriteString(fmt.Sprintf("  Suggestion: %s (condition) { bahubali(\"action\"); }\n", e.Construct))
	case InvalidExpression:
		sb.WriteString(fmt.Sprintf("  %s\n", e.Detail))
	case DuplicateVariable:
		sb.WriteString(fmt.Sprintf("  Variable '%s' is already declared\n", e.Name))
		sb.WriteString("  Suggestion: Use a different variable name or redeclare with 'pushpa'\n")
	case UndefinedVariable:
		sb.WriteString(fmt.Sprintf("  Variable '%s' is not defined\n", e.Name))
		sb.WriteString(fmt.Sprintf("  Suggestion: Declare the variable first with 'rrr %s = value;' or 'pushpa %s = value;'\n", e.Name, e.Name))
	}

	return sb.String()
}
