// internal/parser/ast.go
package parser

// Expression is a node in the expression tree. The set of variants is
// closed; consumers dispatch with a type switch.
type Expression interface {
	exprNode()
	// Kind returns the expression variant name for diagnostics.
	Kind() string
}

// NumberLiteral is an integer literal.
type NumberLiteral struct {
	Value int
}

// Identifier is a variable reference.
type Identifier struct {
	Name string
}

// StringLiteral holds string text without the surrounding quotes.
type StringLiteral struct {
	Value string
}

// BinaryExpr is a binary operation: left op right.
type BinaryExpr struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (*NumberLiteral) exprNode() {}
func (*Identifier) exprNode()    {}
func (*StringLiteral) exprNode() {}
func (*BinaryExpr) exprNode()    {}

func (*NumberLiteral) Kind() string { return "Number" }
func (*Identifier) Kind() string    { return "Identifier" }
func (*StringLiteral) Kind() string { return "String" }
func (*BinaryExpr) Kind() string    { return "BinaryOp" }
