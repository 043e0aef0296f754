// internal/parser/stmt.go
package parser

// Statement is a node in the statement tree. Blocks own their children
// exclusively; the tree has no sharing and no cycles.
type Statement interface {
	stmtNode()
	// Kind returns the statement variant name for stats and diagnostics.
	Kind() string
}

// PrintStmt is a print statement: bahubali(expr1, expr2, ...).
type PrintStmt struct {
	Args []Expression
}

// ConstStmt is a constant declaration: rrr name = value;
type ConstStmt struct {
	Name  string
	Value Expression
}

// LetStmt is a mutable declaration: pushpa name = value;
type LetStmt struct {
	Name  string
	Value Expression
}

// IfStmt is a conditional: magadheera(cond) { ... } karthikeya { ... }.
// Else is nil when no karthikeya block is present.
type IfStmt struct {
	Condition Expression
	Then      []Statement
	Else      []Statement
}

// WhileStmt is a loop: pokiri(cond) { ... }.
type WhileStmt struct {
	Condition Expression
	Body      []Statement
}

// ForStmt is a three-clause loop: eega(init; cond; update) { ... }.
// Init is a full statement, typically a declaration.
type ForStmt struct {
	Init      Statement
	Condition Expression
	Update    Expression
	Body      []Statement
}

func (*PrintStmt) stmtNode() {}
func (*ConstStmt) stmtNode() {}
func (*LetStmt) stmtNode()   {}
func (*IfStmt) stmtNode()    {}
func (*WhileStmt) stmtNode() {}
func (*ForStmt) stmtNode()   {}

func (*PrintStmt) Kind() string { return "Print" }
func (*ConstStmt) Kind() string { return "Const" }
func (*LetStmt) Kind() string   { return "Let" }
func (*IfStmt) Kind() string    { return "If" }
func (*WhileStmt) Kind() string { return "While" }
func (*ForStmt) Kind() string   { return "For" }
