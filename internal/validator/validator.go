// internal/validator/validator.go
package validator

import (
	"fmt"

	"tfi/internal/parser"
)

// DeclKind distinguishes rrr from pushpa bindings.
type DeclKind int

const (
	DeclConst DeclKind = iota
	DeclLet
)

func (k DeclKind) String() string {
	if k == DeclConst {
		return "rrr"
	}
	return "pushpa"
}

type binding struct {
	kind DeclKind
	stmt int // 1-based ordinal of the declaring top-level statement
}

// Context tracks the bindings visible in one lexical scope. Nested blocks
// receive independent copies, so inner declarations never leak out and
// sibling blocks never see each other.
type Context struct {
	vars map[string]binding
}

func NewContext() *Context {
	return &Context{vars: make(map[string]binding)}
}

// Clone returns an independent copy of the context for a nested block.
func (c *Context) Clone() *Context {
	vars := make(map[string]binding, len(c.vars))
	for name, b := range c.vars {
		vars[name] = b
	}
	return &Context{vars: vars}
}

// Declare registers a binding. Redeclaring a rrr-bound name with pushpa is
// permitted shadowing; every other redeclaration is a duplicate, reported
// against the original declaration's ordinal.
func (c *Context) Declare(name string, stmt int, kind DeclKind) error {
	if existing, ok := c.vars[name]; ok {
		if existing.kind == DeclConst && kind == DeclLet {
			c.vars[name] = binding{kind: kind, stmt: stmt}
			return nil
		}
		return &Error{Kind: DuplicateVariable, Statement: existing.stmt, Name: name}
	}
	c.vars[name] = binding{kind: kind, stmt: stmt}
	return nil
}

// Declared reports whether a name is visible in this scope.
func (c *Context) Declared(name string) bool {
	_, ok := c.vars[name]
	return ok
}

// Validate walks the program and returns the first error found, or nil.
// Each top-level statement is numbered 1..n and that ordinal is used as the
// reported position for everything nested beneath it.
func Validate(program []parser.Statement) error {
	ctx := NewContext()
	for i, stmt := range program {
		if err := validateStatement(stmt, i+1, ctx); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAll collects one error per failing top-level statement instead of
// stopping at the first. It returns nil when the program is valid.
func ValidateAll(program []parser.Statement) []error {
	ctx := NewContext()
	var errs []error
	for i, stmt := range program {
		if err := validateStatement(stmt, i+1, ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func validateStatement(stmt parser.Statement, pos int, ctx *Context) error {
	switch s := stmt.(type) {
	case *parser.PrintStmt:
		if len(s.Args) == 0 {
			return &Error{Kind: EmptyPrintStatement, Statement: pos}
		}
		for _, arg := range s.Args {
			if err := validateExpression(arg, pos, ctx); err != nil {
				return err
			}
		}
	case *parser.ConstStmt:
		if s.Name == "" {
			return &Error{Kind: EmptyIdentifier, Statement: pos, Construct: "rrr"}
		}
		if err := ctx.Declare(s.Name, pos, DeclConst); err != nil {
			return err
		}
		return validateExpression(s.Value, pos, ctx)
	case *parser.LetStmt:
		if s.Name == "" {
			return &Error{Kind: EmptyIdentifier, Statement: pos, Construct: "pushpa"}
		}
		if err := ctx.Declare(s.Name, pos, DeclLet); err != nil {
			return err
		}
		return validateExpression(s.Value, pos, ctx)
	case *parser.IfStmt:
		if err := validateExpression(s.Condition, pos, ctx); err != nil {
			return err
		}
		if len(s.Then) == 0 {
			return &Error{Kind: EmptyBlock, Statement: pos, Construct: "magadheera"}
		}
		thenCtx := ctx.Clone()
		for _, inner := range s.Then {
			if err := validateStatement(inner, pos, thenCtx); err != nil {
				return err
			}
		}
		if s.Else != nil {
			if len(s.Else) == 0 {
				return &Error{Kind: EmptyBlock, Statement: pos, Construct: "karthikeya"}
			}
			elseCtx := ctx.Clone()
			for _, inner := range s.Else {
				if err := validateStatement(inner, pos, elseCtx); err != nil {
					return err
				}
			}
		}
	case *parser.WhileStmt:
		if err := validateExpression(s.Condition, pos, ctx); err != nil {
			return err
		}
		if len(s.Body) == 0 {
			return &Error{Kind: EmptyBlock, Statement: pos, Construct: "pokiri"}
		}
		bodyCtx := ctx.Clone()
		for _, inner := range s.Body {
			if err := validateStatement(inner, pos, bodyCtx); err != nil {
				return err
			}
		}
	case *parser.ForStmt:
		// The init clause binds in the outer scope so the loop variable is
		// visible to the condition, the update and the body.
		if err := validateStatement(s.Init, pos, ctx); err != nil {
			return err
		}
		if err := validateExpression(s.Condition, pos, ctx); err != nil {
			return err
		}
		if err := validateExpression(s.Update, pos, ctx); err != nil {
			return err
		}
		if len(s.Body) == 0 {
			return &Error{Kind: EmptyBlock, Statement: pos, Construct: "eega"}
		}
		bodyCtx := ctx.Clone()
		for _, inner := range s.Body {
			if err := validateStatement(inner, pos, bodyCtx); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateExpression(expr parser.Expression, pos int, ctx *Context) error {
	switch e := expr.(type) {
	case *parser.NumberLiteral, *parser.StringLiteral:
		return nil
	case *parser.Identifier:
		if !ctx.Declared(e.Name) {
			return &Error{Kind: UndefinedVariable, Statement: pos, Name: e.Name}
		}
		return nil
	case *parser.BinaryExpr:
		if err := validateExpression(e.Left, pos, ctx); err != nil {
			return err
		}
		if err := validateExpression(e.Right, pos, ctx); err != nil {
			return err
		}
		switch e.Operator {
		case "+", "-", "*", "/", ">", "<", ">=", "<=", "==", "!=":
			return nil
		}
		return &Error{
			Kind:      InvalidExpression,
			Statement: pos,
			Detail:    fmt.Sprintf("Unknown operator: %s", e.Operator),
		}
	}
	return nil
}
