// internal/parser/parser.go
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"tfi/internal/errors"
	"tfi/internal/lexer"
)

// binaryOps is the closed set of operators accepted in expressions. Every
// operator has equal precedence; chains group strictly left to right.
var binaryOps = map[lexer.TokenType]bool{
	lexer.TokenPlus:        true,
	lexer.TokenMinus:       true,
	lexer.TokenStar:        true,
	lexer.TokenSlash:       true,
	lexer.TokenGT:          true,
	lexer.TokenLT:          true,
	lexer.TokenGE:          true,
	lexer.TokenLE:          true,
	lexer.TokenDoubleEqual: true,
	lexer.TokenNotEqual:    true,
}

type Parser struct {
	tokens      []lexer.Token
	current     int
	sourceLines []string
}

// ParseProgram scans and parses a complete TFI program. On failure the
// returned error is a *errors.Error carrying the failure location, the
// offending source line and a best-effort suggestion.
func ParseProgram(source string) ([]Statement, error) {
	tokens := lexer.NewScanner(source).ScanTokens()
	p := &Parser{
		tokens:      tokens,
		sourceLines: strings.Split(source, "\n"),
	}

	stmts, err := p.parse()
	if err != nil {
		return nil, p.describe(err, source)
	}
	if len(stmts) == 0 {
		return nil, emptyProgramError(source)
	}
	return stmts, nil
}

func (p *Parser) parse() (stmts []Statement, err error) {
	defer func() {
		if r := recover(); r != nil {
			if perr, ok := r.(*errors.Error); ok {
				stmts = nil
				err = perr
				return
			}
			panic(r)
		}
	}()

	for !p.isAtEnd() {
		stmts = append(stmts, p.statement())
	}
	return stmts, nil
}

func (p *Parser) statement() Statement {
	switch {
	case p.match(lexer.TokenPrint):
		return p.printStatement()
	case p.match(lexer.TokenConst):
		stmt := p.declaration("rrr", true)
		p.consume(lexer.TokenSemicolon, "Expect ';' after rrr statement")
		return stmt
	case p.match(lexer.TokenLet):
		stmt := p.declaration("pushpa", false)
		p.consume(lexer.TokenSemicolon, "Expect ';' after pushpa statement")
		return stmt
	case p.match(lexer.TokenIf):
		return p.ifStatement()
	case p.match(lexer.TokenWhile):
		return p.whileStatement()
	case p.match(lexer.TokenFor):
		return p.forStatement()
	}

	tok := p.peek()
	panic(p.errorAt(tok, fmt.Sprintf("Invalid statement: unexpected token '%s'", tok.Lexeme)))
}

// printStatement parses: bahubali(expr, expr, ...);
func (p *Parser) printStatement() Statement {
	p.consume(lexer.TokenLParen, "Expect '(' after bahubali")
	if p.check(lexer.TokenRParen) {
		panic(p.errorAt(p.peek(), "bahubali() requires at least one argument"))
	}

	args := []Expression{p.expression()}
	for p.match(lexer.TokenComma) {
		args = append(args, p.expression())
	}
	p.consume(lexer.TokenRParen, "Expect ')' after bahubali arguments")
	p.consume(lexer.TokenSemicolon, "Expect ';' after bahubali statement")
	return &PrintStmt{Args: args}
}

// declaration parses `name = expr` after a rrr/pushpa keyword. The trailing
// semicolon belongs to the caller; an eega header supplies its own.
func (p *Parser) declaration(keyword string, isConst bool) Statement {
	nameTok := p.consume(lexer.TokenIdent, fmt.Sprintf("Expect identifier in %s declaration", keyword))
	p.consume(lexer.TokenEqual, fmt.Sprintf("Expect '=' after %s identifier", keyword))
	value := p.expression()
	if isConst {
		return &ConstStmt{Name: nameTok.Lexeme, Value: value}
	}
	return &LetStmt{Name: nameTok.Lexeme, Value: value}
}

func (p *Parser) ifStatement() Statement {
	p.consume(lexer.TokenLParen, "Expect '(' after magadheera")
	condition := p.expression()
	p.consume(lexer.TokenRParen, "Expect ')' after magadheera condition")
	then := p.block("magadheera")

	var elseBlock []Statement
	if p.match(lexer.TokenElse) {
		elseBlock = p.block("karthikeya")
	}
	return &IfStmt{Condition: condition, Then: then, Else: elseBlock}
}

func (p *Parser) whileStatement() Statement {
	p.consume(lexer.TokenLParen, "Expect '(' after pokiri")
	condition := p.expression()
	p.consume(lexer.TokenRParen, "Expect ')' after pokiri condition")
	body := p.block("pokiri")
	return &WhileStmt{Condition: condition, Body: body}
}

// forStatement parses: eega(init; condition; update) { ... } where init is
// itself a declaration statement. Each missing clause is named in the error.
func (p *Parser) forStatement() Statement {
	p.consume(lexer.TokenLParen, "Expect '(' after eega")

	var init Statement
	switch {
	case p.match(lexer.TokenConst):
		init = p.declaration("rrr", true)
	case p.match(lexer.TokenLet):
		init = p.declaration("pushpa", false)
	default:
		panic(p.errorAt(p.peek(), "Expected initialization in eega statement"))
	}
	p.consume(lexer.TokenSemicolon, "Expected condition in eega statement")

	if p.check(lexer.TokenSemicolon) {
		panic(p.errorAt(p.peek(), "Expected condition in eega statement"))
	}
	condition := p.expression()
	p.consume(lexer.TokenSemicolon, "Expected update expression in eega statement")

	if p.check(lexer.TokenRParen) {
		panic(p.errorAt(p.peek(), "Expected update expression in eega statement"))
	}
	update := p.expression()
	p.consume(lexer.TokenRParen, "Expect ')' after eega clauses")

	body := p.block("eega")
	return &ForStmt{Init: init, Condition: condition, Update: update, Body: body}
}

// block parses a brace-delimited statement list for a control construct.
func (p *Parser) block(keyword string) []Statement {
	p.consume(lexer.TokenLBrace, fmt.Sprintf("Expect '{' before %s body", keyword))
	var stmts []Statement
	for !p.check(lexer.TokenRBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.statement())
	}
	p.consume(lexer.TokenRBrace, fmt.Sprintf("Expect '}' after %s body", keyword))
	return stmts
}

// expression parses a flat left-associative operator chain. There is no
// precedence climbing: a + b * c groups as (a + b) * c.
func (p *Parser) expression() Expression {
	left := p.term()
	for binaryOps[p.peek().Type] {
		op := p.advance()
		right := p.term()
		left = &BinaryExpr{Left: left, Operator: op.Lexeme, Right: right}
	}
	return left
}

func (p *Parser) term() Expression {
	if p.isAtEnd() {
		panic(p.errorAt(p.peek(), "Expected expression"))
	}
	tok := p.advance()
	switch tok.Type {
	case lexer.TokenNumber:
		value, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			panic(p.errorAt(tok, fmt.Sprintf("Invalid number literal '%s'", tok.Lexeme)))
		}
		return &NumberLiteral{Value: value}
	case lexer.TokenIdent:
		return &Identifier{Name: tok.Lexeme}
	case lexer.TokenString:
		// Strip the surrounding quotes from the scanned lexeme.
		return &StringLiteral{Value: tok.Lexeme[1 : len(tok.Lexeme)-1]}
	case lexer.TokenLParen:
		expr := p.expression()
		p.consume(lexer.TokenRParen, "Expect ')' after expression")
		return expr
	}
	panic(p.errorAt(tok, fmt.Sprintf("Expected expression, got '%s'", tok.Lexeme)))
}

// --- Diagnostics ---

// describe converts a raw parse failure into the user-facing error: a
// category message chosen by inspecting the failure text, the offending
// source line and a keyword-aware suggestion. The suggestion is advisory;
// only the category keywords are stable.
func (p *Parser) describe(err error, source string) error {
	perr, ok := err.(*errors.Error)
	if !ok {
		return err
	}

	raw := perr.Message
	var message string
	switch {
	case strings.Contains(raw, "end of input"):
		message = "Unexpected end of input or invalid syntax"
	case strings.Contains(raw, "statement"):
		message = "Invalid statement syntax"
	default:
		message = "Syntax error"
	}

	sourceLine := ""
	if perr.Line >= 1 && perr.Line <= len(p.sourceLines) {
		sourceLine = p.sourceLines[perr.Line-1]
	}

	return errors.NewParseError(message, perr.Line, perr.Column).
		WithSource(sourceLine).
		WithSuggestion(suggest(sourceLine)).
		WithContext(raw)
}

// suggest inspects the offending source line and proposes a fix.
func suggest(sourceLine string) string {
	switch {
	case strings.TrimSpace(sourceLine) == "":
		return `Add a valid TFI statement like 'bahubali("Hello");'`
	case strings.Contains(sourceLine, "=") &&
		!strings.Contains(sourceLine, "rrr") && !strings.Contains(sourceLine, "pushpa"):
		return "Variable assignments need 'rrr' (const) or 'pushpa' (let) keyword"
	case strings.Contains(sourceLine, "bahubali") && !strings.Contains(sourceLine, "("):
		return `bahubali statements need parentheses: bahubali("message");`
	case strings.Contains(sourceLine, "magadheera") && !strings.Contains(sourceLine, "("):
		return "magadheera statements need parentheses: magadheera(condition) { ... }"
	case strings.Contains(sourceLine, "pokiri") && !strings.Contains(sourceLine, "("):
		return "pokiri statements need parentheses: pokiri(condition) { ... }"
	case strings.Contains(sourceLine, "eega") && !strings.Contains(sourceLine, "("):
		return "eega statements need parentheses: eega(init; condition; update) { ... }"
	default:
		return "Check your syntax and make sure all statements end with semicolons"
	}
}

// emptyProgramError reports input that matched the grammar but produced no
// statements. This is distinct from a grammar mismatch.
func emptyProgramError(source string) error {
	firstLine := ""
	if lines := strings.Split(source, "\n"); len(lines) > 0 {
		firstLine = lines[0]
	}
	return errors.NewParseError("No valid statements found. Check your syntax.", 1, 1).
		WithSource(firstLine).
		WithSuggestion(`Make sure your TFI file contains valid statements like 'bahubali("Hello");' or 'rrr x = 10;'`)
}

// errorAt builds a raw syntax error at the given token. EOF is called out
// so the failure classifies as an end-of-input error.
func (p *Parser) errorAt(tok lexer.Token, message string) *errors.Error {
	if tok.Type == lexer.TokenEOF {
		message += " (unexpected end of input)"
	}
	return errors.NewParseError(message, tok.Line, tok.Column)
}

// --- Utility methods ---

func (p *Parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, msg string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	tok := p.peek()
	panic(p.errorAt(tok, fmt.Sprintf("%s (got '%s')", msg, tok.Lexeme)))
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.tokens[p.current-1]
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TokenEOF
}
