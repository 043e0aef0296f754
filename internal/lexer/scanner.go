// internal/lexer/scanner.go
package lexer

import (
	"fmt"
	"strconv"
)

type TokenType string

const (
	// Keywords
	TokenConst TokenType = "CONST" // rrr
	TokenLet   TokenType = "LET"   // pushpa
	TokenPrint TokenType = "PRINT" // bahubali
	TokenIf    TokenType = "IF"    // magadheera
	TokenElse  TokenType = "ELSE"  // karthikeya
	TokenWhile TokenType = "WHILE" // pokiri
	TokenFor   TokenType = "FOR"   // eega

	// Literals
	TokenIdent  TokenType = "IDENT"
	TokenNumber TokenType = "NUMBER"
	TokenString TokenType = "STRING"

	// Symbols
	TokenEqual       TokenType = "="
	TokenLParen      TokenType = "("
	TokenRParen      TokenType = ")"
	TokenLBrace      TokenType = "{"
	TokenRBrace      TokenType = "}"
	TokenSemicolon   TokenType = ";"
	TokenComma       TokenType = ","
	TokenPlus        TokenType = "+"
	TokenMinus       TokenType = "-"
	TokenStar        TokenType = "*"
	TokenSlash       TokenType = "/"
	TokenGT          TokenType = ">"
	TokenLT          TokenType = "<"
	TokenGE          TokenType = ">="
	TokenLE          TokenType = "<="
	TokenDoubleEqual TokenType = "=="
	TokenNotEqual    TokenType = "!="
	TokenEOF         TokenType = "EOF"
)

// keywords maps TFI keyword spellings to their token types.
var keywords = map[string]TokenType{
	"rrr":        TokenConst,
	"pushpa":     TokenLet,
	"bahubali":   TokenPrint,
	"magadheera": TokenIf,
	"karthikeya": TokenElse,
	"pokiri":     TokenWhile,
	"eega":       TokenFor,
}

type Token struct {
	Type   TokenType
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("[%s] '%s'", t.Type, t.Lexeme)
}

// IsKeyword reports whether the token is a TFI keyword.
func (t Token) IsKeyword() bool {
	switch t.Type {
	case TokenConst, TokenLet, TokenPrint, TokenIf, TokenElse, TokenWhile, TokenFor:
		return true
	}
	return false
}

// IsOperator reports whether the token is a binary operator or assignment.
func (t Token) IsOperator() bool {
	switch t.Type {
	case TokenPlus, TokenMinus, TokenStar, TokenSlash,
		TokenGT, TokenLT, TokenGE, TokenLE,
		TokenDoubleEqual, TokenNotEqual, TokenEqual:
		return true
	}
	return false
}

// Scanner turns TFI source text into a token stream. Unrecognized input
// produces no token at all; the gap surfaces later as a parse failure.
type Scanner struct {
	source    string
	tokens    []Token
	start     int
	current   int
	line      int
	lineStart int
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.skipWhitespace()
		s.start = s.current
		if s.isAtEnd() {
			break
		}
		s.scanToken()
	}
	s.tokens = append(s.tokens, Token{Type: TokenEOF, Lexeme: "", Line: s.line, Column: s.column()})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '=':
		if s.match('=') {
			s.addToken(TokenDoubleEqual)
		} else {
			s.addToken(TokenEqual)
		}
	case '!':
		if s.match('=') {
			s.addToken(TokenNotEqual)
		}
		// A bare '!' is not part of the language; drop it.
	case '<':
		if s.match('=') {
			s.addToken(TokenLE)
		} else {
			s.addToken(TokenLT)
		}
	case '>':
		if s.match('=') {
			s.addToken(TokenGE)
		} else {
			s.addToken(TokenGT)
		}
	case '(':
		s.addToken(TokenLParen)
	case ')':
		s.addToken(TokenRParen)
	case '{':
		s.addToken(TokenLBrace)
	case '}':
		s.addToken(TokenRBrace)
	case ';':
		s.addToken(TokenSemicolon)
	case ',':
		s.addToken(TokenComma)
	case '+':
		s.addToken(TokenPlus)
	case '-':
		s.addToken(TokenMinus)
	case '*':
		s.addToken(TokenStar)
	case '/':
		s.addToken(TokenSlash)
	case '"':
		s.string()
	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.identifier()
		}
		// Anything else is skipped silently.
	}
}

// identifier scans an alphabetic run and resolves keyword spellings.
// TFI identifiers are letters only; digits end the run.
func (s *Scanner) identifier() {
	for isAlpha(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	if t, ok := keywords[text]; ok {
		s.addToken(t)
		return
	}
	s.addToken(TokenIdent)
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]
	// A digit run that does not fit an int is a lexical failure and
	// is dropped from the stream rather than reported here.
	if _, err := strconv.Atoi(text); err != nil {
		return
	}
	s.addToken(TokenNumber)
}

// string scans a double-quoted literal. The lexeme keeps its quotes;
// the parser strips them when building the AST node. An unterminated
// string produces no token.
func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
			s.lineStart = s.current + 1
		}
		s.advance()
	}
	if s.isAtEnd() {
		return
	}
	s.advance() // closing quote
	s.addToken(TokenString)
}

func (s *Scanner) addToken(t TokenType) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{
		Type:   t,
		Lexeme: text,
		Line:   s.line,
		Column: s.start - s.lineStart + 1,
	})
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) advance() byte {
	s.current++
	return s.source[s.current-1]
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() {
		switch s.peek() {
		case ' ', '\r', '\t', '\f':
			s.advance()
		case '\n':
			s.advance()
			s.line++
			s.lineStart = s.current
		default:
			return
		}
	}
}

func (s *Scanner) column() int {
	return s.current - s.lineStart + 1
}

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
