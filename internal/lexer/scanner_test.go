package lexer

import "testing"

func scanTypes(input string) []TokenType {
	tokens := NewScanner(input).ScanTokens()
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func assertTypes(t *testing.T, input string, want []TokenType) {
	t.Helper()
	got := scanTypes(input)
	if len(got) != len(want) {
		t.Fatalf("token count for %q: got %v, want %v", input, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d for %q: got %s, want %s", i, input, got[i], want[i])
		}
	}
}

func TestKeywordTokens(t *testing.T) {
	assertTypes(t, "rrr pushpa bahubali magadheera karthikeya pokiri eega", []TokenType{
		TokenConst, TokenLet, TokenPrint, TokenIf, TokenElse, TokenWhile, TokenFor, TokenEOF,
	})
}

func TestIdentifierTokens(t *testing.T) {
	tokens := NewScanner("hello world x").ScanTokens()
	want := []string{"hello", "world", "x"}
	for i, name := range want {
		if tokens[i].Type != TokenIdent || tokens[i].Lexeme != name {
			t.Errorf("token %d: got %s, want identifier %q", i, tokens[i], name)
		}
	}
}

func TestNumberTokens(t *testing.T) {
	tokens := NewScanner("42 123 0 999").ScanTokens()
	want := []string{"42", "123", "0", "999"}
	for i, lexeme := range want {
		if tokens[i].Type != TokenNumber || tokens[i].Lexeme != lexeme {
			t.Errorf("token %d: got %s, want number %q", i, tokens[i], lexeme)
		}
	}
}

func TestOperatorTokens(t *testing.T) {
	assertTypes(t, "= ( ) { } ; , + - * / > <", []TokenType{
		TokenEqual, TokenLParen, TokenRParen, TokenLBrace, TokenRBrace,
		TokenSemicolon, TokenComma, TokenPlus, TokenMinus, TokenStar,
		TokenSlash, TokenGT, TokenLT, TokenEOF,
	})
}

func TestTwoCharOperatorsMatchGreedily(t *testing.T) {
	assertTypes(t, ">= <= == !=", []TokenType{
		TokenGE, TokenLE, TokenDoubleEqual, TokenNotEqual, TokenEOF,
	})
	// One-character fallbacks still work when no '=' follows.
	assertTypes(t, "> < =", []TokenType{TokenGT, TokenLT, TokenEqual, TokenEOF})
}

func TestWhitespaceSkipping(t *testing.T) {
	assertTypes(t, "rrr   pushpa\n\tbahubali", []TokenType{
		TokenConst, TokenLet, TokenPrint, TokenEOF,
	})
}

func TestUnrecognizedCharactersAreDropped(t *testing.T) {
	assertTypes(t, "@ # $ ? !", []TokenType{TokenEOF})
	// The gap leaves surrounding tokens intact.
	assertTypes(t, "rrr @ x", []TokenType{TokenConst, TokenIdent, TokenEOF})
}

func TestStringTokenKeepsQuotes(t *testing.T) {
	tokens := NewScanner(`bahubali("Hello, world!");`).ScanTokens()
	if tokens[2].Type != TokenString {
		t.Fatalf("expected string token, got %s", tokens[2])
	}
	if tokens[2].Lexeme != `"Hello, world!"` {
		t.Errorf("string lexeme: got %q, want quoted text", tokens[2].Lexeme)
	}
}

func TestUnterminatedStringIsDropped(t *testing.T) {
	assertTypes(t, `rrr x = "oops`, []TokenType{
		TokenConst, TokenIdent, TokenEqual, TokenEOF,
	})
}

func TestIdentifiersAreAlphabeticOnly(t *testing.T) {
	// A digit ends the run: "abc123" scans as an identifier then a number.
	tokens := NewScanner("abc123").ScanTokens()
	if tokens[0].Type != TokenIdent || tokens[0].Lexeme != "abc" {
		t.Errorf("got %s, want identifier 'abc'", tokens[0])
	}
	if tokens[1].Type != TokenNumber || tokens[1].Lexeme != "123" {
		t.Errorf("got %s, want number '123'", tokens[1])
	}
}

func TestLineAndColumnTracking(t *testing.T) {
	tokens := NewScanner("rrr x = 1;\npushpa y = 2;").ScanTokens()
	if tokens[0].Line != 1 || tokens[0].Column != 1 {
		t.Errorf("first token at %d:%d, want 1:1", tokens[0].Line, tokens[0].Column)
	}
	// "pushpa" starts the second line.
	if tokens[5].Type != TokenLet || tokens[5].Line != 2 || tokens[5].Column != 1 {
		t.Errorf("got %s at %d:%d, want pushpa at 2:1", tokens[5], tokens[5].Line, tokens[5].Column)
	}
}

func TestTokenPredicates(t *testing.T) {
	tokens := NewScanner("rrr + x").ScanTokens()
	if !tokens[0].IsKeyword() {
		t.Error("rrr should be a keyword")
	}
	if !tokens[1].IsOperator() {
		t.Error("+ should be an operator")
	}
	if tokens[2].IsKeyword() || tokens[2].IsOperator() {
		t.Error("identifier should be neither keyword nor operator")
	}
}
