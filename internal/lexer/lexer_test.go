package lexer

import "testing"

func TestLexerTokensBasic(t *testing.T) {
	src := `let x: integer = 1 + 2 * 3;`
	toks := New("test.sc", src).All()

	want := []TokenType{
		LET, IDENT, COLON, INTEGER, ASSIGN, INT, PLUS, INT, STAR, INT, SEMI, EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
	}
}

func TestLexerKeywords(t *testing.T) {
	cases := map[string]TokenType{
		"class": CLASS, "extends": EXTENDS, "this": THIS, "new": NEW,
		"try": TRY, "catch": CATCH, "foreach": FOREACH, "in": IN,
		"switch": SWITCH, "case": CASE, "default": DEFAULT,
		"true": TRUE, "false": FALSE, "null": NULL,
	}
	for src, want := range cases {
		toks := New("test.sc", src).All()
		if toks[0].Type != want {
			t.Errorf("%q: got %s, want %s", src, toks[0].Type, want)
		}
	}
}

func TestLexerOperators(t *testing.T) {
	src := `== != <= >= && || ! ?`
	toks := New("test.sc", src).All()
	want := []TokenType{EQ, NEQ, LE, GE, AND, OR, NOT, QUESTION, EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, tok := range toks {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s, want %s", i, tok.Type, want[i])
		}
	}
}

func TestLexerString(t *testing.T) {
	toks := New("test.sc", `"hello\nworld"`).All()
	if toks[0].Type != STRING {
		t.Fatalf("got %s, want STRING", toks[0].Type)
	}
	if toks[0].Lexeme != "hello\nworld" {
		t.Errorf("got %q, want %q", toks[0].Lexeme, "hello\nworld")
	}
}

func TestLexerPositions(t *testing.T) {
	src := "let x;\nlet y;"
	toks := New("test.sc", src).All()
	// "y" is on line 2.
	for _, tok := range toks {
		if tok.Lexeme == "y" {
			if tok.Position.Line != 2 {
				t.Errorf("got line %d, want 2", tok.Position.Line)
			}
			return
		}
	}
	t.Fatal("token 'y' not found")
}

func TestLexerComments(t *testing.T) {
	src := "let x = 1; // trailing\n/* block */ let y = 2;"
	toks := New("test.sc", src).All()
	var idents []string
	for _, tok := range toks {
		if tok.Type == IDENT {
			idents = append(idents, tok.Lexeme)
		}
	}
	if len(idents) != 2 || idents[0] != "x" || idents[1] != "y" {
		t.Errorf("got idents %v, want [x y]", idents)
	}
}
