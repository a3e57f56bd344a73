package token_test

import (
	"testing"

	"minicheck/internal/source"
	"minicheck/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	if !tok(token.IntLit).IsLiteral() {
		t.Fatal("IntLit should be literal")
	}
	non := []token.Kind{token.Ident, token.KwBegin, token.Plus, token.LParen, token.EOF}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash,
		token.Assign, token.LParen, token.RParen,
		token.Underscore, token.Dot, token.Semicolon,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.IntLit, token.KwEnd, token.EOF, token.Invalid}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsKeywordAndIdent(t *testing.T) {
	if !tok(token.KwBegin).IsKeyword() || !tok(token.KwEnd).IsKeyword() {
		t.Fatal("begin/end should be keywords")
	}
	if tok(token.Ident).IsKeyword() {
		t.Fatal("Ident must not be a keyword")
	}
	if !tok(token.Ident).IsIdent() || tok(token.KwBegin).IsIdent() {
		t.Fatal("IsIdent mismatch")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.EOF:        "EndOfInput",
		token.Ident:      "Ident",
		token.IntLit:     "IntLit",
		token.Underscore: "Underscore",
		token.Dot:        "Dot",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
	if got := token.Kind(200).String(); got != "Kind(?)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}
