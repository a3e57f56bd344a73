package parser

import (
	"minicheck/internal/diag"
	"minicheck/internal/token"
)

// parseExpr recognizes
//
//	expr = term, { ("+" | "-"), term } ;
//
// Left-associative, iterative: no tree is built, the loop simply consumes
// operator/term pairs.
func (p *Parser) parseExpr() bool {
	if !p.parseTerm() {
		return false
	}
	for p.at(token.Plus) || p.at(token.Minus) {
		p.advance()
		if !p.parseTerm() {
			return false
		}
	}
	return true
}

// parseTerm recognizes
//
//	term = factor, { ("*" | "/"), factor } ;
//
// Same shape as parseExpr, one precedence tier tighter.
func (p *Parser) parseTerm() bool {
	if !p.parseFactor() {
		return false
	}
	for p.at(token.Star) || p.at(token.Slash) {
		p.advance()
		if !p.parseFactor() {
			return false
		}
	}
	return true
}

// parseFactor recognizes
//
//	factor = identifier | number | "(", expr, ")" ;
func (p *Parser) parseFactor() bool {
	switch p.tok.Kind {
	case token.Ident:
		return p.parseIdentifier()
	case token.IntLit:
		p.advance()
		return true
	case token.LParen:
		p.advance()
		if !p.parseExpr() {
			return false
		}
		return p.expect(token.RParen, diag.SynExpectRParen, "right parenthesis ')' expected")
	default:
		p.err(diag.SynExpectFactor, "expected identifier, number, or parenthesized expression")
		return false
	}
}
