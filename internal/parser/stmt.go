package parser

import (
	"minicheck/internal/diag"
	"minicheck/internal/token"
)

// parseStatementList recognizes
//
//	statement_list = statement, { statement } ;
//
// Every statement begins with an identifier, so a single token of lookahead
// decides whether another statement follows.
func (p *Parser) parseStatementList() bool {
	if !p.parseStatement() {
		return false
	}
	for p.at(token.Ident) {
		if !p.parseStatement() {
			return false
		}
	}
	return true
}

// parseStatement recognizes
//
//	statement = assignment_statement ;
//
// Assignment is the only statement kind; the indirection keeps callers
// stable if more kinds are added.
func (p *Parser) parseStatement() bool {
	return p.parseAssignment()
}

// parseAssignment recognizes
//
//	assignment_statement = identifier, "=", expr, ";" ;
func (p *Parser) parseAssignment() bool {
	if !p.parseIdentifier() {
		return false
	}
	if !p.expect(token.Assign, diag.SynExpectAssign, "assignment operator '=' missing in statement") {
		return false
	}
	if !p.parseExpr() {
		return false
	}
	return p.expect(token.Semicolon, diag.SynExpectSemicolon, "semicolon ';' missing at end of statement")
}
