package parser

import (
	"minicheck/internal/diag"
	"minicheck/internal/lexer"
	"minicheck/internal/source"
	"minicheck/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Result is the outcome of recognizing one file.
type Result struct {
	Ok bool
}

// Parser is the per-file state of the recursive-descent recognizer: the
// single buffered token plus the implicit call stack of grammar procedures.
// Exactly one token is buffered at any time; none are ever pushed back.
type Parser struct {
	lx       *lexer.Lexer
	tok      token.Token // current token, already produced by the lexer
	lastSpan source.Span // span of the last consumed token, for diagnostics at EOF
	opts     Options
	failed   bool
}

// ParseFile is the entry point for recognizing one file. It requires an
// already constructed lexer, primes the single-token buffer, and runs the
// top-level production. The first error aborts the whole run.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}
	p.advance() // prime the first token

	ok := p.parseProgram()
	return Result{Ok: ok && !p.failed}
}

// parseProgram recognizes
//
//	program = "begin", statement_list, "end", "." ;
//
// and additionally requires that nothing follows the closing period.
func (p *Parser) parseProgram() bool {
	if !p.expect(token.KwBegin, diag.SynExpectBegin, "program must start with 'begin'") {
		return false
	}

	if !p.parseStatementList() {
		return false
	}

	if !p.expect(token.KwEnd, diag.SynExpectEnd, "program must end with 'end'") {
		return false
	}
	if !p.expect(token.Dot, diag.SynExpectPeriod, "missing '.' after 'end'") {
		return false
	}

	if !p.at(token.EOF) {
		p.err(diag.SynTrailingInput, "unexpected symbols after end of program")
		return false
	}
	return true
}
