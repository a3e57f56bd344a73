package parser

import (
	"fmt"

	"minicheck/internal/diag"
	"minicheck/internal/source"
	"minicheck/internal/token"
)

// advance consumes the current token and buffers the next one.
func (p *Parser) advance() token.Token {
	prev := p.tok
	if prev.Kind != token.EOF && prev.Kind != token.Invalid {
		p.lastSpan = prev.Span
	}
	p.tok = p.lx.Next()
	return prev
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

// expect requires the current token to be of kind k and consumes it.
// On mismatch it reports through the Reporter and returns false.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	p.report(code, msg)
	return false
}

// err reports a violation at the current token.
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, msg)
}

func (p *Parser) report(code diag.Code, msg string) {
	if p.failed {
		return
	}
	p.failed = true

	// an Invalid token means the lexer already reported the fatal error;
	// emitting a second diagnostic would break first-error-wins
	if p.tok.Kind == token.Invalid {
		return
	}
	if p.opts.Reporter == nil {
		return
	}
	p.opts.Reporter.Report(code, diag.SevError, p.diagnosticSpan(), msg, p.contextNotes())
}

// diagnosticSpan picks the best span for a report. A zero-length span at end
// of input is replaced by the position right after the last consumed token.
func (p *Parser) diagnosticSpan() source.Span {
	if p.tok.Kind == token.EOF && p.tok.Span.Empty() && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return p.tok.Span
}

// contextNotes captures the lexer state a failing check saw: the buffered
// token, the raw character after it (a blank placeholder at end of input),
// and the accumulated lexeme.
func (p *Parser) contextNotes() []diag.Note {
	sp := p.diagnosticSpan()

	charNote := "next char: ' '"
	if ch, ok := p.lx.PeekChar(); ok {
		charNote = fmt.Sprintf("next char: %q", ch)
	}

	return []diag.Note{
		{Span: sp, Msg: "next token: " + p.tok.Kind.String()},
		{Span: sp, Msg: charNote},
		{Span: sp, Msg: fmt.Sprintf("lexeme: %q", p.tok.Text)},
	}
}
