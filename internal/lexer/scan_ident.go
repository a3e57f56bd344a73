package lexer

import (
	"minicheck/internal/diag"
	"minicheck/internal/token"
)

// scanIdentOrKeyword scans the maximal run of letters and digits starting at
// a letter, then checks the lexeme against the keyword table. Token.Text is
// exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for {
		cl := lx.cursor.Class()
		if cl != ClassLetter && cl != ClassDigit {
			break
		}
		lx.cursor.Bump()
		if tok, overflow := lx.checkLexemeLen(start); overflow {
			return tok
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// checkLexemeLen enforces the fixed lexeme capacity during accumulation.
// On overflow it reports LexTokenTooLong and returns an Invalid token the
// parser treats as a fatal stop.
func (lx *Lexer) checkLexemeLen(start Mark) (token.Token, bool) {
	sp := lx.cursor.SpanFrom(start)
	if sp.Len() <= maxLexemeLen {
		return token.Token{}, false
	}
	lx.errLex(diag.LexTokenTooLong, sp, "lexeme is too long")
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}, true
}
