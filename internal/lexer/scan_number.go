package lexer

import (
	"minicheck/internal/token"
)

// scanNumber scans the maximal run of decimal digits. Mini has only integer
// literals; no bases, fractions, or exponents.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for lx.cursor.Class() == ClassDigit {
		lx.cursor.Bump()
		if tok, overflow := lx.checkLexemeLen(start); overflow {
			return tok
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.IntLit,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
