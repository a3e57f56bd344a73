package lexer

import (
	"fmt"

	"minicheck/internal/diag"
	"minicheck/internal/token"
)

// scanOperatorOrPunct dispatches a single character over the fixed
// punctuation table. Every operator of the language is one byte long.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}
	}

	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '_':
		return emit(token.Underscore)
	case '.':
		return emit(token.Dot)
	case ';':
		return emit(token.Semicolon)
	case '=':
		return emit(token.Assign)
	}

	// Characters outside the table fold into the end-of-input token, with
	// the offending byte as the lexeme. The warning makes the fold visible
	// without changing which programs are accepted.
	sp := lx.cursor.SpanFrom(start)
	lx.warnLex(diag.LexUnknownChar, sp,
		fmt.Sprintf("unrecognized character %q treated as end of input", ch))
	return token.Token{
		Kind: token.EOF,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
