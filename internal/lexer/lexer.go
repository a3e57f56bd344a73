package lexer

import (
	"minicheck/internal/source"
	"minicheck/internal/token"
)

// maxLexemeLen is the fixed capacity of the lexeme accumulator in bytes.
// Exceeding it while scanning any token is a fatal lexical error, not a
// truncation.
const maxLexemeLen = 98

// eofText is the lexeme the end-of-input token carries.
const eofText = "EOF"

// Lexer turns a source file into tokens, one at a time, on demand. It owns
// the cursor and produces at most one token per Next call; comments are
// consumed between tokens and never surface.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After end of input it always
// returns the EOF token.
func (lx *Lexer) Next() token.Token {
	for {
		lx.skipWhitespace()

		switch lx.cursor.Class() {
		case ClassLetter:
			return lx.scanIdentOrKeyword()
		case ClassDigit:
			return lx.scanNumber()
		case ClassEOF:
			return token.Token{
				Kind: token.EOF,
				Span: lx.EmptySpan(),
				Text: eofText,
			}
		default:
			if lx.cursor.Peek() == '~' {
				// comments produce no token; restart the scan
				lx.skipComment()
				continue
			}
			return lx.scanOperatorOrPunct()
		}
	}
}

// PeekChar returns the current raw character, i.e. the first character after
// the most recently produced token. The second result is false at the
// end-of-input sentinel.
func (lx *Lexer) PeekChar() (byte, bool) {
	if lx.cursor.EOF() {
		return 0, false
	}
	return lx.cursor.Peek(), true
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) skipWhitespace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// skipComment consumes a '~' comment through its terminating newline (or to
// end of input).
func (lx *Lexer) skipComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if !lx.cursor.EOF() {
		lx.cursor.Bump() // the newline itself
	}
}
