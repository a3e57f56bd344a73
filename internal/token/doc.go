// Package token defines the lexical token kinds of the Mini language.
// Invariants:
//   - Token.Text is the exact source substring that produced the token.
//   - Token.Span matches Text exactly (Start..End) for all tokens the lexer
//     produced from source bytes; the EOF token carries the literal text
//     "EOF" over an empty span.
//   - Keywords (begin, end) are recognized by the lexer via LookupKeyword;
//     every other letter-led run is an Ident segment.
//   - Underscores never occur inside a single token: identifier segments are
//     joined by Underscore tokens and validated by the parser.
package token
