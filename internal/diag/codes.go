package diag

import (
	"fmt"
)

// Code identifies one class of diagnostic. Lexical codes live in the 1000
// range, syntactic codes in the 2000 range, I/O codes in the 4000 range.
type Code uint16

const (
	UnknownCode Code = 0

	// lexical
	LexUnknownChar  Code = 1001
	LexTokenTooLong Code = 1002

	// syntactic
	SynExpectBegin           Code = 2001
	SynExpectEnd             Code = 2002
	SynExpectPeriod          Code = 2003
	SynExpectAssign          Code = 2004
	SynExpectSemicolon       Code = 2005
	SynExpectRParen          Code = 2006
	SynExpectFactor          Code = 2007
	SynExpectIdentifier      Code = 2008
	SynConsecutiveUnderscore Code = 2009
	SynTrailingInput         Code = 2010

	// I/O
	IOCannotOpen Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexUnknownChar:           "Unrecognized character",
	LexTokenTooLong:          "Lexeme too long",
	SynExpectBegin:           "Expected 'begin'",
	SynExpectEnd:             "Expected 'end'",
	SynExpectPeriod:          "Expected '.'",
	SynExpectAssign:          "Expected '='",
	SynExpectSemicolon:       "Expected ';'",
	SynExpectRParen:          "Expected ')'",
	SynExpectFactor:          "Expected factor",
	SynExpectIdentifier:      "Expected identifier",
	SynConsecutiveUnderscore: "Consecutive underscores",
	SynTrailingInput:         "Trailing input after program",
	IOCannotOpen:             "Cannot open file",
}

// ID renders the short stable identifier, e.g. "LEX1002" or "SYN2005".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
