package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier segment.
	Ident
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwEnd represents the 'end' keyword.
	KwEnd // end

	// IntLit represents an integer literal.
	IntLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Assign represents the assign operator token.
	Assign // =
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Underscore represents a single underscore token.
	Underscore // _
	// Dot represents the program-terminating period token.
	Dot // .
	// Semicolon represents the semicolon token.
	Semicolon // ;
)

var kindNames = [...]string{
	Invalid:    "Invalid",
	EOF:        "EndOfInput",
	Ident:      "Ident",
	KwBegin:    "KwBegin",
	KwEnd:      "KwEnd",
	IntLit:     "IntLit",
	Plus:       "Plus",
	Minus:      "Minus",
	Star:       "Star",
	Slash:      "Slash",
	Assign:     "Assign",
	LParen:     "LParen",
	RParen:     "RParen",
	Underscore: "Underscore",
	Dot:        "Dot",
	Semicolon:  "Semicolon",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
