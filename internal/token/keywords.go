package token

var keywords = map[string]Kind{
	"begin": KwBegin,
	"end":   KwEnd,
}

// LookupKeyword returns the keyword kind for an identifier lexeme.
// Keywords are case-sensitive; only lowercase forms are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
