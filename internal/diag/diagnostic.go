package diag

import (
	"minicheck/internal/source"
)

// Note attaches secondary context to a diagnostic, e.g. the lexer state at
// the point of failure.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding produced by the lexer or parser.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
