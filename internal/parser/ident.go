package parser

import (
	"minicheck/internal/diag"
	"minicheck/internal/token"
)

// parseIdentifier recognizes a full identifier: one or more letter-led
// segments joined by single underscores.
//
//   - the first segment must be an Ident token (no leading underscore)
//   - two underscores in a row are an error
//   - a trailing underscore with nothing after it ends the identifier
func (p *Parser) parseIdentifier() bool {
	if !p.expect(token.Ident, diag.SynExpectIdentifier, "identifier must start with a letter") {
		return false
	}

	for p.at(token.Underscore) {
		p.advance() // one underscore

		if p.at(token.Underscore) {
			p.err(diag.SynConsecutiveUnderscore, "consecutive underscores '__' not allowed in identifier")
			return false
		}

		if p.at(token.Ident) || p.at(token.IntLit) {
			p.advance() // continuation segment
			continue
		}
		break // trailing underscore ends the identifier
	}
	return true
}
