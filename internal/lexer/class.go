package lexer

// Class is the coarse category of a single raw character. It drives the
// lexer's top-level dispatch.
type Class uint8

const (
	// ClassLetter covers ASCII letters.
	ClassLetter Class = iota
	// ClassDigit covers decimal digits.
	ClassDigit
	// ClassOther covers every remaining valid character.
	ClassOther
	// ClassEOF is the end-of-input sentinel, distinguishable from every
	// valid character value.
	ClassEOF
)

func (c Class) String() string {
	switch c {
	case ClassLetter:
		return "Letter"
	case ClassDigit:
		return "Digit"
	case ClassOther:
		return "Other"
	case ClassEOF:
		return "EndOfInput"
	}
	return "Class(?)"
}

func classOf(b byte) Class {
	switch {
	case isLetter(b):
		return ClassLetter
	case isDec(b):
		return ClassDigit
	default:
		return ClassOther
	}
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
