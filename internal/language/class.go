package language

import "unicode"

// Class is the coarse classification of a code point used for word
// and number boundary detection.
type Class uint8

const (
	// ClassOther covers everything not matched by another class.
	ClassOther Class = iota
	// ClassWhitespace covers blanks other than the newline.
	ClassWhitespace
	// ClassNewline is the '\n' separator.
	ClassNewline
	// ClassWord covers word constituents: letters and underscore.
	ClassWord
	// ClassNumberSymbol covers number constituents: digits and the
	// decimal point.
	ClassNumberSymbol
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassWhitespace:
		return "whitespace"
	case ClassNewline:
		return "newline"
	case ClassWord:
		return "word"
	case ClassNumberSymbol:
		return "number"
	default:
		return "other"
	}
}

// ClassOf classifies a single code point.
func ClassOf(r rune) Class {
	switch {
	case r == '\n':
		return ClassNewline
	case unicode.IsSpace(r):
		return ClassWhitespace
	case unicode.IsLetter(r) || r == '_':
		return ClassWord
	case unicode.IsDigit(r) || r == '.':
		return ClassNumberSymbol
	default:
		return ClassOther
	}
}
