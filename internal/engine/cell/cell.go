// Package cell defines the packed rendering cell handed from the
// document to a renderer: one fixed-width value per on-screen
// character combining the code point, a highlight color, and the
// selection, caret, cursor-line and bracket-match flags. The bit
// layout is internal to this package; construct and destructure cells
// through the typed API only.
package cell

// Cell packs one character of rendering state into 32 bits:
//
//	bits  0-20  code point (21 bits, full Unicode range)
//	bits 21-24  Color (4 bits)
//	bit  25     selection membership
//	bit  26     caret present
//	bit  27     cursor line
//	bits 28-29  Bracket state
type Cell uint32

const (
	runeMask  = 0x1FFFFF
	colorShift = 21
	colorMask  = 0xF

	flagSelected   = 1 << 25
	flagCaret      = 1 << 26
	flagCursorLine = 1 << 27

	bracketShift = 28
	bracketMask  = 0x3
)

// Color identifies one entry of the fixed highlight palette.
type Color uint8

// Highlight palette. At most 16 entries fit the cell encoding.
const (
	ColorPlain Color = iota
	ColorKeyword
	ColorIdentifier
	ColorComment
	ColorString
	ColorNumber
	ColorOperator
	ColorPunctuation
	ColorType
	ColorFunction
	ColorConstant

	colorCount
)

// String returns the palette entry name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

var colorNames = []string{
	ColorPlain:       "plain",
	ColorKeyword:     "keyword",
	ColorIdentifier:  "identifier",
	ColorComment:     "comment",
	ColorString:      "string",
	ColorNumber:      "number",
	ColorOperator:    "operator",
	ColorPunctuation: "punctuation",
	ColorType:        "type",
	ColorFunction:    "function",
	ColorConstant:    "constant",
}

// Bracket is the 2-state bracket-match marker.
type Bracket uint8

const (
	BracketNone Bracket = iota
	BracketPrimary
	BracketMatch
)

// New creates a cell for a code point with a highlight color and no
// flags set. Blank cells use code point 0.
func New(r rune, c Color) Cell {
	return Cell(uint32(r)&runeMask | uint32(c&colorMask)<<colorShift)
}

// Rune returns the packed code point. Blank cells return 0.
func (c Cell) Rune() rune {
	return rune(c & runeMask)
}

// Color returns the packed highlight color.
func (c Cell) Color() Color {
	return Color(c >> colorShift & colorMask)
}

// WithSelected returns the cell with the selection flag set.
func (c Cell) WithSelected() Cell { return c | flagSelected }

// Selected reports whether the cell is inside the selection.
func (c Cell) Selected() bool { return c&flagSelected != 0 }

// WithCaret returns the cell with the caret flag set.
func (c Cell) WithCaret() Cell { return c | flagCaret }

// Caret reports whether the caret sits on this cell.
func (c Cell) Caret() bool { return c&flagCaret != 0 }

// WithCursorLine returns the cell with the cursor-line flag set.
func (c Cell) WithCursorLine() Cell { return c | flagCursorLine }

// CursorLine reports whether the cell's row contains the cursor.
func (c Cell) CursorLine() bool { return c&flagCursorLine != 0 }

// WithBracket returns the cell with the bracket state set.
func (c Cell) WithBracket(b Bracket) Cell {
	return c&^(bracketMask<<bracketShift) | Cell(b&bracketMask)<<bracketShift
}

// Bracket returns the packed bracket state.
func (c Cell) Bracket() Bracket {
	return Bracket(c >> bracketShift & bracketMask)
}
