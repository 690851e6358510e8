package engine

import (
	"github.com/dshills/textcore/internal/engine/cell"
	"github.com/dshills/textcore/internal/language"
)

// View produces one packed cell per (row, col) position of the
// requested rectangle, row-major. Cells outside the text (short lines,
// rows past the last line) are emitted blank so the result is always
// exactly (rowEnd-rowStart)*(colEnd-colStart) cells. The caret flag is
// set exactly at the cursor's point, the cursor-line flag on every
// cell of the cursor's row, and the bracket flags from one
// MatchingBracket query at the current cursor.
func (d *Document) View(rowStart, rowEnd, colStart, colEnd int) []cell.Cell {
	if rowEnd < rowStart {
		rowEnd = rowStart
	}
	if colEnd < colStart {
		colEnd = colStart
	}
	cells := make([]cell.Cell, 0, (rowEnd-rowStart)*(colEnd-colStart))

	cp := d.buf.OffsetToPoint(d.cursor)
	selStart, selEnd, hasSel := d.SelectedRange()

	primary, match := -1, -1
	if bm := d.MatchingBracket(d.cursor); bm.Status == StatusMatch {
		primary, match = d.cursor, bm.Pos
	}

	for row := rowStart; row < rowEnd; row++ {
		inText := row >= 0 && row < d.buf.LineCount()
		cursorLine := inText && row == cp.Row

		var (
			lineStart int
			lineLen   int
			spans     []language.Span
		)
		if inText {
			lineStart = d.buf.LineStart(row)
			lineLen = d.buf.LineLen(row)
			spans = d.profile.HighlightLine(d.buf.LineText(row))
		}

		for col := colStart; col < colEnd; col++ {
			var c cell.Cell
			if inText && col >= 0 && col < lineLen {
				off := lineStart + col
				c = cell.New(d.buf.RuneAt(off), language.ColorAt(spans, col))
				if hasSel && off >= selStart && off < selEnd {
					c = c.WithSelected()
				}
				switch off {
				case primary:
					c = c.WithBracket(cell.BracketPrimary)
				case match:
					c = c.WithBracket(cell.BracketMatch)
				}
			} else {
				c = cell.New(0, cell.ColorPlain)
			}
			if cursorLine {
				c = c.WithCursorLine()
				if col == cp.Col {
					c = c.WithCaret()
				}
			}
			cells = append(cells, c)
		}
	}
	return cells
}
