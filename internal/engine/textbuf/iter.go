package textbuf

// Iterator is a transient cursor over a buffer with a cached (row,
// column) position, giving O(1) single-step movement in either
// direction. It borrows the buffer it was constructed against and is
// invalidated by any mutation; re-derive after every edit.
type Iterator struct {
	buf *Buffer
	pos int
	row int
	col int
}

// NewIterator creates an iterator positioned at the start of the
// buffer.
func NewIterator(b *Buffer) *Iterator {
	return &Iterator{buf: b}
}

// SetPosition moves the iterator to an absolute offset. The offset is
// clamped to [0, Len()].
func (it *Iterator) SetPosition(offset int) {
	it.pos = it.buf.ClampOffset(offset)
	p := it.buf.OffsetToPoint(it.pos)
	it.row, it.col = p.Row, p.Col
}

// SetCoordinates moves the iterator to a (row, column) position. The
// row is clamped to the line range and the column to the length of
// that row.
func (it *Iterator) SetCoordinates(row, col int) {
	p := Point{Row: row, Col: col}
	it.pos = it.buf.PointToOffset(p)
	it.row = it.buf.ClampLine(row)
	it.col = it.pos - it.buf.LineStart(it.row)
}

// Pos returns the current absolute offset.
func (it *Iterator) Pos() int { return it.pos }

// Row returns the current row.
func (it *Iterator) Row() int { return it.row }

// Col returns the current column.
func (it *Iterator) Col() int { return it.col }

// AtEnd returns true when the iterator is past the last code point.
func (it *Iterator) AtEnd() bool {
	return it.pos >= it.buf.Len()
}

// Character returns the code point at the current position, or 0 at
// the end of the buffer.
func (it *Iterator) Character() rune {
	return it.buf.RuneAt(it.pos)
}

// Before returns the code point immediately before the current
// position, or 0 at the start of the buffer.
func (it *Iterator) Before() rune {
	return it.buf.RuneAt(it.pos - 1)
}

// Advance steps forward one code point. No-op at the end of the
// buffer.
func (it *Iterator) Advance() {
	if it.AtEnd() {
		return
	}
	if it.buf.RuneAt(it.pos) == '\n' {
		it.row++
		it.col = 0
	} else {
		it.col++
	}
	it.pos++
}

// Back steps backward one code point. No-op at the start of the
// buffer.
func (it *Iterator) Back() {
	if it.pos == 0 {
		return
	}
	it.pos--
	if it.buf.RuneAt(it.pos) == '\n' {
		it.row--
		it.col = it.buf.LineLen(it.row)
	} else {
		it.col--
	}
}
