package textbuf

import (
	"errors"
	"strings"
)

// Errors returned by buffer mutations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer stores text as a flat sequence of code points together with a
// derived line-start index. The index always holds at least one entry
// (offset 0), so an empty buffer has one empty line.
//
// Buffer performs no line-ending normalization: '\n' is the only line
// separator and '\r' is ordinary content.
type Buffer struct {
	text       []rune
	lineStarts []int
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{lineStarts: []int{0}}
}

// FromString creates a buffer with initial content.
func FromString(s string) *Buffer {
	b := New()
	b.text = []rune(s)
	b.reindex()
	return b
}

// reindex rebuilds the line-start index from scratch.
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, r := range b.text {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// Len returns the buffer size in code points.
func (b *Buffer) Len() int {
	return len(b.text)
}

// LineCount returns the number of lines. Never less than 1.
func (b *Buffer) LineCount() int {
	return len(b.lineStarts)
}

// LineStart returns the offset of the first code point of the given
// line. The line number is clamped to the valid range.
func (b *Buffer) LineStart(line int) int {
	line = b.ClampLine(line)
	return b.lineStarts[line]
}

// LineLen returns the length of a line in code points, excluding the
// trailing newline.
func (b *Buffer) LineLen(line int) int {
	line = b.ClampLine(line)
	start := b.lineStarts[line]
	if line+1 < len(b.lineStarts) {
		return b.lineStarts[line+1] - start - 1
	}
	return len(b.text) - start
}

// LineText returns the text of a line without its trailing newline.
func (b *Buffer) LineText(line int) string {
	line = b.ClampLine(line)
	start := b.lineStarts[line]
	return string(b.text[start : start+b.LineLen(line)])
}

// Line returns the code points of a line without its trailing newline.
// The returned slice aliases buffer storage and is invalidated by the
// next mutation.
func (b *Buffer) Line(line int) []rune {
	line = b.ClampLine(line)
	start := b.lineStarts[line]
	return b.text[start : start+b.LineLen(line)]
}

// RuneAt returns the code point at the given offset, or 0 when the
// offset is at or past the end of the buffer or negative.
func (b *Buffer) RuneAt(offset int) rune {
	if offset < 0 || offset >= len(b.text) {
		return 0
	}
	return b.text[offset]
}

// Slice returns the text in [start, end). Both bounds are clamped.
func (b *Buffer) Slice(start, end int) string {
	start = b.ClampOffset(start)
	end = b.ClampOffset(end)
	if end < start {
		start, end = end, start
	}
	return string(b.text[start:end])
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	return string(b.text)
}

// ClampOffset clamps an offset into [0, Len()].
func (b *Buffer) ClampOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(b.text) {
		return len(b.text)
	}
	return offset
}

// ClampLine clamps a line number into [0, LineCount()-1].
func (b *Buffer) ClampLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(b.lineStarts) {
		return len(b.lineStarts) - 1
	}
	return line
}

// LineForOffset returns the line containing the given offset using a
// binary search over the line-start index. Offsets are clamped; the
// end-of-buffer offset belongs to the last line.
func (b *Buffer) LineForOffset(offset int) int {
	offset = b.ClampOffset(offset)

	lo, hi := 0, len(b.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if b.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// OffsetToPoint converts an offset to a (row, column) point. The
// offset is clamped to the buffer size.
func (b *Buffer) OffsetToPoint(offset int) Point {
	offset = b.ClampOffset(offset)
	line := b.LineForOffset(offset)
	return Point{Row: line, Col: offset - b.lineStarts[line]}
}

// PointToOffset converts a (row, column) point to an offset. Row is
// clamped to the line range and column to the line length, so every
// point maps to a valid offset.
func (b *Buffer) PointToOffset(p Point) int {
	row := b.ClampLine(p.Row)
	col := p.Col
	if col < 0 {
		col = 0
	}
	if max := b.LineLen(row); col > max {
		col = max
	}
	return b.lineStarts[row] + col
}

// Insert inserts text at the given offset and updates the line index
// incrementally.
func (b *Buffer) Insert(offset int, s string) error {
	if offset < 0 || offset > len(b.text) {
		return ErrOffsetOutOfRange
	}
	if s == "" {
		return nil
	}

	ins := []rune(s)
	b.text = append(b.text, ins...)
	copy(b.text[offset+len(ins):], b.text[offset:])
	copy(b.text[offset:], ins)

	// Line starts at or before the insertion point are unaffected.
	// Later starts shift by the inserted length; new starts appear
	// after each inserted newline.
	line := b.LineForOffset(offset)
	tail := b.lineStarts[line+1:]
	updated := make([]int, 0, len(b.lineStarts)+strings.Count(s, "\n"))
	updated = append(updated, b.lineStarts[:line+1]...)
	for i, r := range ins {
		if r == '\n' {
			updated = append(updated, offset+i+1)
		}
	}
	for _, st := range tail {
		updated = append(updated, st+len(ins))
	}
	b.lineStarts = updated
	return nil
}

// Delete removes the text in [start, end) and updates the line index.
// Returns the removed text.
func (b *Buffer) Delete(start, end int) (string, error) {
	if start < 0 || start > end || end > len(b.text) {
		return "", ErrRangeInvalid
	}
	if start == end {
		return "", nil
	}

	removed := string(b.text[start:end])
	b.text = append(b.text[:start], b.text[end:]...)

	// Drop line starts produced by deleted newlines, shift the rest.
	n := end - start
	updated := b.lineStarts[:0]
	for _, st := range b.lineStarts {
		switch {
		case st <= start:
			updated = append(updated, st)
		case st > end:
			updated = append(updated, st-n)
		case st == end:
			// The newline at end-1 was deleted with the range.
		}
	}
	b.lineStarts = updated
	return removed, nil
}

// Replace removes the text in [start, start+removeCount) and inserts
// s at start. Returns the removed text.
func (b *Buffer) Replace(start, removeCount int, s string) (string, error) {
	removed, err := b.Delete(start, start+removeCount)
	if err != nil {
		return "", err
	}
	if err := b.Insert(start, s); err != nil {
		return "", err
	}
	return removed, nil
}

// SetText replaces the whole buffer content.
func (b *Buffer) SetText(s string) {
	b.text = []rune(s)
	b.reindex()
}

// MaxLineLen returns the length of the longest line in code points.
func (b *Buffer) MaxLineLen() int {
	max := 0
	for i := range b.lineStarts {
		if n := b.LineLen(i); n > max {
			max = n
		}
	}
	return max
}
