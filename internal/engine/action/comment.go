package action

import (
	"fmt"
	"strings"

	"github.com/dshills/textcore/internal/engine/textbuf"
)

// Comment prepends the language's line-comment marker at column 0 of
// every line in [begin, end). Callers must verify the language
// defines a marker before constructing the action.
type Comment struct {
	state
	begin, end int
	marker     string
	delta      LineDelta
}

// NewComment creates a comment action over the line range [begin,
// end).
func NewComment(begin, end int, marker string) *Comment {
	if begin < 0 {
		begin = 0
	}
	return &Comment{begin: begin, end: end, marker: marker}
}

// Trivial reports whether the action would not change the buffer.
func (a *Comment) Trivial() bool {
	return a.begin >= a.end || a.marker == ""
}

// Apply prepends the marker on every line, last line first.
func (a *Comment) Apply(buf *textbuf.Buffer) error {
	a.markApplied()

	end := a.end
	if end > buf.LineCount() {
		end = buf.LineCount()
	}
	for line := end - 1; line >= a.begin; line-- {
		if err := buf.Insert(buf.LineStart(line), a.marker); err != nil {
			return fmt.Errorf("comment line %d: %w", line, err)
		}
	}
	a.delta = LineDelta{First: a.begin}
	return nil
}

// Undo strips the markers again.
func (a *Comment) Undo(buf *textbuf.Buffer) error {
	a.markUndone()

	end := a.end
	if end > buf.LineCount() {
		end = buf.LineCount()
	}
	width := len([]rune(a.marker))
	for line := a.begin; line < end; line++ {
		start := buf.LineStart(line)
		if _, err := buf.Delete(start, start+width); err != nil {
			return fmt.Errorf("undo comment line %d: %w", line, err)
		}
	}
	return nil
}

// Invert returns the uncomment that strips the prepended markers.
func (a *Comment) Invert() Action {
	a.mustInvert()
	inv := &Uncomment{begin: a.begin, end: a.end, marker: a.marker}
	inv.plan = make([]bool, a.end-a.begin)
	for i := range inv.plan {
		inv.plan[i] = true
	}
	return inv
}

// AffectedLines reports the changed line range of the last Apply.
func (a *Comment) AffectedLines() LineDelta { return a.delta }

// Uncomment removes the line-comment marker at column 0 from every
// line in [begin, end) that carries one. The plan is computed at
// construction so Trivial can be checked before mutation.
type Uncomment struct {
	state
	begin, end int
	marker     string

	plan  []bool // per line: strip the marker
	delta LineDelta
}

// NewUncomment creates an uncomment action, precomputing which lines
// in [begin, end) start with the marker.
func NewUncomment(buf *textbuf.Buffer, begin, end int, marker string) *Uncomment {
	if begin < 0 {
		begin = 0
	}
	if end > buf.LineCount() {
		end = buf.LineCount()
	}
	a := &Uncomment{begin: begin, end: end, marker: marker}
	if begin >= end || marker == "" {
		return a
	}

	a.plan = make([]bool, end-begin)
	for line := begin; line < end; line++ {
		a.plan[line-begin] = strings.HasPrefix(buf.LineText(line), marker)
	}
	return a
}

// Trivial reports whether no line in range starts with the marker.
func (a *Uncomment) Trivial() bool {
	for _, strip := range a.plan {
		if strip {
			return false
		}
	}
	return true
}

// Apply strips the marker from planned lines, last line first.
func (a *Uncomment) Apply(buf *textbuf.Buffer) error {
	a.markApplied()

	width := len([]rune(a.marker))
	for line := a.end - 1; line >= a.begin; line-- {
		if !a.plan[line-a.begin] {
			continue
		}
		start := buf.LineStart(line)
		if _, err := buf.Delete(start, start+width); err != nil {
			return fmt.Errorf("uncomment line %d: %w", line, err)
		}
	}
	a.delta = LineDelta{First: a.begin}
	return nil
}

// Undo re-inserts the stripped markers.
func (a *Uncomment) Undo(buf *textbuf.Buffer) error {
	a.markUndone()

	for line := a.begin; line < a.end; line++ {
		if !a.plan[line-a.begin] {
			continue
		}
		if err := buf.Insert(buf.LineStart(line), a.marker); err != nil {
			return fmt.Errorf("undo uncomment line %d: %w", line, err)
		}
	}
	return nil
}

// Invert returns the comment action restoring the stripped markers.
func (a *Uncomment) Invert() Action {
	a.mustInvert()
	inv := &Indent{begin: a.begin, end: a.end}
	inv.perLine = make([]string, a.end-a.begin)
	for i, strip := range a.plan {
		if strip {
			inv.perLine[i] = a.marker
		}
	}
	return inv
}

// AffectedLines reports the changed line range of the last Apply.
func (a *Uncomment) AffectedLines() LineDelta { return a.delta }
