package action

import (
	"fmt"
	"strings"

	"github.com/dshills/textcore/internal/engine/textbuf"
)

// Indent inserts one indent unit at column 0 of every line in the
// range [begin, end).
type Indent struct {
	state
	begin, end int
	unit       string

	// perLine overrides unit per line; set when an Indent is built as
	// the inverse of an Unindent, which may have stripped different
	// prefixes per line. An empty entry skips the line.
	perLine []string

	delta LineDelta
}

// NewIndent creates an indent action over the line range [begin, end)
// using the given indent unit (a tab or a run of spaces).
func NewIndent(begin, end int, unit string) *Indent {
	if begin < 0 {
		begin = 0
	}
	return &Indent{begin: begin, end: end, unit: unit}
}

// Trivial reports whether the action would not change the buffer.
func (a *Indent) Trivial() bool {
	if a.begin >= a.end || a.unit == "" && a.perLine == nil {
		return true
	}
	if a.perLine != nil {
		for _, s := range a.perLine {
			if s != "" {
				return false
			}
		}
		return true
	}
	return false
}

func (a *Indent) textFor(line int) string {
	if a.perLine != nil {
		return a.perLine[line-a.begin]
	}
	return a.unit
}

// Apply inserts the indent unit on every line, last line first so
// earlier line starts stay valid.
func (a *Indent) Apply(buf *textbuf.Buffer) error {
	a.markApplied()

	end := a.end
	if end > buf.LineCount() {
		end = buf.LineCount()
	}
	for line := end - 1; line >= a.begin; line-- {
		text := a.textFor(line)
		if text == "" {
			continue
		}
		if err := buf.Insert(buf.LineStart(line), text); err != nil {
			return fmt.Errorf("indent line %d: %w", line, err)
		}
	}
	a.delta = LineDelta{First: a.begin}
	return nil
}

// Undo strips the inserted prefixes again.
func (a *Indent) Undo(buf *textbuf.Buffer) error {
	a.markUndone()

	end := a.end
	if end > buf.LineCount() {
		end = buf.LineCount()
	}
	for line := a.begin; line < end; line++ {
		text := a.textFor(line)
		if text == "" {
			continue
		}
		start := buf.LineStart(line)
		if _, err := buf.Delete(start, start+len([]rune(text))); err != nil {
			return fmt.Errorf("undo indent line %d: %w", line, err)
		}
	}
	return nil
}

// Invert returns the unindent that strips exactly what was inserted.
func (a *Indent) Invert() Action {
	a.mustInvert()
	inv := &Unindent{begin: a.begin, end: a.end, unit: a.unit}
	inv.plan = make([]string, a.end-a.begin)
	for line := a.begin; line < a.end; line++ {
		inv.plan[line-a.begin] = a.textFor(line)
	}
	return inv
}

// AffectedLines reports the changed line range of the last Apply.
func (a *Indent) AffectedLines() LineDelta { return a.delta }

// Unindent removes up to one leading indent unit (one tab, or up to N
// leading spaces) from every line in [begin, end). The removal plan
// is computed against the buffer at construction time, so Trivial can
// be checked before anything mutates.
type Unindent struct {
	state
	begin, end int
	unit       string

	plan  []string // prefix to strip per line; "" means untouched
	delta LineDelta
}

// NewUnindent creates an unindent action, precomputing which leading
// whitespace each line in [begin, end) loses.
func NewUnindent(buf *textbuf.Buffer, begin, end int, unit string) *Unindent {
	if begin < 0 {
		begin = 0
	}
	if end > buf.LineCount() {
		end = buf.LineCount()
	}
	a := &Unindent{begin: begin, end: end, unit: unit}
	if begin >= end {
		return a
	}

	width := len([]rune(unit))
	if width == 0 {
		width = 1
	}
	a.plan = make([]string, end-begin)
	for line := begin; line < end; line++ {
		text := buf.LineText(line)
		switch {
		case strings.HasPrefix(text, "\t"):
			a.plan[line-begin] = "\t"
		default:
			n := 0
			for n < len(text) && n < width && text[n] == ' ' {
				n++
			}
			a.plan[line-begin] = text[:n]
		}
	}
	return a
}

// Trivial reports whether no line in range has removable leading
// whitespace.
func (a *Unindent) Trivial() bool {
	for _, p := range a.plan {
		if p != "" {
			return false
		}
	}
	return true
}

// Apply strips the planned prefixes, last line first.
func (a *Unindent) Apply(buf *textbuf.Buffer) error {
	a.markApplied()

	for line := a.end - 1; line >= a.begin; line-- {
		p := a.plan[line-a.begin]
		if p == "" {
			continue
		}
		start := buf.LineStart(line)
		if _, err := buf.Delete(start, start+len([]rune(p))); err != nil {
			return fmt.Errorf("unindent line %d: %w", line, err)
		}
	}
	a.delta = LineDelta{First: a.begin}
	return nil
}

// Undo re-inserts the stripped prefixes.
func (a *Unindent) Undo(buf *textbuf.Buffer) error {
	a.markUndone()

	for line := a.begin; line < a.end; line++ {
		p := a.plan[line-a.begin]
		if p == "" {
			continue
		}
		if err := buf.Insert(buf.LineStart(line), p); err != nil {
			return fmt.Errorf("undo unindent line %d: %w", line, err)
		}
	}
	return nil
}

// Invert returns the indent that restores the stripped prefixes.
func (a *Unindent) Invert() Action {
	a.mustInvert()
	return &Indent{begin: a.begin, end: a.end, perLine: append([]string{}, a.plan...)}
}

// AffectedLines reports the changed line range of the last Apply.
func (a *Unindent) AffectedLines() LineDelta { return a.delta }
