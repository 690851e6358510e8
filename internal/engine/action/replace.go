package action

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/textbuf"
)

// Replace removes removeCount code points at pos and inserts text in
// their place. It generalizes plain insertion and deletion and is the
// only action eligible for typing-run coalescing.
type Replace struct {
	state
	pos         int
	removeCount int
	insert      []rune
	mergeable   bool

	removed []rune // captured on apply
	delta   LineDelta
}

// NewReplace creates a replace action. A mergeable replace may be
// coalesced with an immediately following single-character typing
// step; paste and programmatic edits should pass mergeable=false.
func NewReplace(pos, removeCount int, text string, mergeable bool) *Replace {
	return &Replace{
		pos:         pos,
		removeCount: removeCount,
		insert:      []rune(text),
		mergeable:   mergeable,
	}
}

// Pos returns the action's start offset.
func (a *Replace) Pos() int { return a.pos }

// End returns the offset just past the inserted text, which is where
// the cursor lands after the edit.
func (a *Replace) End() int { return a.pos + len(a.insert) }

// Text returns the inserted text.
func (a *Replace) Text() string { return string(a.insert) }

// Removed returns the text removed by the last Apply.
func (a *Replace) Removed() string { return string(a.removed) }

// Mergeable reports whether the action may coalesce with a following
// typing step.
func (a *Replace) Mergeable() bool { return a.mergeable }

// Trivial reports whether the action would not change the buffer.
func (a *Replace) Trivial() bool {
	return a.removeCount == 0 && len(a.insert) == 0
}

// Apply executes the replacement and captures the removed text.
func (a *Replace) Apply(buf *textbuf.Buffer) error {
	a.markApplied()

	first := buf.LineForOffset(a.pos)
	removed, err := buf.Replace(a.pos, a.removeCount, string(a.insert))
	if err != nil {
		a.markUndone()
		return fmt.Errorf("replace at %d: %w", a.pos, err)
	}
	a.removed = []rune(removed)
	a.delta = LineDelta{
		First:    first,
		Inserted: countLines(string(a.insert)),
		Removed:  countLines(removed),
	}
	return nil
}

// Undo restores the removed text.
func (a *Replace) Undo(buf *textbuf.Buffer) error {
	a.markUndone()

	if _, err := buf.Replace(a.pos, len(a.insert), string(a.removed)); err != nil {
		a.applied = true
		return fmt.Errorf("undo replace at %d: %w", a.pos, err)
	}
	return nil
}

// Invert returns the symmetric replace.
func (a *Replace) Invert() Action {
	a.mustInvert()
	return NewReplace(a.pos, len(a.insert), string(a.removed), false)
}

// AffectedLines reports the changed line range of the last Apply.
func (a *Replace) AffectedLines() LineDelta { return a.delta }

// CanMerge reports whether next may be coalesced into this action as
// one undo step. Eligible shapes, per the typing-run rules:
//
//   - a single-character insertion (not a newline) exactly at this
//     action's resulting cursor, or
//   - a single-character backward deletion adjacent to this action's
//     resulting cursor, when this action is itself a pure deletion.
//
// Everything else — paste, programmatic replaces, non-adjacent edits,
// typed newlines — forces a merge boundary.
func (a *Replace) CanMerge(next *Replace) bool {
	if !a.mergeable || !next.mergeable {
		return false
	}

	// Typing: one inserted rune, nothing removed, adjacent.
	if next.removeCount == 0 && len(next.insert) == 1 && next.insert[0] != '\n' {
		return next.pos == a.End()
	}

	// Backspace run: one removed rune, nothing inserted, directly
	// before a previous pure deletion.
	if next.removeCount == 1 && len(next.insert) == 0 && len(a.insert) == 0 {
		return next.pos+1 == a.pos
	}

	return false
}

// Merge coalesces next (already applied) into this action so one undo
// reverts both. Callers must check CanMerge first.
func (a *Replace) Merge(next *Replace) {
	if next.removeCount == 0 {
		// Typing run grows the inserted text.
		a.insert = append(a.insert, next.insert...)
		return
	}

	// Backspace run grows the removed text backward.
	a.pos = next.pos
	a.removeCount += next.removeCount
	a.removed = append(append([]rune{}, next.removed...), a.removed...)
	if next.delta.First < a.delta.First {
		a.delta.First = next.delta.First
	}
	a.delta.Removed += next.delta.Removed
}
