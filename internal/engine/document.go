package engine

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/action"
	"github.com/dshills/textcore/internal/engine/history"
	"github.com/dshills/textcore/internal/engine/textbuf"
	"github.com/dshills/textcore/internal/language"
)

// Change is the minimal change descriptor returned after a mutating
// call: the first affected line and how many lines were inserted and
// removed. A front-end uses it to invalidate only the affected rows of
// cached layout.
type Change struct {
	Line          int
	InsertedLines int
	RemovedLines  int
}

// Document owns the character buffer and the undo/redo stacks and
// orchestrates action execution, search, bracket matching and view
// production. One language profile per document; changing language
// means creating a new document.
type Document struct {
	buf     *textbuf.Buffer
	hist    *history.History
	profile *language.Profile

	cursor    int
	selection int
	hasSel    bool

	dirty bool

	indentUnit     string
	maxUndoEntries int
	initText       string
}

// New creates a document.
func New(opts ...Option) *Document {
	d := &Document{
		profile:        language.Plain(),
		indentUnit:     DefaultIndentUnit,
		maxUndoEntries: DefaultMaxUndoEntries,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.buf = textbuf.FromString(d.initText)
	d.hist = history.New(d.maxUndoEntries)
	return d
}

// Profile returns the document's language profile.
func (d *Document) Profile() *language.Profile { return d.profile }

// IndentUnit returns the configured indent unit.
func (d *Document) IndentUnit() string { return d.indentUnit }

// Width returns the length of the longest line in code points.
func (d *Document) Width() int { return d.buf.MaxLineLen() }

// Height returns the total line count. Never less than 1.
func (d *Document) Height() int { return d.buf.LineCount() }

// Text returns the full buffer content.
func (d *Document) Text() string { return d.buf.String() }

// Range returns the text in [begin, end). Bounds are clamped.
func (d *Document) Range(begin, end int) string { return d.buf.Slice(begin, end) }

// LineText returns one line without its trailing newline.
func (d *Document) LineText(line int) string { return d.buf.LineText(line) }

// SetText replaces the whole content, resets the history and marks the
// document dirty.
func (d *Document) SetText(text string) {
	d.buf.SetText(text)
	d.hist.Clear()
	d.dirty = true
	d.clampMarks()
}

// IsDirty reports whether the document changed since creation or the
// last MarkClean. Undoing back to the original state does not clear it.
func (d *Document) IsDirty() bool { return d.dirty }

// MarkClean clears the dirty flag.
func (d *Document) MarkClean() { d.dirty = false }

// Iterator returns a position iterator over the current buffer. The
// iterator is invalidated by any mutation and must be re-derived after
// each edit.
func (d *Document) Iterator() *textbuf.Iterator {
	return textbuf.NewIterator(d.buf)
}

// OffsetToPoint converts an offset to a (row, column) point.
func (d *Document) OffsetToPoint(offset int) textbuf.Point {
	return d.buf.OffsetToPoint(offset)
}

// PointToOffset converts a clamped (row, column) point to an offset.
func (d *Document) PointToOffset(p textbuf.Point) int {
	return d.buf.PointToOffset(p)
}

// ===========================================================================
// Cursor and selection
// ===========================================================================

// Cursor returns the cursor offset.
func (d *Document) Cursor() int { return d.cursor }

// SetCursor moves the cursor, clamping into [0, size].
func (d *Document) SetCursor(offset int) {
	d.cursor = d.buf.ClampOffset(offset)
}

// Selection returns the selection anchor and whether one is active.
func (d *Document) Selection() (int, bool) {
	if !d.hasSel {
		return 0, false
	}
	return d.selection, true
}

// SetSelection sets the selection anchor, clamping the offset. An
// anchor equal to the cursor collapses to no selection.
func (d *Document) SetSelection(offset int) {
	offset = d.buf.ClampOffset(offset)
	if offset == d.cursor {
		d.hasSel = false
		return
	}
	d.selection = offset
	d.hasSel = true
}

// ClearSelection drops the selection.
func (d *Document) ClearSelection() { d.hasSel = false }

// SelectedRange returns the ordered selection range. Cursor and anchor
// carry no ordering invariant, so this takes min and max.
func (d *Document) SelectedRange() (start, end int, ok bool) {
	if !d.hasSel || d.selection == d.cursor {
		return 0, 0, false
	}
	start, end = d.selection, d.cursor
	if end < start {
		start, end = end, start
	}
	return start, end, true
}

// SelectedLineRange returns the half-open line range [begin, end)
// covered by the selection, or the cursor's own line when there is no
// selection.
func (d *Document) SelectedLineRange() (begin, end int) {
	start, stop, ok := d.SelectedRange()
	if !ok {
		line := d.buf.LineForOffset(d.cursor)
		return line, line + 1
	}
	return d.buf.LineForOffset(start), d.buf.LineForOffset(stop) + 1
}

// WordRangeAt returns the offsets [start, end) of the word or number
// run containing pos, or the empty range (pos, pos) when the character
// there is not a word constituent.
func (d *Document) WordRangeAt(pos int) (start, end int) {
	pos = d.buf.ClampOffset(pos)
	if !isWordRune(d.buf.RuneAt(pos)) {
		return pos, pos
	}
	start, end = pos, pos+1
	for start > 0 && isWordRune(d.buf.RuneAt(start-1)) {
		start--
	}
	for end < d.buf.Len() && isWordRune(d.buf.RuneAt(end)) {
		end++
	}
	return start, end
}

func isWordRune(r rune) bool {
	switch language.ClassOf(r) {
	case language.ClassWord, language.ClassNumberSymbol:
		return true
	}
	return false
}

// clampMarks pulls cursor and selection back into the buffer after a
// mutation shrank it.
func (d *Document) clampMarks() {
	d.cursor = d.buf.ClampOffset(d.cursor)
	if d.hasSel {
		d.selection = d.buf.ClampOffset(d.selection)
		if d.selection == d.cursor {
			d.hasSel = false
		}
	}
}

// ===========================================================================
// Action execution and history
// ===========================================================================

// Execute applies an action, records it in the history and returns the
// change descriptor. Trivial actions are skipped without touching
// buffer or history and report a nil change. When canMerge is set, a
// mergeable typing step coalesces into the previous undo entry.
func (d *Document) Execute(a action.Action, canMerge bool) (*Change, error) {
	if a.Trivial() {
		return nil, nil
	}
	entry := &history.Entry{
		Action:       a,
		Cursor:       d.cursor,
		Selection:    d.selection,
		HasSelection: d.hasSel,
	}
	if err := a.Apply(d.buf); err != nil {
		return nil, fmt.Errorf("execute: %w", err)
	}
	d.hist.Push(entry, canMerge)
	d.dirty = true

	if r, ok := a.(*action.Replace); ok {
		d.cursor = r.End()
	}
	d.clampMarks()

	delta := a.AffectedLines()
	return &Change{Line: delta.First, InsertedLines: delta.Inserted, RemovedLines: delta.Removed}, nil
}

// Undo reverts the most recent undo step and moves it to the redo
// stack. Cursor and selection return to where they were before the
// edit. Returns the original action and the change descriptor, or
// nils when history is empty.
func (d *Document) Undo() (action.Action, *Change, error) {
	e := d.hist.PopUndo()
	if e == nil {
		return nil, nil, nil
	}
	if err := e.Action.Undo(d.buf); err != nil {
		return nil, nil, fmt.Errorf("undo: %w", err)
	}
	d.dirty = true

	d.cursor = e.Cursor
	d.selection = e.Selection
	d.hasSel = e.HasSelection
	d.clampMarks()

	// The change runs in the opposite direction of the original apply.
	delta := e.Action.AffectedLines()
	return e.Action, &Change{Line: delta.First, InsertedLines: delta.Removed, RemovedLines: delta.Inserted}, nil
}

// Redo reapplies the most recent undone step and moves it back to the
// undo stack. Returns the action and the change descriptor, or nils
// when there is nothing to redo.
func (d *Document) Redo() (action.Action, *Change, error) {
	e := d.hist.PopRedo()
	if e == nil {
		return nil, nil, nil
	}
	if err := e.Action.Apply(d.buf); err != nil {
		return nil, nil, fmt.Errorf("redo: %w", err)
	}
	d.dirty = true

	if r, ok := e.Action.(*action.Replace); ok {
		d.cursor = r.End()
	}
	d.clampMarks()

	delta := e.Action.AffectedLines()
	return e.Action, &Change{Line: delta.First, InsertedLines: delta.Inserted, RemovedLines: delta.Removed}, nil
}

// CanUndo reports whether an undo step is available.
func (d *Document) CanUndo() bool { return d.hist.CanUndo() }

// CanRedo reports whether a redo step is available.
func (d *Document) CanRedo() bool { return d.hist.CanRedo() }

// ===========================================================================
// Edit conveniences
// ===========================================================================

// InsertText inserts text at an offset as an undoable step. Typing
// should pass mergeable=true so runs coalesce; paste and programmatic
// edits pass false.
func (d *Document) InsertText(pos int, text string, mergeable bool) (*Change, error) {
	return d.Execute(action.NewReplace(d.buf.ClampOffset(pos), 0, text, mergeable), mergeable)
}

// DeleteRange removes [start, end) as an undoable step.
func (d *Document) DeleteRange(start, end int) (*Change, error) {
	start = d.buf.ClampOffset(start)
	end = d.buf.ClampOffset(end)
	if end < start {
		start, end = end, start
	}
	return d.Execute(action.NewReplace(start, end-start, "", false), false)
}

// Backspace deletes the single character before the cursor as a
// mergeable step, so holding backspace undoes as one run.
func (d *Document) Backspace() (*Change, error) {
	if d.cursor == 0 {
		return nil, nil
	}
	return d.Execute(action.NewReplace(d.cursor-1, 1, "", true), true)
}

// IndentLines indents the line range [begin, end) by one indent unit.
func (d *Document) IndentLines(begin, end int) (*Change, error) {
	return d.Execute(action.NewIndent(begin, end, d.indentUnit), false)
}

// UnindentLines removes up to one indent unit of leading whitespace
// from each line of [begin, end). A range with nothing removable is
// skipped entirely.
func (d *Document) UnindentLines(begin, end int) (*Change, error) {
	return d.Execute(action.NewUnindent(d.buf, begin, end, d.indentUnit), false)
}

// CommentLines prepends the language's line-comment marker on each
// line of [begin, end). No-op when the language defines no marker.
func (d *Document) CommentLines(begin, end int) (*Change, error) {
	marker, ok := d.profile.LineComment()
	if !ok {
		return nil, nil
	}
	return d.Execute(action.NewComment(begin, end, marker), false)
}

// UncommentLines strips the line-comment marker from each line of
// [begin, end) that carries one.
func (d *Document) UncommentLines(begin, end int) (*Change, error) {
	marker, ok := d.profile.LineComment()
	if !ok {
		return nil, nil
	}
	return d.Execute(action.NewUncomment(d.buf, begin, end, marker), false)
}

// ReplaceAllText replaces every non-overlapping occurrence of key with
// replacement as one undoable step. Returns the occurrence count.
func (d *Document) ReplaceAllText(key, replacement string, ignoreCase bool) (int, *Change, error) {
	offsets := d.findAll(key, ignoreCase)
	if len(offsets) == 0 {
		return 0, nil, nil
	}
	a := action.NewReplaceAll(offsets, len([]rune(key)), replacement)
	ch, err := d.Execute(a, false)
	if err != nil {
		return 0, nil, err
	}
	return len(offsets), ch, nil
}
