// Package history maintains the undo and redo stacks of a document.
//
// Each entry pairs an applied action with the cursor and selection as
// they were before the edit, so undo can restore the caller's marks
// exactly. Undo pops an entry, moves it to the redo stack, and hands
// it back; any fresh push clears the redo stack. Consecutive mergeable
// typing steps coalesce into the entry already on top of the undo
// stack so a typed word or a backspace run undoes as one step.
package history

import "github.com/dshills/textcore/internal/engine/action"

// DefaultMaxEntries bounds the undo stack when no limit is given.
const DefaultMaxEntries = 1000

// Entry is one undo step: an applied action plus the marks captured
// immediately before it was applied.
type Entry struct {
	Action       action.Action
	Cursor       int
	Selection    int
	HasSelection bool
}

// History holds the undo and redo stacks.
type History struct {
	undo []*Entry
	redo []*Entry

	maxEntries int
}

// New creates a history bounded to maxEntries undo steps.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Push records an applied action as a new undo step and clears the
// redo stack. When canMerge is set and both the new action and the top
// of the stack are mergeable Replaces, the two coalesce into one step
// keeping the top entry's marks; Push reports whether that happened.
func (h *History) Push(e *Entry, canMerge bool) bool {
	h.redo = nil

	if canMerge && len(h.undo) > 0 {
		if top, ok := h.undo[len(h.undo)-1].Action.(*action.Replace); ok {
			if next, ok := e.Action.(*action.Replace); ok && top.CanMerge(next) {
				top.Merge(next)
				return true
			}
		}
	}

	h.undo = append(h.undo, e)
	if len(h.undo) > h.maxEntries {
		excess := len(h.undo) - h.maxEntries
		h.undo = append(h.undo[:0], h.undo[excess:]...)
	}
	return false
}

// PopUndo removes and returns the most recent undo step, moving it to
// the redo stack. Returns nil when there is nothing to undo.
func (h *History) PopUndo() *Entry {
	if len(h.undo) == 0 {
		return nil
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, e)
	return e
}

// PopRedo removes and returns the most recent redo step, moving it
// back to the undo stack. Returns nil when there is nothing to redo.
func (h *History) PopRedo() *Entry {
	if len(h.redo) == 0 {
		return nil
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, e)
	return e
}

// CanUndo reports whether an undo step is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoCount returns the number of available undo steps.
func (h *History) UndoCount() int { return len(h.undo) }

// RedoCount returns the number of available redo steps.
func (h *History) RedoCount() int { return len(h.redo) }

// Clear drops all history.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
