// Package action defines the closed set of reversible edit
// operations a document can execute: Replace (plain insert/delete
// with typing coalescing), ReplaceAll, Indent, Unindent, Comment and
// Uncomment. Each action captures enough before-state while applying
// to invert itself exactly.
//
// Actions alternate strictly between applied and undone. Applying an
// action twice without an intervening undo, or undoing an action that
// was never applied, is a programming fault and panics: undo/redo
// correctness depends entirely on this alternation.
package action

import "github.com/dshills/textcore/internal/engine/textbuf"

// LineDelta reports the minimal changed line range of an applied
// action: the first affected line and how many lines the action
// inserted and removed. A renderer can invalidate only these rows.
type LineDelta struct {
	First    int
	Inserted int
	Removed  int
}

// Action is a reversible, history-tracked edit operation.
type Action interface {
	// Apply executes the action against the buffer. Panics if the
	// action is already applied.
	Apply(buf *textbuf.Buffer) error

	// Undo reverts the action exactly. Panics if the action is not
	// currently applied.
	Undo(buf *textbuf.Buffer) error

	// Invert returns the symmetric inverse action. Only valid once
	// the action has been applied at least once, since the inverse is
	// built from captured before-state.
	Invert() Action

	// AffectedLines reports the minimal changed line range of the
	// last Apply.
	AffectedLines() LineDelta

	// Trivial reports whether executing the action would leave the
	// buffer unchanged. Trivial actions must be skipped by the caller
	// and never enter history.
	Trivial() bool

	isAction()
}

// state tracks the applied/undone alternation shared by all actions.
type state struct {
	applied bool
	once    bool // has been applied at least once
}

func (s *state) isAction() {}

func (s *state) markApplied() {
	if s.applied {
		panic("action: applied twice without intervening undo")
	}
	s.applied = true
	s.once = true
}

func (s *state) markUndone() {
	if !s.applied {
		panic("action: undo of an action that is not applied")
	}
	s.applied = false
}

func (s *state) mustInvert() {
	if !s.once {
		panic("action: invert before first apply")
	}
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}
