package history

import (
	"testing"

	"github.com/dshills/textcore/internal/engine/action"
	"github.com/dshills/textcore/internal/engine/textbuf"
)

func typed(t *testing.T, buf *textbuf.Buffer, pos int, s string) *Entry {
	t.Helper()
	a := action.NewReplace(pos, 0, s, true)
	if err := a.Apply(buf); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return &Entry{Action: a, Cursor: pos}
}

func TestPushMergesTypingRun(t *testing.T) {
	buf := textbuf.FromString("")
	h := New(0)

	for i, r := range "word" {
		merged := h.Push(typed(t, buf, i, string(r)), true)
		if i == 0 && merged {
			t.Error("first keystroke reported merged")
		}
		if i > 0 && !merged {
			t.Errorf("keystroke %d did not merge", i)
		}
	}
	if got := h.UndoCount(); got != 1 {
		t.Fatalf("UndoCount() = %d, want 1 for the whole word", got)
	}

	e := h.PopUndo()
	if err := e.Action.Undo(buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := buf.String(); got != "" {
		t.Fatalf("buffer after one undo = %q", got)
	}
	// The run keeps the marks of its first keystroke.
	if e.Cursor != 0 {
		t.Errorf("run entry Cursor = %d, want 0", e.Cursor)
	}
}

func TestMergeBreaksOnIntervening(t *testing.T) {
	buf := textbuf.FromString("")
	h := New(0)

	h.Push(typed(t, buf, 0, "a"), true)
	h.Push(typed(t, buf, 1, "b"), true)

	// A paste is not a single typing step and starts a new unit.
	paste := action.NewReplace(2, 0, "XY", false)
	if err := paste.Apply(buf); err != nil {
		t.Fatal(err)
	}
	h.Push(&Entry{Action: paste, Cursor: 2}, true)

	h.Push(typed(t, buf, 4, "c"), true)
	h.Push(typed(t, buf, 5, "d"), true)

	if got := h.UndoCount(); got != 3 {
		t.Errorf("UndoCount() = %d, want 3 (run, paste, run)", got)
	}
}

func TestMergeDisabledByCaller(t *testing.T) {
	buf := textbuf.FromString("")
	h := New(0)
	h.Push(typed(t, buf, 0, "a"), true)
	h.Push(typed(t, buf, 1, "b"), false)
	if got := h.UndoCount(); got != 2 {
		t.Errorf("UndoCount() = %d, want 2 with merging disabled", got)
	}
}

func TestPushClearsRedo(t *testing.T) {
	buf := textbuf.FromString("")
	h := New(0)

	h.Push(typed(t, buf, 0, "a"), false)
	e := h.PopUndo()
	if err := e.Action.Undo(buf); err != nil {
		t.Fatal(err)
	}
	if !h.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	h.Push(typed(t, buf, 0, "b"), false)
	if h.CanRedo() {
		t.Error("redo stack survived a fresh push")
	}
}

func TestPopMovesBetweenStacks(t *testing.T) {
	buf := textbuf.FromString("")
	h := New(0)
	orig := typed(t, buf, 0, "a")
	h.Push(orig, false)

	popped := h.PopUndo()
	if popped != orig {
		t.Fatal("PopUndo returned a different entry")
	}
	if h.CanUndo() || !h.CanRedo() {
		t.Fatalf("stacks after PopUndo: undo=%d redo=%d", h.UndoCount(), h.RedoCount())
	}

	if back := h.PopRedo(); back != orig {
		t.Fatal("PopRedo returned a different entry")
	}
	if !h.CanUndo() || h.CanRedo() {
		t.Fatalf("stacks after PopRedo: undo=%d redo=%d", h.UndoCount(), h.RedoCount())
	}
}

func TestPopEmpty(t *testing.T) {
	h := New(0)
	if h.PopUndo() != nil {
		t.Error("PopUndo on empty history returned an entry")
	}
	if h.PopRedo() != nil {
		t.Error("PopRedo on empty history returned an entry")
	}
}

func TestHistoryBound(t *testing.T) {
	buf := textbuf.FromString("")
	h := New(3)
	for i := 0; i < 5; i++ {
		h.Push(typed(t, buf, i, "x"), false)
	}
	if got := h.UndoCount(); got != 3 {
		t.Errorf("UndoCount() = %d, want 3", got)
	}
}

func TestClear(t *testing.T) {
	buf := textbuf.FromString("")
	h := New(0)
	h.Push(typed(t, buf, 0, "a"), false)
	h.PopUndo()
	h.Push(typed(t, buf, 0, "b"), false)
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("history not empty after Clear")
	}
}
