package engine

import (
	"testing"

	"github.com/dshills/textcore/internal/engine/action"
	"github.com/dshills/textcore/internal/language"
)

func TestNewDocumentDefaults(t *testing.T) {
	d := New()
	if got := d.Text(); got != "" {
		t.Errorf("Text() = %q", got)
	}
	if got := d.Height(); got != 1 {
		t.Errorf("Height() = %d, want 1", got)
	}
	if d.IsDirty() {
		t.Error("new document is dirty")
	}
	if d.CanUndo() || d.CanRedo() {
		t.Error("new document has history")
	}
}

func TestNewDocumentOptions(t *testing.T) {
	d := New(
		WithText("a\nbb\nccc"),
		WithProfile(language.Go()),
		WithIndentUnit("  "),
	)
	if got := d.Height(); got != 3 {
		t.Errorf("Height() = %d, want 3", got)
	}
	if got := d.Width(); got != 3 {
		t.Errorf("Width() = %d, want 3", got)
	}
	if got := d.Profile().Name(); got != "go" {
		t.Errorf("Profile().Name() = %q", got)
	}
	if got := d.IndentUnit(); got != "  " {
		t.Errorf("IndentUnit() = %q", got)
	}
	if d.IsDirty() {
		t.Error("document with initial text is dirty")
	}
}

func TestExecuteUndoRedo(t *testing.T) {
	d := New(WithText("hello"))

	ch, err := d.Execute(action.NewReplace(5, 0, " world", false), false)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if ch == nil || ch.Line != 0 {
		t.Errorf("change = %+v", ch)
	}
	if got := d.Text(); got != "hello world" {
		t.Fatalf("Text() = %q", got)
	}
	if got := d.Cursor(); got != 11 {
		t.Errorf("Cursor() = %d, want 11", got)
	}

	a, _, err := d.Undo()
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if a == nil {
		t.Fatal("Undo returned nil action")
	}
	if got := d.Text(); got != "hello" {
		t.Fatalf("Text() after undo = %q", got)
	}
	if !d.CanRedo() {
		t.Fatal("CanRedo() = false after undo")
	}

	a, _, err = d.Redo()
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if a == nil {
		t.Fatal("Redo returned nil action")
	}
	if got := d.Text(); got != "hello world" {
		t.Fatalf("Text() after redo = %q", got)
	}
}

func TestUndoEmptyHistory(t *testing.T) {
	d := New()
	if a, ch, err := d.Undo(); a != nil || ch != nil || err != nil {
		t.Errorf("Undo on empty history = (%v, %v, %v)", a, ch, err)
	}
	if a, ch, err := d.Redo(); a != nil || ch != nil || err != nil {
		t.Errorf("Redo on empty history = (%v, %v, %v)", a, ch, err)
	}
}

func TestExecuteSkipsTrivial(t *testing.T) {
	d := New(WithText("no leading space"))
	ch, err := d.UnindentLines(0, 1)
	if err != nil {
		t.Fatalf("UnindentLines: %v", err)
	}
	if ch != nil {
		t.Errorf("trivial unindent produced change %+v", ch)
	}
	if d.CanUndo() {
		t.Error("trivial unindent entered history")
	}
	if d.IsDirty() {
		t.Error("trivial unindent marked the document dirty")
	}
}

func TestDirtyFlag(t *testing.T) {
	d := New(WithText("x"))
	if _, err := d.InsertText(1, "y", false); err != nil {
		t.Fatal(err)
	}
	if !d.IsDirty() {
		t.Fatal("IsDirty() = false after edit")
	}

	// Undoing back to the original content does not clear the flag.
	if _, _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if !d.IsDirty() {
		t.Error("IsDirty() = false after undo to original")
	}

	d.MarkClean()
	if d.IsDirty() {
		t.Error("IsDirty() = true after MarkClean")
	}
}

func TestUndoRedoMarkDirty(t *testing.T) {
	d := New(WithText(""))
	if _, err := d.InsertText(0, "a", false); err != nil {
		t.Fatal(err)
	}
	d.MarkClean()
	if _, _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if !d.IsDirty() {
		t.Error("undo did not mark dirty")
	}
	d.MarkClean()
	if _, _, err := d.Redo(); err != nil {
		t.Fatal(err)
	}
	if !d.IsDirty() {
		t.Error("redo did not mark dirty")
	}
}

func TestSetTextResetsHistory(t *testing.T) {
	d := New(WithText("a"))
	if _, err := d.InsertText(1, "b", false); err != nil {
		t.Fatal(err)
	}
	d.SetText("fresh")
	if got := d.Text(); got != "fresh" {
		t.Errorf("Text() = %q", got)
	}
	if d.CanUndo() || d.CanRedo() {
		t.Error("history survived SetText")
	}
	if !d.IsDirty() {
		t.Error("SetText did not mark dirty")
	}
}

func TestSelectionCollapse(t *testing.T) {
	d := New(WithText("abcdef"))
	d.SetCursor(2)
	d.SetSelection(5)

	start, end, ok := d.SelectedRange()
	if !ok || start != 2 || end != 5 {
		t.Fatalf("SelectedRange() = (%d, %d, %v)", start, end, ok)
	}

	// Anchor equal to the cursor collapses to no selection.
	d.SetSelection(2)
	if _, _, ok := d.SelectedRange(); ok {
		t.Error("selection at cursor did not collapse")
	}
	if _, ok := d.Selection(); ok {
		t.Error("Selection() reports an anchor after collapse")
	}
}

func TestSelectedRangeOrdersEnds(t *testing.T) {
	d := New(WithText("abcdef"))
	d.SetCursor(5)
	d.SetSelection(1)
	start, end, ok := d.SelectedRange()
	if !ok || start != 1 || end != 5 {
		t.Errorf("SelectedRange() = (%d, %d, %v), want (1, 5, true)", start, end, ok)
	}
}

func TestCursorClamping(t *testing.T) {
	d := New(WithText("abc"))
	d.SetCursor(99)
	if got := d.Cursor(); got != 3 {
		t.Errorf("Cursor() = %d, want 3", got)
	}
	d.SetCursor(-1)
	if got := d.Cursor(); got != 0 {
		t.Errorf("Cursor() = %d, want 0", got)
	}
}

func TestMarksClampedAfterShrink(t *testing.T) {
	d := New(WithText("abcdef"))
	d.SetCursor(6)
	d.SetSelection(4)
	if _, err := d.DeleteRange(2, 6); err != nil {
		t.Fatal(err)
	}
	if got := d.Cursor(); got > d.buf.Len() {
		t.Errorf("cursor %d past buffer end %d", got, d.buf.Len())
	}
	if sel, ok := d.Selection(); ok && sel > d.buf.Len() {
		t.Errorf("selection %d past buffer end", sel)
	}
}

func TestBackspaceMergesIntoRun(t *testing.T) {
	d := New(WithText("abcde"))
	d.SetCursor(5)
	for i := 0; i < 3; i++ {
		if _, err := d.Backspace(); err != nil {
			t.Fatal(err)
		}
	}
	if got := d.Text(); got != "ab" {
		t.Fatalf("Text() = %q", got)
	}
	if _, _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "abcde" {
		t.Fatalf("one undo of the backspace run left %q", got)
	}

	// At the start of the buffer backspace is a no-op.
	d.SetCursor(0)
	if ch, err := d.Backspace(); err != nil || ch != nil {
		t.Errorf("Backspace at 0 = (%+v, %v)", ch, err)
	}
}

func TestTypingMergesToOneUndoStep(t *testing.T) {
	d := New()
	for i, r := range "word" {
		if _, err := d.InsertText(i, string(r), true); err != nil {
			t.Fatal(err)
		}
	}
	if _, _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "" {
		t.Fatalf("one undo of typed word left %q", got)
	}
	if d.CanUndo() {
		t.Error("more than one undo step for one typed word")
	}
}

func TestCommentUncommentLines(t *testing.T) {
	d := New(WithText("a\nb"), WithProfile(language.Go()))
	if _, err := d.CommentLines(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "//a\n//b" {
		t.Fatalf("after comment: %q", got)
	}
	if _, err := d.UncommentLines(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "a\nb" {
		t.Fatalf("after uncomment: %q", got)
	}
}

func TestCommentWithoutMarkerIsNoOp(t *testing.T) {
	d := New(WithText("a"), WithProfile(language.Plain()))
	ch, err := d.CommentLines(0, 1)
	if err != nil || ch != nil {
		t.Errorf("CommentLines = (%+v, %v)", ch, err)
	}
	if d.CanUndo() {
		t.Error("no-op comment entered history")
	}
}

func TestIndentLines(t *testing.T) {
	d := New(WithText("a\nb"), WithIndentUnit("  "))
	if _, err := d.IndentLines(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "  a\n  b" {
		t.Fatalf("after indent: %q", got)
	}
	if _, err := d.UnindentLines(0, 2); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "a\nb" {
		t.Fatalf("after unindent: %q", got)
	}
}

func TestSelectedLineRange(t *testing.T) {
	d := New(WithText("aa\nbb\ncc\ndd"))

	d.SetCursor(4) // middle of line 1
	begin, end := d.SelectedLineRange()
	if begin != 1 || end != 2 {
		t.Errorf("cursor only: (%d, %d), want (1, 2)", begin, end)
	}

	d.SetCursor(1)
	d.SetSelection(7) // line 0 through line 2
	begin, end = d.SelectedLineRange()
	if begin != 0 || end != 3 {
		t.Errorf("selection: (%d, %d), want (0, 3)", begin, end)
	}
}

func TestWordRangeAt(t *testing.T) {
	d := New(WithText("foo bar_9 +"))

	tests := []struct {
		pos        int
		start, end int
	}{
		{0, 0, 3},
		{2, 0, 3},
		{5, 4, 9},  // bar_9 including digit
		{3, 3, 3},  // space: empty range
		{10, 10, 10}, // '+': empty range
	}
	for _, tt := range tests {
		start, end := d.WordRangeAt(tt.pos)
		if start != tt.start || end != tt.end {
			t.Errorf("WordRangeAt(%d) = (%d, %d), want (%d, %d)",
				tt.pos, start, end, tt.start, tt.end)
		}
	}
}

func TestReplaceAllText(t *testing.T) {
	d := New(WithText("a-a-a"))
	n, ch, err := d.ReplaceAllText("a", "aa", false)
	if err != nil {
		t.Fatalf("ReplaceAllText: %v", err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	if ch == nil {
		t.Error("nil change for a real replacement")
	}
	if got := d.Text(); got != "aa-aa-aa" {
		t.Fatalf("Text() = %q", got)
	}

	// The whole replacement is one undo step.
	if _, _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "a-a-a" {
		t.Fatalf("Text() after undo = %q", got)
	}
	if d.CanUndo() {
		t.Error("replace-all left more than one undo step")
	}
}

func TestReplaceAllTextIgnoreCase(t *testing.T) {
	d := New(WithText("Ab aB ab"))
	n, _, err := d.ReplaceAllText("ab", "x", true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("count = %d, want 3", n)
	}
	if got := d.Text(); got != "x x x" {
		t.Fatalf("Text() = %q", got)
	}
	if _, _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); got != "Ab aB ab" {
		t.Fatalf("Text() after undo = %q", got)
	}
}

func TestReplaceAllTextNoMatch(t *testing.T) {
	d := New(WithText("abc"))
	n, ch, err := d.ReplaceAllText("zz", "y", false)
	if n != 0 || ch != nil || err != nil {
		t.Errorf("ReplaceAllText = (%d, %+v, %v)", n, ch, err)
	}
	if d.CanUndo() {
		t.Error("no-match replace-all entered history")
	}
}

func TestChangeDescriptorDirections(t *testing.T) {
	d := New(WithText("one\ntwo"))

	ch, err := d.Execute(action.NewReplace(3, 0, "\nx", false), false)
	if err != nil {
		t.Fatal(err)
	}
	if ch.Line != 0 || ch.InsertedLines != 1 || ch.RemovedLines != 0 {
		t.Errorf("apply change = %+v, want {0 1 0}", ch)
	}

	_, ch, err = d.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if ch.Line != 0 || ch.InsertedLines != 0 || ch.RemovedLines != 1 {
		t.Errorf("undo change = %+v, want {0 0 1}", ch)
	}

	_, ch, err = d.Redo()
	if err != nil {
		t.Fatal(err)
	}
	if ch.Line != 0 || ch.InsertedLines != 1 || ch.RemovedLines != 0 {
		t.Errorf("redo change = %+v, want {0 1 0}", ch)
	}
}
