// Package term is the terminal front-end: it turns key events into
// document operations and blits the document's packed view onto a
// tcell screen. All editing semantics live in the engine; this package
// only translates.
package term

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/textcore/internal/engine"
	"github.com/dshills/textcore/internal/logger"
	"github.com/dshills/textcore/internal/session"
)

// Editor drives one document on one screen.
type Editor struct {
	screen tcell.Screen
	doc    *engine.Document
	theme  *Theme

	path    string
	top     int // first visible row
	left    int // first visible column
	findKey string
	status  string

	quitArmed bool
}

// New creates an editor for a document backed by the given file path.
func New(screen tcell.Screen, doc *engine.Document, theme *Theme, path string) *Editor {
	return &Editor{screen: screen, doc: doc, theme: theme, path: path}
}

// RestoreState applies a remembered session state.
func (e *Editor) RestoreState(st session.FileState) {
	e.doc.SetCursor(st.Cursor)
	if st.HasSelection {
		e.doc.SetSelection(st.Selection)
	}
	e.top, e.left = st.Top, st.Left
}

// State captures the current session state.
func (e *Editor) State() session.FileState {
	sel, hasSel := e.doc.Selection()
	return session.FileState{
		Cursor:       e.doc.Cursor(),
		Selection:    sel,
		HasSelection: hasSel,
		Top:          e.top,
		Left:         e.left,
	}
}

// Run processes events until the user quits.
func (e *Editor) Run() error {
	if err := e.screen.Init(); err != nil {
		return err
	}
	defer e.screen.Fini()
	e.screen.EnablePaste()

	e.render()
	for {
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			if quit := e.handleKey(ev); quit {
				return nil
			}
		case nil:
			return nil
		}
		e.render()
	}
}

// handleKey reports true when the editor should exit.
func (e *Editor) handleKey(ev *tcell.EventKey) bool {
	e.status = ""
	if ev.Key() != tcell.KeyCtrlQ {
		e.quitArmed = false
	}

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		if e.doc.IsDirty() && !e.quitArmed {
			e.quitArmed = true
			e.status = "unsaved changes, ctrl-q again to quit"
			return false
		}
		return true
	case tcell.KeyCtrlS:
		e.save()
	case tcell.KeyCtrlZ:
		e.checked(func() (*engine.Change, error) {
			_, ch, err := e.doc.Undo()
			return ch, err
		})
	case tcell.KeyCtrlY:
		e.checked(func() (*engine.Change, error) {
			_, ch, err := e.doc.Redo()
			return ch, err
		})
	case tcell.KeyCtrlD:
		e.selectWord()
	case tcell.KeyCtrlN:
		e.findNext()
	case tcell.KeyCtrlUnderscore:
		e.toggleComment()
	case tcell.KeyTab:
		e.indent()
	case tcell.KeyBacktab:
		begin, end := e.doc.SelectedLineRange()
		e.checked(func() (*engine.Change, error) { return e.doc.UnindentLines(begin, end) })
	case tcell.KeyEnter:
		e.checked(func() (*engine.Change, error) {
			return e.doc.InsertText(e.doc.Cursor(), "\n", true)
		})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.deleteSelectionOr(func() (*engine.Change, error) { return e.doc.Backspace() })
	case tcell.KeyDelete:
		e.deleteSelectionOr(func() (*engine.Change, error) {
			return e.doc.DeleteRange(e.doc.Cursor(), e.doc.Cursor()+1)
		})
	case tcell.KeyLeft, tcell.KeyRight, tcell.KeyUp, tcell.KeyDown,
		tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyPgDn:
		e.move(ev)
	case tcell.KeyRune:
		e.deleteSelectionOr(nil)
		e.checked(func() (*engine.Change, error) {
			return e.doc.InsertText(e.doc.Cursor(), string(ev.Rune()), true)
		})
	}
	return false
}

// checked runs a mutating operation and surfaces its error on the
// status line.
func (e *Editor) checked(op func() (*engine.Change, error)) {
	if _, err := op(); err != nil {
		logger.Error("edit failed", "error", err)
		e.status = err.Error()
	}
}

// deleteSelectionOr removes the active selection; with no selection it
// runs the fallback instead (nil to do nothing).
func (e *Editor) deleteSelectionOr(fallback func() (*engine.Change, error)) {
	if start, end, ok := e.doc.SelectedRange(); ok {
		e.doc.ClearSelection()
		e.checked(func() (*engine.Change, error) { return e.doc.DeleteRange(start, end) })
		return
	}
	if fallback != nil {
		e.checked(fallback)
	}
}

func (e *Editor) move(ev *tcell.EventKey) {
	extend := ev.Modifiers()&tcell.ModShift != 0
	if extend {
		if _, ok := e.doc.Selection(); !ok {
			e.doc.SetSelection(e.doc.Cursor())
		}
	} else {
		e.doc.ClearSelection()
	}

	it := e.doc.Iterator()
	it.SetPosition(e.doc.Cursor())
	switch ev.Key() {
	case tcell.KeyLeft:
		it.Back()
	case tcell.KeyRight:
		it.Advance()
	case tcell.KeyUp:
		it.SetCoordinates(it.Row()-1, it.Col())
	case tcell.KeyDown:
		it.SetCoordinates(it.Row()+1, it.Col())
	case tcell.KeyHome:
		it.SetCoordinates(it.Row(), 0)
	case tcell.KeyEnd:
		it.SetCoordinates(it.Row(), len([]rune(e.doc.LineText(it.Row()))))
	case tcell.KeyPgUp:
		_, h := e.screen.Size()
		it.SetCoordinates(it.Row()-(h-1), it.Col())
	case tcell.KeyPgDn:
		_, h := e.screen.Size()
		it.SetCoordinates(it.Row()+(h-1), it.Col())
	}
	e.doc.SetCursor(it.Pos())
}

func (e *Editor) selectWord() {
	start, end := e.doc.WordRangeAt(e.doc.Cursor())
	if start == end {
		return
	}
	e.doc.SetCursor(end)
	e.doc.SetSelection(start)
	e.findKey = e.doc.Range(start, end)
}

func (e *Editor) findNext() {
	key := e.findKey
	if start, end, ok := e.doc.SelectedRange(); ok {
		key = e.doc.Range(start, end)
		e.findKey = key
	}
	if key == "" {
		e.status = "nothing to find: select text or ctrl-d a word first"
		return
	}
	pos, ok := e.doc.Find(e.doc.Cursor(), key, true, true)
	if !ok {
		e.status = fmt.Sprintf("%q not found", key)
		return
	}
	e.doc.SetCursor(pos + len([]rune(key)))
	e.doc.SetSelection(pos)
}

func (e *Editor) toggleComment() {
	begin, end := e.doc.SelectedLineRange()
	ch, err := e.doc.UncommentLines(begin, end)
	if err != nil {
		e.status = err.Error()
		return
	}
	if ch == nil {
		// Nothing to strip: comment instead.
		e.checked(func() (*engine.Change, error) { return e.doc.CommentLines(begin, end) })
	}
}

func (e *Editor) indent() {
	if _, _, ok := e.doc.SelectedRange(); ok {
		begin, end := e.doc.SelectedLineRange()
		e.checked(func() (*engine.Change, error) { return e.doc.IndentLines(begin, end) })
		return
	}
	e.checked(func() (*engine.Change, error) {
		return e.doc.InsertText(e.doc.Cursor(), e.doc.IndentUnit(), false)
	})
}

func (e *Editor) save() {
	if e.path == "" {
		e.status = "no file path"
		return
	}
	if err := os.WriteFile(e.path, []byte(e.doc.Text()), 0o644); err != nil {
		logger.Error("save failed", "path", e.path, "error", err)
		e.status = err.Error()
		return
	}
	e.doc.MarkClean()
	e.status = fmt.Sprintf("wrote %s", e.path)
	logger.Info("saved", "path", e.path, "bytes", len(e.doc.Text()))
}

// scrollToCursor adjusts the viewport so the cursor stays visible.
func (e *Editor) scrollToCursor(w, h int) {
	p := e.doc.OffsetToPoint(e.doc.Cursor())
	if p.Row < e.top {
		e.top = p.Row
	}
	if p.Row >= e.top+h {
		e.top = p.Row - h + 1
	}
	if p.Col < e.left {
		e.left = p.Col
	}
	if p.Col >= e.left+w {
		e.left = p.Col - w + 1
	}
}

func (e *Editor) render() {
	w, h := e.screen.Size()
	if w <= 0 || h <= 1 {
		return
	}
	textH := h - 1
	e.scrollToCursor(w, textH)

	cells := e.doc.View(e.top, e.top+textH, e.left, e.left+w)
	e.screen.HideCursor()
	for row := 0; row < textH; row++ {
		for col := 0; col < w; col++ {
			c := cells[row*w+col]
			r := c.Rune()
			if r == 0 || r == '\t' {
				r = ' '
			}
			e.screen.SetContent(col, row, r, nil, e.theme.StyleFor(c))
			if c.Caret() {
				e.screen.ShowCursor(col, row)
			}
		}
	}
	e.renderStatus(w, h-1)
	e.screen.Show()
}

func (e *Editor) renderStatus(w, y int) {
	p := e.doc.OffsetToPoint(e.doc.Cursor())
	dirty := ""
	if e.doc.IsDirty() {
		dirty = " [+]"
	}
	left := fmt.Sprintf(" %s%s  %s", e.path, dirty, e.status)
	right := fmt.Sprintf("%s  %d:%d ", e.doc.Profile().Name(), p.Row+1, p.Col+1)

	line := pad(left, w-uniseg.StringWidth(right)) + right
	col := 0
	style := e.theme.StatusBar()
	for _, r := range line {
		if col >= w {
			break
		}
		e.screen.SetContent(col, y, r, nil, style)
		col += uniseg.StringWidth(string(r))
	}
}

// pad truncates or space-pads s to the given display width.
func pad(s string, width int) string {
	if width <= 0 {
		return ""
	}
	out := ""
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cw := g.Width()
		if used+cw > width {
			break
		}
		out += g.Str()
		used += cw
	}
	for used < width {
		out += " "
		used++
	}
	return out
}
