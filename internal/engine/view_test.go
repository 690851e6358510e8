package engine

import (
	"strings"
	"testing"

	"github.com/dshills/textcore/internal/engine/cell"
	"github.com/dshills/textcore/internal/engine/textbuf"
	"github.com/dshills/textcore/internal/language"
)

// cellAt indexes a row-major view rectangle.
func cellAt(cells []cell.Cell, colWidth, row, col int) cell.Cell {
	return cells[row*colWidth+col]
}

func TestViewRectangleCompleteness(t *testing.T) {
	d := New(WithText("short\nlonger line\nx"))

	tests := []struct {
		name           string
		r0, r1, c0, c1 int
	}{
		{"full", 0, 3, 0, 11},
		{"past last line", 0, 10, 0, 5},
		{"past line ends", 0, 3, 0, 80},
		{"offset window", 1, 3, 4, 9},
		{"empty rows", 2, 2, 0, 5},
		{"empty cols", 0, 3, 4, 4},
		{"inverted ranges", 3, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := d.View(tt.r0, tt.r1, tt.c0, tt.c1)
			rows, cols := tt.r1-tt.r0, tt.c1-tt.c0
			if rows < 0 {
				rows = 0
			}
			if cols < 0 {
				cols = 0
			}
			if got := len(cells); got != rows*cols {
				t.Errorf("len(View) = %d, want %d", got, rows*cols)
			}
		})
	}
}

func TestViewText(t *testing.T) {
	d := New(WithText("ab\ncd"))
	cells := d.View(0, 2, 0, 3)

	want := []rune{'a', 'b', 0, 'c', 'd', 0}
	for i, r := range want {
		if got := cells[i].Rune(); got != r {
			t.Errorf("cell %d rune = %q, want %q", i, got, r)
		}
	}
}

func TestViewBlankCellsArePlain(t *testing.T) {
	d := New(WithText("a"))
	cells := d.View(0, 2, 0, 2)

	for _, idx := range []int{1, 2, 3} {
		c := cells[idx]
		if c.Rune() != 0 || c.Color() != cell.ColorPlain || c.Selected() {
			t.Errorf("cell %d not blank/plain: %#x", idx, uint32(c))
		}
	}
}

func TestViewCaretAndCursorLine(t *testing.T) {
	d := New(WithText("ab\ncd"))
	d.SetCursor(4) // row 1, col 1
	cells := d.View(0, 2, 0, 3)

	for col := 0; col < 3; col++ {
		if cellAt(cells, 3, 0, col).CursorLine() {
			t.Errorf("row 0 col %d has cursor-line flag", col)
		}
		if !cellAt(cells, 3, 1, col).CursorLine() {
			t.Errorf("row 1 col %d missing cursor-line flag", col)
		}
	}
	for col := 0; col < 3; col++ {
		want := col == 1
		if got := cellAt(cells, 3, 1, col).Caret(); got != want {
			t.Errorf("row 1 col %d Caret() = %v, want %v", col, got, want)
		}
	}
}

func TestViewCaretAtLineEnd(t *testing.T) {
	d := New(WithText("ab"))
	d.SetCursor(2) // past the last character
	cells := d.View(0, 1, 0, 4)
	if !cells[2].Caret() {
		t.Error("caret missing on the blank cell at line end")
	}
	if cells[2].Rune() != 0 {
		t.Errorf("caret cell rune = %q, want blank", cells[2].Rune())
	}
}

func TestViewSelection(t *testing.T) {
	d := New(WithText("abcdef"))
	d.SetCursor(2)
	d.SetSelection(5)
	cells := d.View(0, 1, 0, 6)

	for col := 0; col < 6; col++ {
		want := col >= 2 && col < 5
		if got := cells[col].Selected(); got != want {
			t.Errorf("col %d Selected() = %v, want %v", col, got, want)
		}
	}
}

func TestViewBracketFlags(t *testing.T) {
	d := New(WithText("(a(b)c)"))
	d.SetCursor(2)
	cells := d.View(0, 1, 0, 7)

	if got := cells[2].Bracket(); got != cell.BracketPrimary {
		t.Errorf("cell 2 Bracket() = %v, want primary", got)
	}
	if got := cells[4].Bracket(); got != cell.BracketMatch {
		t.Errorf("cell 4 Bracket() = %v, want match", got)
	}
	for _, idx := range []int{0, 1, 3, 5, 6} {
		if got := cells[idx].Bracket(); got != cell.BracketNone {
			t.Errorf("cell %d Bracket() = %v, want none", idx, got)
		}
	}
}

func TestViewNoBracketFlagsOffBracket(t *testing.T) {
	d := New(WithText("(a)"))
	d.SetCursor(1) // on 'a'
	cells := d.View(0, 1, 0, 3)
	for i, c := range cells {
		if c.Bracket() != cell.BracketNone {
			t.Errorf("cell %d Bracket() = %v, want none", i, c.Bracket())
		}
	}
}

func TestViewHighlighting(t *testing.T) {
	d := New(WithText("if x"), WithProfile(language.Go()))
	cells := d.View(0, 1, 0, 4)

	if got := cells[0].Color(); got != cell.ColorKeyword {
		t.Errorf("cell 0 Color() = %v, want keyword", got)
	}
	if got := cells[1].Color(); got != cell.ColorKeyword {
		t.Errorf("cell 1 Color() = %v, want keyword", got)
	}
	if got := cells[2].Color(); got != cell.ColorPlain {
		t.Errorf("cell 2 Color() = %v, want plain", got)
	}
	if got := cells[3].Color(); got != cell.ColorIdentifier {
		t.Errorf("cell 3 Color() = %v, want identifier", got)
	}
}

func TestViewWindowed(t *testing.T) {
	d := New(WithText("0123456789\nabcdefghij"))
	cells := d.View(1, 2, 3, 6)
	want := "def"
	for i, r := range want {
		if got := cells[i].Rune(); got != r {
			t.Errorf("cell %d rune = %q, want %q", i, got, r)
		}
	}
}

func BenchmarkView(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("func line(i int) { return i + 1 } // trailing comment\n")
	}
	d := New(WithText(sb.String()), WithProfile(language.Go()))
	d.SetCursor(d.PointToOffset(textbuf.Point{Row: 250, Col: 5}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.View(240, 264, 0, 80)
	}
}
