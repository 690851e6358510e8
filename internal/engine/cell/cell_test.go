package cell

import "testing"

func TestCellRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		r     rune
		color Color
	}{
		{"ascii plain", 'a', ColorPlain},
		{"keyword", 'f', ColorKeyword},
		{"wide rune", '世', ColorString},
		{"max code point", 0x10FFFF, ColorComment},
		{"blank", 0, ColorPlain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.r, tt.color)
			if got := c.Rune(); got != tt.r {
				t.Errorf("Rune() = %#x, want %#x", got, tt.r)
			}
			if got := c.Color(); got != tt.color {
				t.Errorf("Color() = %v, want %v", got, tt.color)
			}
			if c.Selected() || c.Caret() || c.CursorLine() || c.Bracket() != BracketNone {
				t.Error("new cell has flags set")
			}
		})
	}
}

func TestCellFlagsAreIndependent(t *testing.T) {
	c := New('x', ColorNumber).WithSelected().WithCaret().WithCursorLine().WithBracket(BracketPrimary)

	if !c.Selected() || !c.Caret() || !c.CursorLine() {
		t.Error("flags lost after stacking")
	}
	if got := c.Bracket(); got != BracketPrimary {
		t.Errorf("Bracket() = %v, want BracketPrimary", got)
	}
	if got := c.Rune(); got != 'x' {
		t.Errorf("Rune() = %q, want %q", got, 'x')
	}
	if got := c.Color(); got != ColorNumber {
		t.Errorf("Color() = %v, want ColorNumber", got)
	}
}

func TestWithBracketOverwrites(t *testing.T) {
	c := New('(', ColorPunctuation).WithBracket(BracketPrimary).WithBracket(BracketMatch)
	if got := c.Bracket(); got != BracketMatch {
		t.Errorf("Bracket() = %v, want BracketMatch", got)
	}
	c = c.WithBracket(BracketNone)
	if got := c.Bracket(); got != BracketNone {
		t.Errorf("Bracket() after reset = %v, want BracketNone", got)
	}
}

func TestPaletteFits(t *testing.T) {
	if colorCount > 16 {
		t.Fatalf("palette has %d entries, cell encoding holds 16", colorCount)
	}
	for c := ColorPlain; c < colorCount; c++ {
		if c.String() == "unknown" {
			t.Errorf("color %d has no name", c)
		}
	}
}
