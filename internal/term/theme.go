package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/textcore/internal/config"
	"github.com/dshills/textcore/internal/engine/cell"
)

// Theme holds the resolved terminal styles for every highlight color
// and UI state.
type Theme struct {
	base       tcell.Style
	palette    [16]tcell.Style
	selection  tcell.Color
	cursorLine tcell.Color
	bracket    tcell.Color
	statusBar  tcell.Style
}

// NewTheme resolves a config theme's hex colors into tcell styles.
func NewTheme(t config.Theme) (*Theme, error) {
	fg, err := parseColor(t.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(t.Background)
	if err != nil {
		return nil, err
	}

	th := &Theme{base: tcell.StyleDefault.Foreground(fg).Background(bg)}
	for i := range th.palette {
		th.palette[i] = th.base
	}

	entries := []struct {
		color cell.Color
		hex   string
	}{
		{cell.ColorPlain, t.Foreground},
		{cell.ColorKeyword, t.Keyword},
		{cell.ColorIdentifier, t.Identifier},
		{cell.ColorComment, t.Comment},
		{cell.ColorString, t.String},
		{cell.ColorNumber, t.Number},
		{cell.ColorOperator, t.Operator},
		{cell.ColorPunctuation, t.Punctuation},
		{cell.ColorType, t.Type},
		{cell.ColorFunction, t.Function},
		{cell.ColorConstant, t.Constant},
	}
	for _, e := range entries {
		c, err := parseColor(e.hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", e.color, err)
		}
		th.palette[e.color] = th.base.Foreground(c)
	}

	if th.selection, err = parseColor(t.Selection); err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}
	if th.cursorLine, err = parseColor(t.CursorLine); err != nil {
		return nil, fmt.Errorf("cursor-line: %w", err)
	}
	if th.bracket, err = parseColor(t.Bracket); err != nil {
		return nil, fmt.Errorf("bracket: %w", err)
	}
	statusBG, err := parseColor(t.StatusBar)
	if err != nil {
		return nil, fmt.Errorf("status-bar: %w", err)
	}
	th.statusBar = tcell.StyleDefault.Foreground(fg).Background(statusBG)
	return th, nil
}

// StyleFor resolves the style of one packed cell.
func (th *Theme) StyleFor(c cell.Cell) tcell.Style {
	style := th.palette[c.Color()&0xF]
	switch {
	case c.Selected():
		style = style.Background(th.selection)
	case c.CursorLine():
		style = style.Background(th.cursorLine)
	}
	if c.Bracket() != cell.BracketNone {
		style = style.Foreground(th.bracket).Bold(true)
	}
	return style
}

// Base returns the default text style.
func (th *Theme) Base() tcell.Style { return th.base }

// StatusBar returns the status line style.
func (th *Theme) StatusBar() tcell.Style { return th.statusBar }

func parseColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
