package engine

import "github.com/dshills/textcore/internal/language"

// Default configuration values.
const (
	DefaultIndentUnit     = "\t"
	DefaultMaxUndoEntries = 1000
)

// Option configures a Document during creation.
type Option func(*Document)

// WithText sets the initial content. The document starts clean.
func WithText(text string) Option {
	return func(d *Document) {
		d.initText = text
	}
}

// WithProfile sets the language profile. A document keeps one profile
// for its whole lifetime; changing language means creating a new
// document.
func WithProfile(p *language.Profile) Option {
	return func(d *Document) {
		if p != nil {
			d.profile = p
		}
	}
}

// WithIndentUnit sets the indent unit used by indent/unindent actions
// built through the document helpers (a tab or a run of spaces).
func WithIndentUnit(unit string) Option {
	return func(d *Document) {
		if unit != "" {
			d.indentUnit = unit
		}
	}
}

// WithMaxUndoEntries bounds the undo history depth.
func WithMaxUndoEntries(n int) Option {
	return func(d *Document) {
		if n > 0 {
			d.maxUndoEntries = n
		}
	}
}
