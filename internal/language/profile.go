// Package language provides per-language configuration for a
// document: the coarse character classification used for word
// boundaries, the optional line-comment marker, and a lazy,
// position-reentrant per-line tokenizer that assigns a highlight
// color to each character range.
//
// Tokenization is strictly line-local: every line is highlighted
// independently and no lexical state carries across lines, so a
// viewport can be re-highlighted from any row without rescanning the
// document.
package language

import (
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dshills/textcore/internal/engine/cell"
)

// Span assigns a highlight color to the half-open column range
// [Start, End) of a line. Columns are code points.
type Span struct {
	Start int
	End   int
	Color cell.Color
}

// Rule is a regex highlighting rule applied to a single line.
type Rule struct {
	Pattern *regexp.Regexp
	Color   cell.Color
}

// Profile is the language configuration of one document. A profile
// is immutable after construction and passed explicitly into the
// document; there is no process-wide language registry.
type Profile struct {
	name        string
	extensions  []string
	lineComment string
	rules       []Rule
	keywords    map[string]cell.Color
}

// NewProfile creates an empty profile.
func NewProfile(name string, extensions ...string) *Profile {
	return &Profile{
		name:       name,
		extensions: extensions,
		keywords:   make(map[string]cell.Color),
	}
}

// Name returns the language name.
func (p *Profile) Name() string { return p.name }

// Extensions returns the file extensions handled by this profile.
func (p *Profile) Extensions() []string { return p.extensions }

// LineComment returns the line-comment marker and whether the
// language defines one.
func (p *Profile) LineComment() (string, bool) {
	return p.lineComment, p.lineComment != ""
}

// SetLineComment sets the line-comment marker.
func (p *Profile) SetLineComment(marker string) *Profile {
	p.lineComment = marker
	return p
}

// AddRule appends a regex highlighting rule. Rules are applied in
// order; earlier rules win on overlap.
func (p *Profile) AddRule(pattern string, color cell.Color) *Profile {
	p.rules = append(p.rules, Rule{Pattern: regexp.MustCompile(pattern), Color: color})
	return p
}

// AddKeywords registers keywords highlighted with the given color.
func (p *Profile) AddKeywords(color cell.Color, words ...string) *Profile {
	for _, w := range words {
		p.keywords[w] = color
	}
	return p
}

// HighlightLine tokenizes one line, returning spans sorted by start
// column. Character ranges not covered by any span render plain.
// The input must not contain a newline.
func (p *Profile) HighlightLine(line string) []Span {
	if line == "" {
		return nil
	}

	// Regex rules work in byte indices; spans are code-point columns.
	cols := byteToColumn(line)
	covered := make([]bool, len(line))
	spans := make([]Span, 0, 8)

	for _, rule := range p.rules {
		for _, m := range rule.Pattern.FindAllStringIndex(line, -1) {
			if m[1] <= m[0] || isCovered(covered, m[0], m[1]) {
				continue
			}
			markCovered(covered, m[0], m[1])
			spans = append(spans, Span{Start: cols[m[0]], End: cols[m[1]], Color: rule.Color})
		}
	}

	spans = append(spans, p.scanWords(line, cols, covered)...)

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

// ColorAt returns the color of a column given the spans of its line.
func ColorAt(spans []Span, col int) cell.Color {
	for _, s := range spans {
		if col < s.Start {
			break
		}
		if col < s.End {
			return s.Color
		}
	}
	return cell.ColorPlain
}

// scanWords finds identifier and number runs in uncovered regions and
// resolves keywords against the profile table.
func (p *Profile) scanWords(line string, cols []int, covered []bool) []Span {
	var spans []Span

	i := 0
	for i < len(line) {
		if covered[i] {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(line) && !covered[i] {
				r, size = utf8.DecodeRuneInString(line[i:])
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
					break
				}
				i += size
			}
			color := cell.ColorIdentifier
			if kw, ok := p.keywords[line[start:i]]; ok {
				color = kw
			}
			spans = append(spans, Span{Start: cols[start], End: cols[i], Color: color})
		case unicode.IsDigit(r):
			start := i
			for i < len(line) && !covered[i] {
				r, size = utf8.DecodeRuneInString(line[i:])
				if !unicode.IsDigit(r) && r != '.' && r != '_' &&
					!('a' <= r && r <= 'f') && !('A' <= r && r <= 'F') && r != 'x' && r != 'X' {
					break
				}
				i += size
			}
			spans = append(spans, Span{Start: cols[start], End: cols[i], Color: cell.ColorNumber})
		default:
			i += size
		}
	}
	return spans
}

// byteToColumn maps every byte index of the line (plus the end index)
// to its code-point column.
func byteToColumn(line string) []int {
	cols := make([]int, len(line)+1)
	col := 0
	for i := range line {
		cols[i] = col
		col++
	}
	// Bytes inside multi-byte runes keep the column of the rune start.
	prev := 0
	for i := 1; i <= len(line); i++ {
		if i < len(line) && !utf8.RuneStart(line[i]) {
			cols[i] = cols[prev]
		} else {
			prev = i
		}
	}
	cols[len(line)] = col
	return cols
}

func isCovered(covered []bool, start, end int) bool {
	for i := start; i < end && i < len(covered); i++ {
		if covered[i] {
			return true
		}
	}
	return false
}

func markCovered(covered []bool, start, end int) {
	for i := start; i < end && i < len(covered); i++ {
		covered[i] = true
	}
}
