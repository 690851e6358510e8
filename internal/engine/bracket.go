package engine

// MatchStatus is the outcome of a bracket-match query.
type MatchStatus int

const (
	// StatusNoBracket means the character at the queried position is
	// not a bracket.
	StatusNoBracket MatchStatus = iota
	// StatusMatch means the complementary bracket was found.
	StatusMatch
	// StatusUnmatched means nesting never returned to zero before the
	// buffer boundary.
	StatusUnmatched
)

// String returns the status name.
func (s MatchStatus) String() string {
	switch s {
	case StatusMatch:
		return "match"
	case StatusUnmatched:
		return "unmatched"
	default:
		return "no-bracket"
	}
}

// BracketMatch is the result of MatchingBracket. Pos is meaningful
// only when Status is StatusMatch.
type BracketMatch struct {
	Status MatchStatus
	Pos    int
}

// bracket pairs by family. Opening brackets scan forward, closing
// brackets scan backward.
var bracketPairs = map[rune]struct {
	complement rune
	forward    bool
}{
	'(': {')', true},
	'[': {']', true},
	'{': {'}', true},
	')': {'(', false},
	']': {'[', false},
	'}': {'{', false},
}

// MatchingBracket finds the bracket complementary to the one exactly
// at pos, tracking nesting depth within the same bracket family.
func (d *Document) MatchingBracket(pos int) BracketMatch {
	r := d.buf.RuneAt(pos)
	pair, ok := bracketPairs[r]
	if !ok {
		return BracketMatch{Status: StatusNoBracket}
	}

	depth := 1
	if pair.forward {
		for p := pos + 1; p < d.buf.Len(); p++ {
			switch d.buf.RuneAt(p) {
			case r:
				depth++
			case pair.complement:
				depth--
				if depth == 0 {
					return BracketMatch{Status: StatusMatch, Pos: p}
				}
			}
		}
	} else {
		for p := pos - 1; p >= 0; p-- {
			switch d.buf.RuneAt(p) {
			case r:
				depth++
			case pair.complement:
				depth--
				if depth == 0 {
					return BracketMatch{Status: StatusMatch, Pos: p}
				}
			}
		}
	}
	return BracketMatch{Status: StatusUnmatched}
}
