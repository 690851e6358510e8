package action

import (
	"fmt"

	"github.com/dshills/textcore/internal/engine/textbuf"
)

// ReplaceAll applies the same fixed-length removal and replacement at
// a precomputed list of disjoint, ascending offsets as one undoable
// step. Offsets are pre-mutation: each subsequent replacement is
// translated by the cumulative length delta of the ones before it.
type ReplaceAll struct {
	state
	offsets     []int
	removeCount int
	insert      []rune

	// insertPer/removePer override insert and removeCount per offset;
	// used by Invert, where the restored texts may differ (e.g.
	// case-insensitive matches).
	insertPer []string
	removePer []int

	removed []string // captured per offset on apply
	applied []int    // post-mutation offset of each replacement
	delta   LineDelta
}

// NewReplaceAll creates a replace-all action. Offsets must be
// ascending and the removed ranges disjoint.
func NewReplaceAll(offsets []int, removeCount int, text string) *ReplaceAll {
	return &ReplaceAll{
		offsets:     append([]int{}, offsets...),
		removeCount: removeCount,
		insert:      []rune(text),
	}
}

// Count returns the number of replacement sites.
func (a *ReplaceAll) Count() int { return len(a.offsets) }

// Trivial reports whether there is nothing to replace.
func (a *ReplaceAll) Trivial() bool { return len(a.offsets) == 0 }

func (a *ReplaceAll) insertAt(i int) string {
	if a.insertPer != nil {
		return a.insertPer[i]
	}
	return string(a.insert)
}

func (a *ReplaceAll) removeAt(i int) int {
	if a.removePer != nil {
		return a.removePer[i]
	}
	return a.removeCount
}

// Apply executes every replacement in ascending order, shifting each
// offset by the cumulative delta of earlier replacements.
func (a *ReplaceAll) Apply(buf *textbuf.Buffer) error {
	a.markApplied()

	a.removed = make([]string, 0, len(a.offsets))
	a.applied = make([]int, 0, len(a.offsets))
	a.delta = LineDelta{}

	shift := 0
	for i, off := range a.offsets {
		actual := off + shift
		ins := a.insertAt(i)
		removed, err := buf.Replace(actual, a.removeAt(i), ins)
		if err != nil {
			return fmt.Errorf("replace-all at %d: %w", actual, err)
		}
		if i == 0 {
			a.delta.First = buf.LineForOffset(actual)
		}
		a.removed = append(a.removed, removed)
		a.applied = append(a.applied, actual)
		a.delta.Inserted += countLines(ins)
		a.delta.Removed += countLines(removed)
		shift += len([]rune(ins)) - a.removeAt(i)
	}
	return nil
}

// Undo restores every site in descending order, so earlier offsets
// stay valid while later ones are rewritten.
func (a *ReplaceAll) Undo(buf *textbuf.Buffer) error {
	a.markUndone()

	for i := len(a.applied) - 1; i >= 0; i-- {
		insLen := len([]rune(a.insertAt(i)))
		if _, err := buf.Replace(a.applied[i], insLen, a.removed[i]); err != nil {
			return fmt.Errorf("undo replace-all at %d: %w", a.applied[i], err)
		}
	}
	return nil
}

// Invert returns a replace-all that rewrites every site back to its
// captured text.
func (a *ReplaceAll) Invert() Action {
	a.mustInvert()
	removePer := make([]int, len(a.applied))
	for i := range removePer {
		removePer[i] = len([]rune(a.insertAt(i)))
	}
	return &ReplaceAll{
		offsets:   append([]int{}, a.applied...),
		removePer: removePer,
		insertPer: append([]string{}, a.removed...),
	}
}

// AffectedLines reports the changed line range of the last Apply.
func (a *ReplaceAll) AffectedLines() LineDelta { return a.delta }
