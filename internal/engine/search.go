package engine

import "unicode"

// Find returns the offset of the first occurrence of key strictly
// after fromPos. When wrap is set and nothing matches before the end
// of the buffer, the search continues from offset 0 up to but not
// including fromPos. Reports false when key is empty or no match
// exists anywhere.
func (d *Document) Find(fromPos int, key string, ignoreCase, wrap bool) (int, bool) {
	k := []rune(key)
	if len(k) == 0 {
		return 0, false
	}
	fromPos = d.buf.ClampOffset(fromPos)

	last := d.buf.Len() - len(k)
	for pos := fromPos + 1; pos <= last; pos++ {
		if d.matchAt(pos, k, ignoreCase) {
			return pos, true
		}
	}
	if !wrap {
		return 0, false
	}
	for pos := 0; pos < fromPos && pos <= last; pos++ {
		if d.matchAt(pos, k, ignoreCase) {
			return pos, true
		}
	}
	return 0, false
}

// matchAt reports whether key occurs at pos.
func (d *Document) matchAt(pos int, key []rune, ignoreCase bool) bool {
	for i, kr := range key {
		r := d.buf.RuneAt(pos + i)
		if ignoreCase {
			r = unicode.ToLower(r)
			kr = unicode.ToLower(kr)
		}
		if r != kr {
			return false
		}
	}
	return true
}

// findAll returns the ascending offsets of every non-overlapping
// occurrence of key, computed before any mutation.
func (d *Document) findAll(key string, ignoreCase bool) []int {
	k := []rune(key)
	if len(k) == 0 {
		return nil
	}
	var offsets []int
	last := d.buf.Len() - len(k)
	for pos := 0; pos <= last; {
		if d.matchAt(pos, k, ignoreCase) {
			offsets = append(offsets, pos)
			pos += len(k)
			continue
		}
		pos++
	}
	return offsets
}
