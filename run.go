// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import "sort"

// Side names which edge of a requested text range findSafeToBreak is
// resolving a glyph index for.
type Side int

const (
	Left Side = iota
	Right
)

// findSafeToBreak returns the index into run.Glyphs of the glyph boundary
// at the byte offset textIndex, on the requested side, reporting false if
// breaking there would require reshaping: either no glyph starts at that
// exact byte offset, or the glyph that does is itself marked unsafe to
// break before.
//
// It locates the candidate glyph by binary search on cluster value, then
// walks outward toward side while the cluster value does not change, since
// several glyphs can share one cluster (ligatures) and a break is only
// ever safe at the cluster's edge, not in its interior.
//
// In a right-to-left run the glyph order is the mirror of text order, so
// the comparator direction is reversed and the resolved index is nudged by
// one to land on the correct side of the cluster boundary once the walk
// finishes.
func (r ShapedRun) findSafeToBreak(textIndex int, side Side) (int, bool) {
	glyphs := r.Glyphs
	n := len(glyphs)
	ltr := r.Dir == LTR

	// The start and end of the whole text are always safe to break: there
	// is no glyph on the far side to reshape against.
	if textIndex == 0 {
		if ltr {
			return 0, true
		}
		return n, true
	}
	if textIndex == r.Text.byteLen {
		if ltr {
			return n, true
		}
		return 0, true
	}
	if n == 0 {
		return 0, false
	}

	idx := sort.Search(n, func(i int) bool {
		if ltr {
			return glyphs[i].Cluster >= textIndex
		}
		return glyphs[i].Cluster <= textIndex
	})
	if idx == n || glyphs[idx].Cluster != textIndex {
		return 0, false
	}

	switch side {
	case Left:
		for idx > 0 && glyphs[idx-1].Cluster == textIndex {
			idx--
		}
	case Right:
		for idx < n-1 && glyphs[idx+1].Cluster == textIndex {
			idx++
		}
	}

	// RTL needs the offset nudged by one: the left side of a range is
	// exclusive and the right side inclusive, the opposite of how the
	// glyph array is ordered in a right-to-left run.
	if !ltr {
		idx++
	}
	if idx < 0 || idx >= n {
		return 0, false
	}
	return idx, glyphs[idx].SafeToBreak
}

// sliceSafeToBreak returns the sub-slice of run.Glyphs covering the byte
// range [start, end), reporting false if either boundary does not fall
// exactly on a safe-to-break glyph boundary (no snapping to a nearby one is
// attempted), since such a slice could only be produced by reshaping. In a right-to-left run start and end name the
// same text range but the left/right glyph boundaries they map to are
// swapped, since glyph order runs opposite to text order.
func (r ShapedRun) sliceSafeToBreak(start, end int) ([]ShapedGlyph, bool) {
	left, right := start, end
	if r.Dir == RTL {
		left, right = end, start
	}
	lo, ok := r.findSafeToBreak(left, Left)
	if !ok {
		return nil, false
	}
	hi, ok := r.findSafeToBreak(right, Right)
	if !ok {
		return nil, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return r.Glyphs[lo:hi], true
}

// Justifiables returns the count of glyphs in the run eligible to carry
// extra justification space: plain word spaces and the CJK punctuation
// marks that conventionally trail whitespace.
func (r ShapedRun) Justifiables() int {
	n := 0
	for _, g := range r.Glyphs {
		if g.IsJustifiable() {
			n++
		}
	}
	return n
}

// Stretch returns the summed advance of the run's justifiable glyphs,
// resolved at the run's size: the upper bound on how far justification may
// expand it.
func (r ShapedRun) Stretch() Abs {
	var total Em
	for _, g := range r.Glyphs {
		if g.IsJustifiable() {
			total += g.XAdvance
		}
	}
	return total.Resolve(r.Size)
}

// Reshape returns the shaped sub-run covering the byte range [start, end)
// of r's own text. When both boundaries of that range are safe to break,
// the result borrows r's own glyph slice directly, skipping the shaping
// primitive entirely; otherwise the sub-text is shaped fresh, so that
// kerning and ligatures across the edit point are recomputed rather than
// left stale.
func (r ShapedRun) Reshape(start, end int) ShapedRun {
	if glyphs, ok := r.sliceSafeToBreak(start, end); ok {
		out := ShapedRun{
			Text:   shapedText{runes: []rune(r.Text.String()[start:end]), byteLen: end - start},
			Dir:    r.Dir,
			Styles: r.Styles,
			Size:   r.Size,
			fonts:  r.fonts,
			Glyphs: glyphs,
		}
		measure(&out)
		return out
	}
	return Shape(r.Text.String()[start:end], r.fonts, r.Styles, r.Dir)
}
