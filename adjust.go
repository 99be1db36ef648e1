// SPDX-License-Identifier: Unlicense OR MIT

package shaping

// trackAndSpace applies the style chain's TRACKING and SPACING to r's
// glyphs in place. It is a no-op when tracking is zero and spacing is the
// identity factor, the common case, so that runs with neither setting avoid
// the full pass entirely.
func trackAndSpace(r *ShapedRun) {
	tracking := r.Styles.Tracking()
	spacing := r.Styles.Spacing()
	if tracking == 0 && spacing == 1 {
		return
	}

	glyphs := r.Glyphs
	for i := range glyphs {
		g := &glyphs[i]
		if g.IsSpace() {
			g.XAdvance = Em(float32(g.XAdvance) * spacing)
		}
		if tracking != 0 && isLastOfCluster(glyphs, i) {
			g.XAdvance += tracking
		}
	}
}

// isLastOfCluster reports whether glyphs[i] is the last glyph belonging to
// its cluster, the only glyph in a multi-glyph cluster (a ligature) that
// tracking should be added after.
func isLastOfCluster(glyphs []ShapedGlyph, i int) bool {
	return i == len(glyphs)-1 || glyphs[i+1].Cluster != glyphs[i].Cluster
}

// PushHyphen appends a synthetic hyphen glyph to the end of the run,
// resolved from the face of the run's last glyph (or, for an empty run, the
// first family the style chain can resolve). The appended glyph shares the
// cluster of the glyph it follows, so it is never treated as the start of a
// new rune position by safe-to-break slicing: pushing a hyphen never by
// itself creates a new break opportunity.
//
// PushHyphen always works on an owned copy of the run's text and glyphs: the
// original run is never mutated. The returned run's Width includes the
// hyphen's advance.
func (r ShapedRun) PushHyphen() ShapedRun {
	out := r
	out.Text = r.Text.toOwned()

	faceID, cluster := r.hyphenAnchor()
	face := r.fonts.Get(faceID)
	if face == nil {
		return out
	}
	glyphID, ok := face.GlyphIndex('-')
	if !ok {
		return out
	}
	advance, _ := face.Advance(glyphID)

	out.Glyphs = append(append([]ShapedGlyph(nil), r.Glyphs...), ShapedGlyph{
		Face:        faceID,
		GlyphID:     glyphID,
		XAdvance:    advance,
		Cluster:     cluster,
		SafeToBreak: false,
		C:           '-',
	})
	measure(&out)
	return out
}

// hyphenAnchor picks the face and cluster a pushed hyphen inherits: the run's
// last glyph if it has one, otherwise the run's base face at cluster zero.
func (r ShapedRun) hyphenAnchor() (FaceID, int) {
	if n := len(r.Glyphs); n > 0 {
		last := r.Glyphs[n-1]
		return last.Face, last.Cluster
	}
	if id, ok := r.fonts.Select(firstFamily(r.Styles), resolveVariant(r.Styles)); ok {
		return id, 0
	}
	return 0, 0
}
