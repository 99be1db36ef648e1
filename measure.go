// SPDX-License-Identifier: Unlicense OR MIT

package shaping

// measure computes run's two-dimensional size: a width equal to the summed
// advance of every glyph, and a vertical extent taken from the faces its
// glyphs were drawn from, each contributing the TOP_EDGE/BOTTOM_EDGE
// metrics named by its style, with ascent and descent set to the widest
// reach among them. A run with no glyphs at all (the empty string) still
// measures to a sensible height, using the first family the style chain can
// resolve to a face, so that an empty paragraph still reserves a line of
// space.
func measure(run *ShapedRun) {
	var width Em
	for _, g := range run.Glyphs {
		width += g.XAdvance
	}
	run.Width = width.Resolve(run.Size)

	fonts := run.fontsOf()
	if fonts == nil {
		return
	}

	seen := make(map[FaceID]bool)
	top, bottom := run.Styles.TopEdge(), run.Styles.BottomEdge()

	consider := func(id FaceID) {
		if seen[id] {
			return
		}
		seen[id] = true
		face := fonts.Get(id)
		if face == nil {
			return
		}
		metrics := face.Metrics()
		ascent := metrics.Vertical(top, run.Size)
		descent := metrics.Vertical(bottom, run.Size)
		if ascent > run.Ascent {
			run.Ascent = ascent
		}
		if descent < run.Descent {
			run.Descent = descent
		}
	}

	for _, g := range run.Glyphs {
		consider(g.Face)
	}

	if len(run.Glyphs) == 0 {
		if id, ok := fonts.Select(firstFamily(run.Styles), resolveVariant(run.Styles)); ok {
			consider(id)
		}
	}
}

// fontsOf recovers the FontStore a run was shaped against, kept
// unexported on ShapedRun so Reshape can shape again and PushHyphen can look
// up a face without the caller re-supplying it.
func (r *ShapedRun) fontsOf() FontStore { return r.fonts }
