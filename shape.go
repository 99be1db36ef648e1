// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import "github.com/go-text/typesetting/shaping"

// shapedText is the cow-style text backing a ShapedRun: either borrowed from
// the string passed to Shape, or owned after an edit such as PushHyphen that
// must not reach back into the caller's data.
type shapedText struct {
	runes   []rune
	byteLen int
	owned   bool
}

func (t shapedText) String() string { return string(t.runes) }

// toOwned returns a private, mutable copy of t, cloning the backing slice
// only when t does not already own one.
func (t shapedText) toOwned() shapedText {
	if t.owned {
		return t
	}
	owned := make([]rune, len(t.runes))
	copy(owned, t.runes)
	return shapedText{runes: owned, byteLen: t.byteLen, owned: true}
}

// ShapedRun is the shaped, measured representation of a run of text in a
// single direction and style. It is produced by Shape and refined by
// Reshape, Stretch, and PushHyphen.
type ShapedRun struct {
	Text shapedText
	Dir  Direction
	// Styles is the cascade this run was shaped under.
	Styles StyleChain
	// Size is the font size the run was shaped at, used to resolve every
	// glyph's Em-valued advances and offsets to absolute lengths.
	Size Abs

	// fonts is the store this run was shaped against, kept so Reshape can
	// shape again and PushHyphen can look up a face without the caller
	// re-supplying it.
	fonts FontStore

	// Width is the run's total horizontal advance: the sum of every
	// glyph's XAdvance, resolved at Size.
	Width Abs

	// Ascent and Descent are the run's vertical extent, resolved from the
	// widest-reaching face among its glyphs; Ascent is positive and Descent
	// is negative, both measured from the baseline.
	Ascent  Abs
	Descent Abs

	Glyphs []ShapedGlyph
}

// Shape runs the font-fallback shaping pipeline over text under styles and
// returns the resulting run, fully measured and ready to be inserted into a
// frame. Shape never fails to produce output: a character with no covering
// face in any fallback is rendered as a tofu placeholder rather than
// dropped. Shape panics if dir names a writing direction this package does
// not support (only LTR and RTL are); resolving a requested vertical
// direction to one of these, or to horizontal-in-vertical, is the layout
// engine's responsibility before it calls in.
func Shape(text string, fonts FontStore, styles StyleChain, dir Direction) ShapedRun {
	if dir != LTR && dir != RTL {
		panic("shaping: unsupported direction")
	}

	runes := []rune(text)
	ctx := newShapingContext(text, fonts, styles, dir)

	var base FaceID
	if id, ok := fonts.Select(firstFamily(styles), ctx.variant); ok {
		base = id
	}

	shapeSegment(ctx, base, runes, 0, len(runes), newFamilyIterator(styles))

	run := ShapedRun{
		Text:   shapedText{runes: runes, byteLen: len(text)},
		Dir:    dir,
		Styles: styles,
		Size:   styles.Size(),
		fonts:  fonts,
		Glyphs: ctx.glyphs,
	}
	trackAndSpace(&run)
	measure(&run)
	return run
}

func firstFamily(styles StyleChain) string {
	if families := styles.Family(); len(families) > 0 {
		return families[0]
	}
	return ""
}

// isSkippable reports whether r carries no visible glyph of its own and can
// never be the sole content of a shaped segment: newlines and tabs are
// handled by the layout engine's line breaker, not by the shaper.
func isSkippable(r rune) bool {
	return r == '\n' || r == '\t'
}

func allSkippable(text []rune, start, end int) bool {
	if start >= end {
		return true
	}
	for _, r := range text[start:end] {
		if !isSkippable(r) {
			return false
		}
	}
	return true
}

// shapeSegment is the recursive font-fallback shaper. It selects the next
// unused family that can be resolved to a face, shapes text[start:end] with
// it, and for any rune that the chosen face could not cover (glyph id zero)
// recurses into the remaining families to try to resolve just that
// sub-range, falling back to tofu placeholders only once every family is
// exhausted. base is the face selected for the run as a whole, used as the
// last resort tofu face and as the seed for fallback matching.
func shapeSegment(ctx *shapingContext, base FaceID, text []rune, start, end int, families familyIterator) {
	if allSkippable(text, start, end) {
		return
	}

	faceID, ok := nextUnusedFace(ctx, &families)
	if !ok && ctx.fallback {
		seed := base
		if len(ctx.used) > 0 {
			seed = ctx.used[len(ctx.used)-1]
		}
		if id, ok2 := ctx.fonts.SelectFallback(seed, ctx.variant, string(text[start:end])); ok2 && !ctx.hasUsed(id) {
			faceID, ok = id, true
		}
	}
	if !ok {
		shapeTofus(ctx, base, text, start, end)
		return
	}

	pop := ctx.pushUsed(faceID)
	defer pop()

	face := ctx.fonts.Get(faceID)
	output := shapeWithFace(text, start, end, face.TTF(), ctx.features, ctx.dir, ctx.styles.Size())
	glyphs := output.Glyphs

	prevCluster := -1
	i := 0
	for i < len(glyphs) {
		g := glyphs[i]
		if g.GlyphID != 0 {
			ctx.glyphs = append(ctx.glyphs, toShapedGlyph(faceID, g, text, ctx.byteOffsets, ctx.styles.Size(), g.ClusterIndex != prevCluster))
			prevCluster = g.ClusterIndex
			i++
			continue
		}

		// A run of glyph id zero means this face has no glyph for the
		// covered runes; find its extent and hand just that sub-range back
		// to the remaining families.
		k := i
		for k < len(glyphs) && glyphs[k].GlyphID == 0 {
			k++
		}

		var subStart, subEnd int
		if ctx.dir == LTR {
			subStart = glyphs[i].ClusterIndex
			if k < len(glyphs) {
				subEnd = glyphs[k].ClusterIndex
			} else {
				subEnd = end
			}
		} else {
			subStart = glyphs[k-1].ClusterIndex
			if i > 0 {
				subEnd = glyphs[i-1].ClusterIndex
			} else {
				subEnd = end
			}
		}

		shapeSegment(ctx, base, text, subStart, subEnd, families.clone())
		prevCluster = -1
		i = k
	}
}

// nextUnusedFace advances families until it finds one the font store can
// resolve to a face not already committed to this run, or exhausts the
// list.
func nextUnusedFace(ctx *shapingContext, families *familyIterator) (FaceID, bool) {
	for {
		family, ok := families.next()
		if !ok {
			return 0, false
		}
		id, ok := ctx.fonts.Select(family, ctx.variant)
		if ok && !ctx.hasUsed(id) {
			return id, true
		}
	}
}

func toShapedGlyph(id FaceID, g shaping.Glyph, text []rune, byteOffsets []int, size Abs, startsCluster bool) ShapedGlyph {
	var c rune
	if g.ClusterIndex >= 0 && g.ClusterIndex < len(text) {
		c = text[g.ClusterIndex]
	}
	var cluster int
	if g.ClusterIndex >= 0 && g.ClusterIndex < len(byteOffsets) {
		cluster = byteOffsets[g.ClusterIndex]
	}
	return ShapedGlyph{
		Face:        id,
		GlyphID:     g.GlyphID,
		XAdvance:    EmFromAbs(Abs(g.XAdvance), size),
		XOffset:     EmFromAbs(Abs(g.XOffset), size),
		YOffset:     EmFromAbs(Abs(g.YOffset), size),
		Cluster:     cluster,
		SafeToBreak: startsCluster,
		C:           c,
	}
}

// shapeTofus emits one placeholder glyph per rune in text[start:end], using
// the run's base face purely as an advance reference (its glyph id 0, which
// every face carries as the notdef glyph). It is the last resort once no
// family, including the fallback tail, can resolve a face for the range.
func shapeTofus(ctx *shapingContext, base FaceID, text []rune, start, end int) {
	face := ctx.fonts.Get(base)
	var advance Em
	if face != nil {
		if a, ok := face.Advance(0); ok {
			advance = a
		}
	}
	for idx := start; idx < end; idx++ {
		r := text[idx]
		if isSkippable(r) {
			continue
		}
		cluster := idx
		if idx < len(ctx.byteOffsets) {
			cluster = ctx.byteOffsets[idx]
		}
		ctx.glyphs = append(ctx.glyphs, ShapedGlyph{
			Face:        base,
			GlyphID:     0,
			XAdvance:    advance,
			Cluster:     cluster,
			SafeToBreak: true,
			C:           r,
		})
	}
}
