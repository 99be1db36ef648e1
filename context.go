// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/shaping"
	"golang.org/x/exp/slices"
)

// Direction is the paragraph direction a run is shaped in. The engine only
// ever shapes a single run in a single direction; splitting mixed-direction
// text into same-direction runs and reordering them visually is the layout
// engine's job, not this package's.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

// shapingContext carries the state threaded through a single call to Shape:
// the resolved style, the font store, and the scratch buffers the recursive
// segment shaper accumulates glyphs and visited faces into. It is built once
// per Shape call and never shared across calls.
type shapingContext struct {
	fonts    FontStore
	styles   StyleChain
	variant  Variant
	features []shaping.FontFeature
	fallback bool
	dir      Direction

	// used is the cycle guard: the stack of face IDs already committed to
	// the run being shaped, so that a fallback search can never select a
	// face it has already tried and failed to fully cover.
	used []FaceID

	// glyphs accumulates the run's glyphs in visual order. Its capacity is
	// grown once up front with slices.Grow to the text's byte length, since
	// the final glyph count is usually close to the rune count, so that the
	// appends made segment by segment rarely reallocate on long runs.
	glyphs []ShapedGlyph

	// byteOffsets maps a rune index into the run's text to the byte offset
	// of that rune, with a trailing entry for the byte length of the whole
	// text. The shaping primitive reports cluster boundaries as rune
	// indices; glyph.Cluster is specified as a byte offset, so every glyph
	// built from the primitive's output is translated through this table.
	byteOffsets []int
}

func newShapingContext(text string, fonts FontStore, styles StyleChain, dir Direction) *shapingContext {
	ctx := &shapingContext{
		fonts:    fonts,
		styles:   styles,
		variant:  resolveVariant(styles),
		fallback: styles.Fallback(),
		dir:      dir,
	}
	ctx.features = resolveFeatures(styles)
	ctx.glyphs = slices.Grow(ctx.glyphs, len(text))
	ctx.byteOffsets = runeByteOffsets(text)
	return ctx
}

// runeByteOffsets returns, for each rune of s in order, the byte offset at
// which it begins, followed by a final entry holding len(s): the byte
// offset one past the last rune, used as the upper bound when the cluster
// being translated is the text's last.
func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}

// pushUsed records id as committed to the run for the duration of a
// recursive fallback search, and returns a function that pops it again.
func (ctx *shapingContext) pushUsed(id FaceID) (pop func()) {
	ctx.used = append(ctx.used, id)
	return func() {
		ctx.used = ctx.used[:len(ctx.used)-1]
	}
}

// hasUsed reports whether id has already been committed to the run in an
// enclosing (non-popped) call, so the fallback search must skip it.
func (ctx *shapingContext) hasUsed(id FaceID) bool {
	for _, u := range ctx.used {
		if u == id {
			return true
		}
	}
	return false
}
