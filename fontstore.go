// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import "github.com/go-text/typesetting/font"

// FaceID identifies a font face within a FontStore. Its zero value never
// denotes a valid face.
type FaceID uint32

// FontStore is the font store external collaborator: it opens, parses, and
// caches font faces, and resolves a requested family and variant (or a
// fallback for a given character) to a concrete face.
//
// FontStore is borrowed by exclusive mutable reference during shaping
// (Select/SelectFallback/Get may load and cache a face on demand,
// invalidating previously returned Face values) and by shared reference
// afterwards, during measurement and frame building.
type FontStore interface {
	// Select resolves a family name and variant to a face, or reports that
	// no matching face is available.
	Select(family string, variant Variant) (FaceID, bool)
	// SelectFallback resolves a fallback face covering the first character
	// of text. seed, if non-zero, is the outermost face already committed
	// to the run, used as a hint for matching style across fallbacks.
	SelectFallback(seed FaceID, variant Variant, text string) (FaceID, bool)
	// Get returns the face for id. Previously returned Face values may be
	// invalidated by subsequent calls to Select, SelectFallback, or Get.
	Get(id FaceID) Face
}

// Face is one concrete styled weight/style/stretch of a font family.
type Face interface {
	// TTF returns the handle accepted by the OpenType shaping primitive.
	TTF() font.Face
	// ToEm converts a raw font-unit value into an Em, using the face's
	// units-per-em.
	ToEm(rawUnits int32) Em
	// Advance returns the horizontal advance of a glyph, or false if the
	// face has no such glyph.
	Advance(glyphID uint16) (Em, bool)
	// GlyphIndex returns the face's glyph index for r, or false if the face
	// does not cover r.
	GlyphIndex(r rune) (uint16, bool)
	// Metrics returns the face's vertical metrics, queryable by edge at a
	// given text size.
	Metrics() Metrics
}

// Metrics exposes a face's vertical metrics, so ascent and descent can be
// derived from whichever edge the caller's style selects (cap-height,
// x-height, bounding box, or typographic ascender/descender).
type Metrics interface {
	// Vertical resolves the named edge to a length at the given text size.
	// Ascent-side edges (EdgeAscender, EdgeCapHeight, EdgeXHeight) and
	// EdgeBounds return positive distances above the baseline;
	// EdgeDescender returns a negative distance below it, matching the
	// convention that ShapedRun.Descent holds Vertical(BottomEdge, size)
	// as is, a negative length.
	Vertical(edge Edge, size Abs) Abs
}
