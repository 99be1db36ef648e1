// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import "github.com/go-text/typesetting/opentype/loader"

// NumberType selects which figure style OpenType's number-type features
// should apply.
type NumberType int

const (
	NumberTypeAuto NumberType = iota
	NumberTypeLining
	NumberTypeOldStyle
)

// NumberWidth selects proportional or tabular figures.
type NumberWidth int

const (
	NumberWidthAuto NumberWidth = iota
	NumberWidthProportional
	NumberWidthTabular
)

// NumberPosition selects normal, subscript, or superscript figures.
type NumberPosition int

const (
	NumberPositionNormal NumberPosition = iota
	NumberPositionSubscript
	NumberPositionSuperscript
)

// Edge names a vertical metric a face exposes, used to derive ascent and
// descent from a face's own notion of cap-height, x-height, or bounding box.
type Edge int

const (
	EdgeAscender Edge = iota
	EdgeCapHeight
	EdgeXHeight
	EdgeBaseline
	EdgeDescender
	EdgeBounds
)

// Decoration names one of the text-decoration styles the frame builder
// delegates to an external decorate procedure.
type Decoration int

const (
	DecorationUnderline Decoration = iota
	DecorationStrikethrough
	DecorationOverline
)

// RawFeature is a user-supplied (tag, value) OpenType feature pair, appended
// to the resolved feature set verbatim.
type RawFeature struct {
	Tag   loader.Tag
	Value uint32
}

// StyleChain is the opaque, cascaded style resolution the surrounding
// layout engine hands to the shaper. Shape consumes it only through these
// typed accessors; it never inspects or mutates the chain directly.
type StyleChain interface {
	// Font selection (component A).
	Family() []string
	Style() Style
	Weight() Weight
	Stretch() Stretch
	Strong() bool
	Emph() bool
	Fallback() bool

	// OpenType feature resolution (component A).
	Kerning() bool
	SmallCaps() bool
	Alternates() bool
	StylisticSet() (n int, ok bool)
	Ligatures() bool
	DiscretionaryLigatures() bool
	HistoricalLigatures() bool
	NumberType() NumberType
	NumberWidth() NumberWidth
	NumberPosition() NumberPosition
	SlashedZero() bool
	Fractions() bool
	RawFeatures() []RawFeature

	// Post-shaping adjustment (component D).
	Tracking() Em
	Spacing() float32

	// Measurement (component E).
	Size() Abs
	TopEdge() Edge
	BottomEdge() Edge

	// Frame composition (component F).
	Fill() any
	Decorations() []Decoration
	Link() (url string, ok bool)
}
