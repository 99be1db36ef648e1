// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
)

// otShaper is the OpenType shaping primitive this package shapes against.
// HarfbuzzShaper keeps no state between calls, so one package-level instance
// is shared by every call to Shape.
var otShaper shaping.HarfbuzzShaper

func mapDirection(dir Direction) di.Direction {
	if dir == RTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune of text,
// defaulting to Latin if text is all space or empty. A single segment is
// shaped under one script; mixed-script runs are the layout engine's job to
// split before calling into this package, matching the single-run scope of
// Shape.
func detectScript(text []rune) language.Script {
	for _, r := range text {
		if isSkippable(r) || r == ' ' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// shapeWithFace invokes the OpenType shaping primitive over text[runStart:runEnd]
// using face, and returns the resulting glyphs, still expressed in the
// primitive's own units.
func shapeWithFace(text []rune, runStart, runEnd int, face font.Face, features []shaping.FontFeature, dir Direction, size Abs) shaping.Output {
	input := shaping.Input{
		Text:         text,
		RunStart:     runStart,
		RunEnd:       runEnd,
		Direction:    mapDirection(dir),
		Face:         face,
		FontFeatures: features,
		Size:         size,
		Script:       detectScript(text[runStart:runEnd]),
	}
	return otShaper.Shape(input)
}
