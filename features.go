// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import (
	"github.com/go-text/typesetting/opentype/loader"
	"github.com/go-text/typesetting/shaping"
)

// resolveFeatures collects the OpenType feature tags to apply, following
// the rule that features on by default in the shaping engine are only
// emitted when disabled, and features off by default are only emitted when
// enabled.
func resolveFeatures(styles StyleChain) []shaping.FontFeature {
	var features []shaping.FontFeature
	feat := func(tag string, value uint32) {
		features = append(features, shaping.FontFeature{
			Tag:   loader.MustNewTag(tag),
			Value: value,
		})
	}

	// kern is on by default; only emit to disable it.
	if !styles.Kerning() {
		feat("kern", 0)
	}

	// The remaining features default to off; only emit to enable them.
	if styles.SmallCaps() {
		feat("smcp", 1)
	}
	if styles.Alternates() {
		feat("salt", 1)
	}
	if n, ok := styles.StylisticSet(); ok {
		feat(stylisticSetTag(n), 1)
	}

	// liga and clig are on by default; disabling "ligatures" turns both off.
	if !styles.Ligatures() {
		feat("liga", 0)
		feat("clig", 0)
	}
	if styles.DiscretionaryLigatures() {
		feat("dlig", 1)
	}
	if styles.HistoricalLigatures() {
		feat("hilg", 1)
	}

	switch styles.NumberType() {
	case NumberTypeLining:
		feat("lnum", 1)
	case NumberTypeOldStyle:
		feat("onum", 1)
	}

	switch styles.NumberWidth() {
	case NumberWidthProportional:
		feat("pnum", 1)
	case NumberWidthTabular:
		feat("tnum", 1)
	}

	switch styles.NumberPosition() {
	case NumberPositionSubscript:
		feat("subs", 1)
	case NumberPositionSuperscript:
		feat("sups", 1)
	}

	if styles.SlashedZero() {
		feat("zero", 1)
	}
	if styles.Fractions() {
		feat("frac", 1)
	}

	for _, raw := range styles.RawFeatures() {
		features = append(features, shaping.FontFeature{Tag: raw.Tag, Value: raw.Value})
	}

	return features
}

// stylisticSetTag builds the "ssNN" tag for stylistic set n, zero-padded to
// two decimal digits as OpenType requires (ss01 .. ss20).
func stylisticSetTag(n int) string {
	if n < 1 {
		n = 1
	}
	if n > 20 {
		n = 20
	}
	digits := "0123456789"
	return "ss" + string(digits[n/10]) + string(digits[n%10])
}
