// SPDX-License-Identifier: Unlicense OR MIT

// Package shaping converts a run of styled source text into a sequence of
// positioned glyphs ready to be composed into a page frame.
//
// The package selects fonts in priority order with automatic fallback for
// characters no configured font covers, invokes an OpenType shaping engine
// with the correct direction and feature set, records enough metadata per
// glyph that a line-breaker can cheaply reshape arbitrary substrings, applies
// post-shaping adjustments (tracking, word spacing, justification, hyphen
// insertion), and measures the resulting run's advance width, ascent, and
// descent.
//
// Shaping itself is synchronous and single-threaded: Shape runs to
// completion and never blocks. The surrounding layout engine, font store,
// style-chain resolution, and page-frame composition are external
// collaborators, not part of this package.
package shaping
