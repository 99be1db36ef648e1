// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import "golang.org/x/image/math/fixed"

// Abs is a resolved, absolute length, stored as a 26.6 fixed-point value in
// points, following the rest of the Go text-layout corpus's convention of
// representing resolved lengths in fixed-point rather than floating point.
type Abs = fixed.Int26_6

// Em is a font-relative length: a fraction of the current font size. Glyph
// advances and offsets are produced by the shaping primitive in Em and only
// resolved to an Abs length once the text size is known.
type Em float32

// Resolve converts e to an absolute length at the given text size.
func (e Em) Resolve(size Abs) Abs {
	return Abs(float32(size) * float32(e))
}

// EmFromAbs expresses abs as a fraction of size. Returns zero if size is
// zero.
func EmFromAbs(abs, size Abs) Em {
	if size == 0 {
		return 0
	}
	return Em(float32(abs) / float32(size))
}
