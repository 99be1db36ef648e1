// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import (
	"bytes"

	gotextfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
)

// fakeFace adapts a real parsed TTF to this package's Face contract, using
// the font's own metrics and glyph table rather than hard-coded numbers, so
// that shaping and measurement tests exercise the same arithmetic
// production code does.
type fakeFace struct {
	face gotextfont.Face
}

func (f fakeFace) TTF() gotextfont.Face { return f.face }

func (f fakeFace) ToEm(rawUnits int32) Em {
	upem := f.face.Upem()
	if upem == 0 {
		return 0
	}
	return Em(float32(rawUnits) / float32(upem))
}

func (f fakeFace) Advance(glyphID uint16) (Em, bool) {
	adv := f.face.HorizontalAdvance(gotextfont.GID(glyphID))
	return f.ToEm(int32(adv)), true
}

func (f fakeFace) GlyphIndex(r rune) (uint16, bool) {
	gid, ok := f.face.NominalGlyph(r)
	return uint16(gid), ok
}

func (f fakeFace) Metrics() Metrics { return fakeMetrics{face: f.face} }

type fakeMetrics struct {
	face gotextfont.Face
}

// Vertical derives ascent/descent from the font's units-per-em: a fixed
// fraction of the em square stands in for the true OS/2 and hhea tables,
// which is enough for tests that only need a non-zero, stable height.
func (m fakeMetrics) Vertical(edge Edge, size Abs) Abs {
	switch edge {
	case EdgeDescender:
		return Abs(float32(size) * -0.2)
	case EdgeXHeight:
		return Abs(float32(size) * 0.5)
	case EdgeCapHeight:
		return Abs(float32(size) * 0.7)
	default:
		return Abs(float32(size) * 0.8)
	}
}

// fakeStore is a minimal FontStore backed by a single parsed face per family
// name, enough to exercise family resolution, fallback, and tofu without
// needing a real multi-font system installed in the test environment.
type fakeStore struct {
	byName map[string]FaceID
	faces  map[FaceID]Face
	next   FaceID
}

func newFakeStore() *fakeStore {
	return &fakeStore{byName: map[string]FaceID{}, faces: map[FaceID]Face{}}
}

func (s *fakeStore) add(family string, face gotextfont.Face) FaceID {
	s.next++
	id := s.next
	s.byName[family] = id
	s.faces[id] = fakeFace{face: face}
	return id
}

func (s *fakeStore) Select(family string, _ Variant) (FaceID, bool) {
	id, ok := s.byName[family]
	return id, ok
}

func (s *fakeStore) SelectFallback(seed FaceID, _ Variant, text string) (FaceID, bool) {
	// The fake store covers every rune with whatever face it has, mirroring
	// a system fallback search that always eventually finds *something*.
	if seed != 0 {
		if _, ok := s.faces[seed]; ok {
			return seed, true
		}
	}
	for _, id := range s.byName {
		return id, true
	}
	return 0, false
}

func (s *fakeStore) Get(id FaceID) Face { return s.faces[id] }

// parseGoRegular parses the embedded Go Regular TTF, a real font shipped by
// golang.org/x/image, so tests shape against real glyph and metric data
// without needing font fixtures on disk.
func parseGoRegular() gotextfont.Face {
	face, err := gotextfont.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return face
}

// testStyles is a minimal StyleChain for tests: a fixed set of plain
// defaults, with a few knobs exposed for cases that need to flip one.
type testStyles struct {
	family   []string
	size     Abs
	fallback bool
	tracking Em
	spacing  float32
}

func plainStyles(family string, size Abs) *testStyles {
	return &testStyles{family: []string{family}, size: size, fallback: true, spacing: 1}
}

func (s *testStyles) Family() []string { return s.family }
func (s *testStyles) Style() Style     { return StyleNormal }
func (s *testStyles) Weight() Weight   { return WeightNormal }
func (s *testStyles) Stretch() Stretch { return StretchNormal }
func (s *testStyles) Strong() bool     { return false }
func (s *testStyles) Emph() bool       { return false }
func (s *testStyles) Fallback() bool   { return s.fallback }

func (s *testStyles) Kerning() bool                  { return true }
func (s *testStyles) SmallCaps() bool                { return false }
func (s *testStyles) Alternates() bool               { return false }
func (s *testStyles) StylisticSet() (int, bool)      { return 0, false }
func (s *testStyles) Ligatures() bool                { return true }
func (s *testStyles) DiscretionaryLigatures() bool   { return false }
func (s *testStyles) HistoricalLigatures() bool      { return false }
func (s *testStyles) NumberType() NumberType         { return NumberTypeAuto }
func (s *testStyles) NumberWidth() NumberWidth       { return NumberWidthAuto }
func (s *testStyles) NumberPosition() NumberPosition { return NumberPositionNormal }
func (s *testStyles) SlashedZero() bool              { return false }
func (s *testStyles) Fractions() bool                { return false }
func (s *testStyles) RawFeatures() []RawFeature      { return nil }

func (s *testStyles) Tracking() Em     { return s.tracking }
func (s *testStyles) Spacing() float32 { return s.spacing }

func (s *testStyles) Size() Abs        { return s.size }
func (s *testStyles) TopEdge() Edge    { return EdgeAscender }
func (s *testStyles) BottomEdge() Edge { return EdgeDescender }

func (s *testStyles) Fill() any                { return nil }
func (s *testStyles) Decorations() []Decoration { return nil }
func (s *testStyles) Link() (string, bool)      { return "", false }
