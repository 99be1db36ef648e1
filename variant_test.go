// SPDX-License-Identifier: Unlicense OR MIT

package shaping

import "testing"

func TestWeightThicken(t *testing.T) {
	cases := []struct {
		start, delta int
		want         Weight
	}{
		{400, 300, 700},
		{800, 300, 900},
		{900, 300, 900},
		{100, -300, 100},
	}
	for _, c := range cases {
		got := Weight(c.start).thicken(c.delta)
		if got != c.want {
			t.Errorf("Weight(%d).thicken(%d) = %d, want %d", c.start, c.delta, got, c.want)
		}
	}
}

func TestResolveVariantStrongAndEmph(t *testing.T) {
	s := &testStyles{family: []string{"x"}, spacing: 1}
	v := resolveVariant(s)
	if v.Weight != WeightNormal || v.Style != StyleNormal {
		t.Fatalf("unexpected baseline variant: %+v", v)
	}

	strong := &strongStyles{testStyles: s}
	v = resolveVariant(strong)
	if v.Weight != WeightNormal.thicken(300) {
		t.Errorf("Strong() did not thicken weight: %+v", v)
	}

	emph := &emphStyles{testStyles: s}
	v = resolveVariant(emph)
	if v.Style != StyleItalic {
		t.Errorf("Emph() did not toggle Normal to Italic: %+v", v)
	}
}

// strongStyles and emphStyles wrap testStyles to flip a single accessor,
// since testStyles itself always reports STRONG/EMPH as false.
type strongStyles struct{ *testStyles }

func (s *strongStyles) Strong() bool { return true }

type emphStyles struct{ *testStyles }

func (s *emphStyles) Emph() bool { return true }
